// Command loadtest drives the mock API with concurrent virtual players and
// prints per-endpoint counts, latencies, and status distribution.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/shooter-mock-api/internal/random"
	"github.com/osse101/shooter-mock-api/internal/worker"
)

func main() {
	ui := newConsole(os.Stdout)

	cfg, err := parseConfig()
	if err != nil {
		ui.fail("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.section("Load test")
	ui.info("target=%s players=%d workers=%d shots=%d item_uses=%d",
		cfg.APIURL, cfg.Players, cfg.Workers, cfg.ShotsEach, cfg.ItemUses)

	start := time.Now()
	report, pool, err := run(ctx, cfg)
	if err != nil {
		ui.fail("%v", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	ui.section("Results")
	report.Write(os.Stdout)

	total, unexpected := report.Totals()
	ui.info("%d requests in %s (%.1f req/s), %d scenarios, %d aborted",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds(), pool.Processed(), pool.Failed())

	if unexpected > 0 {
		ui.warn("%d unexpected responses", unexpected)
		if cfg.FailOnUnexpected {
			os.Exit(1)
		}
		return
	}
	ui.ok("No unexpected responses")
}

// run enqueues one scenario per player and waits for the pool to drain
func run(ctx context.Context, cfg loadConfig) (*Report, *worker.Pool, error) {
	report := NewReport()
	c := newClient(cfg.APIURL, cfg.Timeout, report)
	rnd := random.NewSeeded(cfg.Seed)

	pool := worker.NewPool(cfg.Workers, cfg.Workers*2)
	pool.Start(ctx)

	for i := 0; i < cfg.Players; i++ {
		s := &scenario{client: c, rnd: rnd, shots: cfg.ShotsEach, itemUses: cfg.ItemUses}
		if err := pool.Enqueue(ctx, s); err != nil {
			pool.Stop()
			return report, pool, fmt.Errorf("enqueue stopped after %d players: %w", i, err)
		}
	}

	pool.Wait()
	return report, pool, nil
}
