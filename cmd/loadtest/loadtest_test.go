package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/shooter-mock-api/internal/config"
	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
	"github.com/osse101/shooter-mock-api/internal/random"
	"github.com/osse101/shooter-mock-api/internal/repository"
	"github.com/osse101/shooter-mock-api/internal/server"
	"github.com/osse101/shooter-mock-api/internal/sse"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	svc := gameplay.NewService(repository.NewMemory(), random.NewSeeded(7), event.NewMemoryBus(), "", nil)
	srv := server.NewServer(&config.Config{
		Version:           config.DefaultVersion,
		MaxBodyBytes:      config.DefaultMaxBodyBytes,
		RateLimitWindow:   time.Minute,
		CORSAllowedOrigin: config.DefaultCORSOrigin,
	}, svc, hub)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestRun_AgainstServer(t *testing.T) {
	ts := newAPI(t)

	cfg := loadConfig{
		APIURL:    ts.URL,
		Players:   8,
		Workers:   3,
		ShotsEach: 5,
		ItemUses:  12,
		Timeout:   5 * time.Second,
		Seed:      1,
	}

	report, pool, err := run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(8), pool.Processed())
	assert.Equal(t, int64(0), pool.Failed())

	assert.Equal(t, 8, report.Count(epCreatePlayer, http.StatusCreated))
	assert.Equal(t, 8, report.Count(epSpawn, http.StatusCreated))
	assert.Equal(t, 40, report.Count(epShoot, http.StatusOK))
	assert.Equal(t, 8, report.Count(epLevelUp, http.StatusOK))

	// 12 uses against 10 starting items always exhausts something
	assert.Positive(t, report.Count(epUseItem, http.StatusBadRequest))
	assert.Equal(t, 96, report.Count(epUseItem, http.StatusOK)+report.Count(epUseItem, http.StatusBadRequest))

	total, unexpected := report.Totals()
	assert.Equal(t, 0, unexpected)
	assert.Equal(t, 8*(1+1+1+5+12+1+1+1+1), total)

	var out bytes.Buffer
	report.Write(&out)
	assert.Contains(t, out.String(), epUseItem)
	assert.Contains(t, out.String(), "400=")
}

func TestRun_UnreachableServerAbortsScenarios(t *testing.T) {
	ts := newAPI(t)
	url := ts.URL
	ts.Close()

	report, pool, err := run(context.Background(), loadConfig{
		APIURL:  url,
		Players: 3,
		Workers: 2,
		Timeout: time.Second,
		Seed:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), pool.Failed())
	assert.Equal(t, 3, report.Count(epCreatePlayer, statusTransportError))
	_, unexpected := report.Totals()
	assert.Equal(t, 3, unexpected)
}

func TestExpected(t *testing.T) {
	assert.True(t, expected(epShoot, http.StatusOK))
	assert.True(t, expected(epCreatePlayer, http.StatusCreated))
	assert.True(t, expected(epUseItem, http.StatusBadRequest))
	assert.False(t, expected(epShoot, http.StatusBadRequest))
	assert.False(t, expected(epGetPlayer, http.StatusNotFound))
	assert.False(t, expected(epStats, statusTransportError))
	assert.False(t, expected(epStats, http.StatusInternalServerError))
}

func TestReport_Record(t *testing.T) {
	r := NewReport()
	r.Record(epShoot, http.StatusOK, 2*time.Millisecond)
	r.Record(epShoot, http.StatusOK, 4*time.Millisecond)
	r.Record(epShoot, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2, r.Count(epShoot, http.StatusOK))
	assert.Equal(t, 1, r.Count(epShoot, http.StatusNotFound))
	assert.Equal(t, 0, r.Count(epStats, http.StatusOK))

	total, unexpected := r.Totals()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, unexpected)
}

func TestConsole_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	ui := &console{out: &buf}

	ui.section("Results")
	ui.ok("%d done", 3)
	ui.fail("boom")

	assert.Equal(t, "\n=== Results ===\n✓ 3 done\n✗ boom\n", buf.String())
}

func TestConsole_Colored(t *testing.T) {
	var buf bytes.Buffer
	ui := &console{out: &buf, color: true}

	ui.warn("slow")

	assert.Equal(t, ansiYellow+"⚠ slow"+ansiReset+"\n", buf.String())
}
