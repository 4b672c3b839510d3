package main

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Endpoint names used in the report
const (
	epCreatePlayer = "create-player"
	epGetPlayer    = "get-player"
	epShoot        = "shoot"
	epSpawn        = "spawn-enemy"
	epInventory    = "inventory"
	epUseItem      = "use-item"
	epLevelUp      = "level-up"
	epStats        = "stats"
	epWeapons      = "weapons"
)

// statusTransportError stands in for requests that never got a response
const statusTransportError = 0

type endpointStats struct {
	Count    int
	ByStatus map[int]int
	Total    time.Duration
	Max      time.Duration
}

// Report aggregates request outcomes per endpoint. Safe for concurrent use.
type Report struct {
	mu        sync.Mutex
	endpoints map[string]*endpointStats
}

func NewReport() *Report {
	return &Report{endpoints: make(map[string]*endpointStats)}
}

// Record adds one request outcome
func (r *Report) Record(endpoint string, status int, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.endpoints[endpoint]
	if !ok {
		s = &endpointStats{ByStatus: make(map[int]int)}
		r.endpoints[endpoint] = s
	}
	s.Count++
	s.ByStatus[status]++
	s.Total += latency
	if latency > s.Max {
		s.Max = latency
	}
}

// expected reports whether status is a normal outcome for endpoint.
// Use-item answers 400 when the player has run out of an item.
func expected(endpoint string, status int) bool {
	switch {
	case status >= 200 && status < 300:
		return true
	case endpoint == epUseItem && status == http.StatusBadRequest:
		return true
	}
	return false
}

// Count returns requests recorded for endpoint with the given status
func (r *Report) Count(endpoint string, status int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.endpoints[endpoint]; ok {
		return s.ByStatus[status]
	}
	return 0
}

// Totals returns the overall and unexpected request counts
func (r *Report) Totals() (total, unexpected int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, s := range r.endpoints {
		total += s.Count
		for status, n := range s.ByStatus {
			if !expected(name, status) {
				unexpected += n
			}
		}
	}
	return total, unexpected
}

// Write prints one line per endpoint, sorted by name
func (r *Report) Write(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%-14s %7s %10s %10s  %s\n", "endpoint", "count", "avg", "max", "statuses")
	for _, name := range names {
		s := r.endpoints[name]
		avg := s.Total / time.Duration(s.Count)

		statuses := make([]int, 0, len(s.ByStatus))
		for status := range s.ByStatus {
			statuses = append(statuses, status)
		}
		sort.Ints(statuses)

		line := ""
		for _, status := range statuses {
			label := fmt.Sprint(status)
			if status == statusTransportError {
				label = "err"
			}
			line += fmt.Sprintf("%s=%d ", label, s.ByStatus[status])
		}

		fmt.Fprintf(w, "%-14s %7d %10s %10s  %s\n", name, s.Count,
			avg.Round(time.Microsecond), s.Max.Round(time.Microsecond), line)
	}
}
