package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for the console surface.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	faultCount   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		faultCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordFault increments per-kind fault counters.
func (m *Metrics) RecordFault(path, method, kind string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + kind
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faultCount[key]++
}

// RequestTotals returns a copy of the request counters.
func (m *Metrics) RequestTotals() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	totals := make(map[string]int64, len(m.requestCount))
	for k, v := range m.requestCount {
		totals[k] = v
	}
	return totals
}

// FaultTotals returns a copy of the fault counters.
func (m *Metrics) FaultTotals() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	totals := make(map[string]int64, len(m.faultCount))
	for k, v := range m.faultCount {
		totals[k] = v
	}
	return totals
}
