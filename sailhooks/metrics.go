package sailhooks

import (
	"sync"
	"sync/atomic"
	"time"
)

// InMemoryMetrics accumulates per-operation timing, call, and error counts
// in process memory. Safe for concurrent use.
type InMemoryMetrics struct {
	mu           sync.RWMutex
	opDurationMs map[string]int64
	opCalls      map[string]int64
	opErrors     map[string]int64

	totalFramesDecoded int64
	totalBytesDecoded  int64
}

// NewInMemoryMetrics constructs an empty collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		opDurationMs: make(map[string]int64),
		opCalls:      make(map[string]int64),
		opErrors:     make(map[string]int64),
	}
}

// RecordOp records the duration of one call to the named codec operation
// (e.g. "gif.read_seek_next_frame").
func (m *InMemoryMetrics) RecordOp(op string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opDurationMs[op] += d.Milliseconds()
	m.opCalls[op]++
}

// RecordError increments the error count for op.
func (m *InMemoryMetrics) RecordError(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opErrors[op]++
}

// RecordFrameDecoded adds n bytes of decoded pixel data to the running total
// and increments the frame count by one.
func (m *InMemoryMetrics) RecordFrameDecoded(n int) {
	atomic.AddInt64(&m.totalFramesDecoded, 1)
	atomic.AddInt64(&m.totalBytesDecoded, int64(n))
}

// MetricsSnapshot is an immutable point-in-time copy of a collector's state.
type MetricsSnapshot struct {
	OpDurationsMs      map[string]int64
	OpCalls            map[string]int64
	OpErrors           map[string]int64
	TotalFramesDecoded int64
	TotalBytesDecoded  int64
}

// Snapshot copies the current counters out of m.
func (m *InMemoryMetrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		OpDurationsMs:      make(map[string]int64, len(m.opDurationMs)),
		OpCalls:            make(map[string]int64, len(m.opCalls)),
		OpErrors:           make(map[string]int64, len(m.opErrors)),
		TotalFramesDecoded: atomic.LoadInt64(&m.totalFramesDecoded),
		TotalBytesDecoded:  atomic.LoadInt64(&m.totalBytesDecoded),
	}
	for k, v := range m.opDurationMs {
		s.OpDurationsMs[k] = v
	}
	for k, v := range m.opCalls {
		s.OpCalls[k] = v
	}
	for k, v := range m.opErrors {
		s.OpErrors[k] = v
	}
	return s
}
