package sailhooks

import (
	"time"

	"github.com/sail-go/sail/sailcore"
)

// LoggingHook logs the start and outcome of every codec operation a session
// runs: the start and a success at debug level, a failure at error level.
type LoggingHook struct {
	log sailcore.Logger
}

// NewLoggingHook constructs a LoggingHook that logs through log.
func NewLoggingHook(log sailcore.Logger) *LoggingHook {
	return &LoggingHook{log: log}
}

func (h *LoggingHook) BeforeOp(op string) {
	h.log.Debug("op start", "op", op)
}

func (h *LoggingHook) AfterOp(op string, err error) {
	if err != nil {
		h.log.Error("op failed", "op", op, "err", err)
		return
	}
	h.log.Debug("op done", "op", op)
}

// MetricsHook feeds BeforeOp/AfterOp timing and error counts into an
// InMemoryMetrics collector.
type MetricsHook struct {
	metrics *InMemoryMetrics
	start   map[string]time.Time
}

// NewMetricsHook constructs a MetricsHook recording into m.
func NewMetricsHook(m *InMemoryMetrics) *MetricsHook {
	return &MetricsHook{metrics: m, start: make(map[string]time.Time)}
}

func (h *MetricsHook) BeforeOp(op string) {
	h.start[op] = time.Now()
}

func (h *MetricsHook) AfterOp(op string, err error) {
	if t, ok := h.start[op]; ok {
		h.metrics.RecordOp(op, time.Since(t))
		delete(h.start, op)
	}
	if err != nil {
		h.metrics.RecordError(op)
	}
}

// MultiHook fans BeforeOp/AfterOp out to every hook in the slice, in order.
type MultiHook []sailcore.Hook

func (m MultiHook) BeforeOp(op string) {
	for _, h := range m {
		h.BeforeOp(op)
	}
}

func (m MultiHook) AfterOp(op string, err error) {
	for _, h := range m {
		h.AfterOp(op, err)
	}
}
