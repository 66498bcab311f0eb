package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the loop driver
const (
	KeyTicks    = "engine.ticks"
	KeyEpisodes = "engine.episodes"
	KeyEaten    = "engine.eaten"
	KeySession  = "session.id"
)

// Registry is the central metrics facade
// Producers cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Summary renders all integer metrics as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
