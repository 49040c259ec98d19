package status

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 backed by its bit pattern
// Zero value reads as 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(val float64) { f.bits.Store(math.Float64bits(val)) }
func (f *Float) Get() float64    { return math.Float64frombits(f.bits.Load()) }

// Text is an atomic string
type Text struct {
	ptr atomic.Pointer[string]
}

func (s *Text) Set(val string) { s.ptr.Store(&val) }

func (s *Text) Get() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Metrics is a named set of metrics of one kind
// Components resolve pointers once at construction and write atomics on the hot path
type Metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (m *Metrics[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in key order
func (m *Metrics[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Registry is the telemetry facade shared by one turret's components
// Safe to read from a render goroutine while the turret ticks elsewhere
type Registry struct {
	Ints    *Metrics[atomic.Int64]
	Floats  *Metrics[Float]
	Strings *Metrics[Text]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    newMetrics[atomic.Int64](),
		Floats:  newMetrics[Float](),
		Strings: newMetrics[Text](),
	}
}

// Lines renders every metric as "key=value" in key order, ints then floats then strings
func (r *Registry) Lines() []string {
	var out []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *Text) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Get()))
	})
	return out
}
