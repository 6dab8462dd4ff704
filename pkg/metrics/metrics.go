// Package metrics is a small Prometheus-text metrics registry built on the
// standard library: counters, gauges, and histograms, with labels baked
// into metric names, exposed via an HTTP handler in the text exposition
// format.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuckets are the default histogram buckets, in seconds.
var DefaultBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Counter is a monotonically increasing counter.
type Counter struct{ val atomic.Int64 }

func (c *Counter) Inc()         { c.val.Add(1) }
func (c *Counter) Add(n int64)  { c.val.Add(n) }
func (c *Counter) Value() int64 { return c.val.Load() }

// Gauge can go up and down.
type Gauge struct{ val atomic.Int64 }

func (g *Gauge) Set(n int64)  { g.val.Store(n) }
func (g *Gauge) Inc()         { g.val.Add(1) }
func (g *Gauge) Dec()         { g.val.Add(-1) }
func (g *Gauge) Value() int64 { return g.val.Load() }

// Histogram tracks a distribution over fixed buckets. Bucket counts are
// stored cumulatively, matching the exposition format.
type Histogram struct {
	mu     sync.Mutex
	bounds []float64
	cumul  []uint64
	sum    float64
	count  uint64
}

func newHistogram(bounds []float64) *Histogram {
	b := make([]float64, len(bounds))
	copy(b, bounds)
	sort.Float64s(b)
	return &Histogram{bounds: b, cumul: make([]uint64, len(b))}
}

// Observe records a value.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	h.sum += v
	h.count++
	for i, b := range h.bounds {
		if v <= b {
			h.cumul[i]++
		}
	}
	h.mu.Unlock()
}

// Since observes the duration since t, in seconds.
func (h *Histogram) Since(t time.Time) {
	h.Observe(time.Since(t).Seconds())
}

// Count returns the number of observations.
func (h *Histogram) Count() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Registry holds named metrics. Label pairs are baked into the name as
// name{k="v",...}, so each label combination is a distinct series.
type Registry struct {
	mu    sync.RWMutex
	names []string // insertion order of full names
	help  map[string]string
	types map[string]string

	counters   map[string]*Counter
	gauges     map[string]*Gauge
	histograms map[string]*Histogram
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		help:       make(map[string]string),
		types:      make(map[string]string),
		counters:   make(map[string]*Counter),
		gauges:     make(map[string]*Gauge),
		histograms: make(map[string]*Histogram),
	}
}

func (r *Registry) register(name, typ, help string) {
	base := baseName(name)
	if _, ok := r.types[base]; !ok && help != "" {
		r.help[base] = help
	}
	r.types[base] = typ
	r.names = append(r.names, name)
}

// Counter returns (or creates) the named counter.
func (r *Registry) Counter(name, help string) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[name]; ok {
		return c
	}
	c := &Counter{}
	r.counters[name] = c
	r.register(name, "counter", help)
	return c
}

// Gauge returns (or creates) the named gauge.
func (r *Registry) Gauge(name, help string) *Gauge {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.gauges[name]; ok {
		return g
	}
	g := &Gauge{}
	r.gauges[name] = g
	r.register(name, "gauge", help)
	return g
}

// Histogram returns (or creates) the named histogram.
func (r *Registry) Histogram(name, help string, bounds []float64) *Histogram {
	if bounds == nil {
		bounds = DefaultBuckets
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.histograms[name]; ok {
		return h
	}
	h := newHistogram(bounds)
	r.histograms[name] = h
	r.register(name, "histogram", help)
	return h
}

// WithLabels appends label pairs to a metric name:
// WithLabels("foo", "k", "v") => `foo{k="v"}`.
func WithLabels(name string, kvs ...string) string {
	if len(kvs) == 0 || len(kvs)%2 != 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i := 0; i < len(kvs); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", kvs[i], kvs[i+1])
	}
	b.WriteByte('}')
	return b.String()
}

func baseName(name string) string {
	if i := strings.IndexByte(name, '{'); i != -1 {
		return name[:i]
	}
	return name
}

// labelsOf returns the inner label list of a full name, without braces.
func labelsOf(name string) string {
	i := strings.IndexByte(name, '{')
	if i == -1 {
		return ""
	}
	return name[i+1 : len(name)-1]
}

// Render produces the Prometheus text exposition output.
func (r *Registry) Render() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	headerDone := make(map[string]bool)
	seen := make(map[string]bool)

	for _, name := range r.names {
		if seen[name] {
			continue
		}
		seen[name] = true

		base := baseName(name)
		if !headerDone[base] {
			headerDone[base] = true
			if h := r.help[base]; h != "" {
				fmt.Fprintf(&b, "# HELP %s %s\n", base, h)
			}
			fmt.Fprintf(&b, "# TYPE %s %s\n", base, r.types[base])
		}

		switch r.types[base] {
		case "counter":
			fmt.Fprintf(&b, "%s %d\n", name, r.counters[name].Value())
		case "gauge":
			fmt.Fprintf(&b, "%s %d\n", name, r.gauges[name].Value())
		case "histogram":
			r.renderHistogram(&b, base, name)
		}
	}
	return b.String()
}

func (r *Registry) renderHistogram(b *strings.Builder, base, name string) {
	h := r.histograms[name]
	h.mu.Lock()
	bounds := h.bounds
	cumul := append([]uint64(nil), h.cumul...)
	sum, count := h.sum, h.count
	h.mu.Unlock()

	labels := labelsOf(name)
	sep := ""
	if labels != "" {
		sep = ","
	}
	for i, bound := range bounds {
		fmt.Fprintf(b, "%s_bucket{le=\"%g\"%s%s} %d\n", base, bound, sep, labels, cumul[i])
	}
	fmt.Fprintf(b, "%s_bucket{le=\"+Inf\"%s%s} %d\n", base, sep, labels, count)
	if labels != "" {
		labels = "{" + labels + "}"
	}
	fmt.Fprintf(b, "%s_sum%s %g\n", base, labels, sum)
	fmt.Fprintf(b, "%s_count%s %d\n", base, labels, count)
}

// Handler serves the registry in the text exposition format.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		w.Write([]byte(r.Render()))
	})
}
