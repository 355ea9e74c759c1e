// Package metrics exports the occupancy of tracked containers as prometheus
// gauges. Collect reads Size and Capacity directly, so it must run on the
// goroutine that owns the containers or under the caller's lock.
package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Sized is anything reporting a live element count, e.g. basic.LinkedList.
type Sized interface {
	Size() int
}

// Capacitor is implemented by containers with preallocated storage, e.g.
// basic.ArrayList.
type Capacitor interface {
	Capacity() int
}

type Collector struct {
	mu         sync.Mutex
	containers map[string]Sized
	sizeDesc   *prometheus.Desc
	capDesc    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(namespace string) *Collector {
	return &Collector{
		containers: make(map[string]Sized),
		sizeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "size"),
			"Number of live elements held by the container.",
			[]string{"container"}, nil,
		),
		capDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "capacity"),
			"Allocated slots in the container backing storage.",
			[]string{"container"}, nil,
		),
	}
}

// Track starts reporting s under name, replacing any container already
// registered with that name.
func (c *Collector) Track(name string, s Sized) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.containers[name] = s
}

func (c *Collector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.containers, name)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.sizeDesc
	ch <- c.capDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.containers))
	for name := range c.containers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := c.containers[name]
		ch <- prometheus.MustNewConstMetric(c.sizeDesc, prometheus.GaugeValue, float64(s.Size()), name)
		if cp, ok := s.(Capacitor); ok {
			ch <- prometheus.MustNewConstMetric(c.capDesc, prometheus.GaugeValue, float64(cp.Capacity()), name)
		}
	}
}
