package collector

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/digitalocean/clockmon/pkg/sampler"
)

const namespace = "clockmon"

// NewFrequency creates a collector that exposes the most recent sample
func NewFrequency() *Frequency {
	return &Frequency{
		frequencyDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cluster", "frequency_mhz"),
			"HW active frequency of a CPU cluster in MHz.",
			[]string{"cluster"},
			nil,
		),
		timestampDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "last_sample", "timestamp_seconds"),
			"Unix time of the most recent successful sample.",
			nil,
			nil,
		),
		durationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sample", "duration_seconds"),
			"Duration of the most recent powermetrics invocation.",
			nil,
			nil,
		),
		successDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sample", "success"),
			"Whether the most recent sample succeeded.",
			nil,
			nil,
		),
	}
}

// Frequency is a prometheus.Collector over the last sample recorded by the
// polling loop. Nothing is exported until the first Observe or Fail call.
type Frequency struct {
	mu       sync.RWMutex
	seen     bool
	failed   bool
	last     sampler.Sample
	duration time.Duration

	frequencyDesc *prometheus.Desc
	timestampDesc *prometheus.Desc
	durationDesc  *prometheus.Desc
	successDesc   *prometheus.Desc
}

// Observe records a successful sample taken in dur
func (f *Frequency) Observe(s sampler.Sample, dur time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = true
	f.failed = false
	f.last = s
	f.duration = dur
}

// Fail records a failed sample attempt. The last good frequencies stay
// exported.
func (f *Frequency) Fail(dur time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = true
	f.failed = true
	f.duration = dur
}

// Describe describes this collector
func (f *Frequency) Describe(ch chan<- *prometheus.Desc) {
	ch <- f.frequencyDesc
	ch <- f.timestampDesc
	ch <- f.durationDesc
	ch <- f.successDesc
}

// Collect reports the last recorded sample to ch. Clusters whose frequency
// could not be parsed are omitted rather than reported as zero.
func (f *Frequency) Collect(ch chan<- prometheus.Metric) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.seen {
		return
	}

	var success float64
	if !f.failed {
		success = 1
	}
	ch <- prometheus.MustNewConstMetric(f.successDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(f.durationDesc, prometheus.GaugeValue, f.duration.Seconds())

	if f.last.Timestamp.IsZero() {
		return
	}
	ch <- prometheus.MustNewConstMetric(f.timestampDesc, prometheus.GaugeValue, float64(f.last.Timestamp.Unix()))
	if f.last.PClusterOK {
		ch <- prometheus.MustNewConstMetric(f.frequencyDesc, prometheus.GaugeValue, f.last.PCluster, "P")
	}
	if f.last.EClusterOK {
		ch <- prometheus.MustNewConstMetric(f.frequencyDesc, prometheus.GaugeValue, f.last.ECluster, "E")
	}
}
