package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/digitalocean/clockmon/internal/log"
	"github.com/digitalocean/clockmon/pkg/collector"
	"github.com/digitalocean/clockmon/pkg/sampler"
)

const (
	sampleErrorsMetricName = "clockmon_sample_errors_total"
)

var (
	sampleErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: sampleErrorsMetricName,
		Help: "Number of failed powermetrics samples",
	}, []string{"error"})

	frequency = collector.NewFrequency()
)

type sampleSource interface {
	Sample(ctx context.Context) (sampler.Sample, error)
}

type sampleWriter interface {
	Write(s sampler.Sample) error
	Name() string
}

type limiter interface {
	WaitDuration() time.Duration
	Name() string
}

// run samples, writes and waits until ctx is done. Failed samples are
// reported to errOut and never stop the loop.
func run(ctx context.Context, s sampleSource, w sampleWriter, l limiter, g prometheus.Gatherer, errOut io.Writer) {
	exec := func() {
		start := time.Now()
		sample, err := s.Sample(ctx)
		dur := time.Since(start)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			frequency.Fail(dur)
			sampleErrors.WithLabelValues(errors.Cause(err).Error()).Inc()
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return
		}
		log.Debug("sampled in %s", dur)
		if !sample.PClusterOK || !sample.EClusterOK {
			log.Debug("frequency unavailable (P-Cluster: %t, E-Cluster: %t)", sample.PClusterOK, sample.EClusterOK)
		}
		frequency.Observe(sample, dur)

		start = time.Now()
		if err := w.Write(sample); err != nil {
			log.Error("failed to write sample to %s: %v", w.Name(), err)
			return
		}
		log.Debug("sample written in %s", time.Since(start))

		if config.debug {
			debugMetrics(g)
		}
	}

	exec()
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.WaitDuration()):
		}
		exec()
	}
}

// debugMetrics logs every gathered metric family
func debugMetrics(g prometheus.Gatherer) {
	if g == nil {
		return
	}

	mfs, err := g.Gather()
	if err != nil {
		log.Error("failed to gather metrics: %v", err)
		return
	}
	for _, mf := range mfs {
		for _, met := range mf.GetMetric() {
			log.Debug("[%s]: %s: %s", mf.GetType(), mf.GetName(), met.String())
		}
	}
}
