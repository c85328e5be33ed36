// Package sampler reads the performance and efficiency cluster frequencies
// reported by powermetrics.
package sampler

import (
	"context"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	pClusterRegexp = regexp.MustCompile(`P-Cluster HW active frequency: (\d+\.?\d*) MHz`)
	eClusterRegexp = regexp.MustCompile(`E-Cluster HW active frequency: (\d+\.?\d*) MHz`)

	// ErrInvalidUTF8 is returned when powermetrics output is not valid UTF-8
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrNoCommand is returned when the configured command is empty
	ErrNoCommand = errors.New("no command configured")
)

// Sample is a single reading of both cluster frequencies in MHz. A value
// that could not be read is 0 and its OK flag is false.
type Sample struct {
	PCluster   float64
	ECluster   float64
	PClusterOK bool
	EClusterOK bool
	Timestamp  time.Time
}

// Sampler invokes powermetrics and extracts a Sample from its output
type Sampler struct {
	config Config
	runner Runner
	now    func() time.Time
}

// New creates a Sampler. Missing Config fields are filled with defaults and a
// nil runner executes the command with os/exec.
func New(cfg Config, r Runner) *Sampler {
	if r == nil {
		r = ExecRunner{}
	}
	return &Sampler{
		config: normalizeConfig(cfg),
		runner: r,
		now:    time.Now,
	}
}

// Config returns the normalized configuration in use
func (s *Sampler) Config() Config {
	return s.config
}

// Sample runs powermetrics once and parses the frequencies out of its output.
// Blocks for roughly the configured measurement window.
func (s *Sampler) Sample(ctx context.Context) (Sample, error) {
	if s.config.Command == "" {
		return Sample{}, ErrNoCommand
	}

	out, err := s.runner.Run(ctx, s.config.Command, s.config.Args...)
	if err != nil {
		return Sample{}, err
	}
	if err := ctx.Err(); err != nil {
		return Sample{}, errors.WithStack(err)
	}
	if !utf8.Valid(out) {
		return Sample{}, ErrInvalidUTF8
	}

	return Parse(string(out), s.now()), nil
}

// Parse extracts both cluster frequencies from text
func Parse(text string, ts time.Time) Sample {
	p, pOK := extract(pClusterRegexp, text)
	e, eOK := extract(eClusterRegexp, text)
	return Sample{
		PCluster:   p,
		ECluster:   e,
		PClusterOK: pOK,
		EClusterOK: eOK,
		Timestamp:  ts,
	}
}

func extract(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
