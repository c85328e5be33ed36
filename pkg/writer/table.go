package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/digitalocean/clockmon/pkg/sampler"
)

const (
	banner    = "CPU Clock Monitor - Press Ctrl+C to stop"
	rowFormat = "%-20s %-15s %-15s\n"
	ruleWidth = 50
)

// Table writes samples as fixed width rows to an io.Writer
type Table struct {
	w io.Writer
	m *sync.Mutex
}

// NewTable creates a new Table writer with the provided writer
func NewTable(w io.Writer) *Table {
	return &Table{
		w: w,
		m: new(sync.Mutex),
	}
}

// WriteHeader writes the banner, column titles and separator
func (t *Table) WriteHeader() error {
	t.m.Lock()
	defer t.m.Unlock()

	_, err := fmt.Fprintf(t.w, "%s\n"+rowFormat+"%s\n",
		banner,
		"Time", "P-Core(MHz)", "E-Core(MHz)",
		strings.Repeat("-", ruleWidth))
	return err
}

// Write writes one row for s
func (t *Table) Write(s sampler.Sample) error {
	t.m.Lock()
	defer t.m.Unlock()

	_, err := fmt.Fprintf(t.w, rowFormat,
		strconv.FormatInt(s.Timestamp.Unix(), 10),
		formatMHz(s.PCluster),
		formatMHz(s.ECluster))
	return err
}

// Name is the name of this writer
func (t *Table) Name() string {
	return "table"
}

// formatMHz prints whole values without a fraction
func formatMHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
