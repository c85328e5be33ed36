package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalocean/clockmon/pkg/sampler"
)

func TestTableWriteHeader(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, NewTable(buf).WriteHeader())

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "CPU Clock Monitor - Press Ctrl+C to stop", lines[0])
	assert.Equal(t, "Time                 P-Core(MHz)     E-Core(MHz)    ", lines[1])
	assert.Equal(t, strings.Repeat("-", 50), lines[2])
	assert.Empty(t, lines[3])
}

func TestTableWrite(t *testing.T) {
	tests := []struct {
		name   string
		sample sampler.Sample
		want   string
	}{
		{
			name:   "whole values",
			sample: sampler.Sample{PCluster: 3504, ECluster: 2064, Timestamp: time.Unix(1700000000, 0)},
			want:   "1700000000           3504            2064           \n",
		},
		{
			name:   "fractional values",
			sample: sampler.Sample{PCluster: 3504.5, ECluster: 972.25, Timestamp: time.Unix(1700000002, 0)},
			want:   "1700000002           3504.5          972.25         \n",
		},
		{
			name:   "unavailable values",
			sample: sampler.Sample{Timestamp: time.Unix(1700000004, 0)},
			want:   "1700000004           0               0              \n",
		},
		{
			name:   "wide values are not truncated",
			sample: sampler.Sample{PCluster: 1234567.123456789, ECluster: 1, Timestamp: time.Unix(1700000006, 0)},
			want:   "1700000006           1234567.123456789 1              \n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, NewTable(buf).Write(test.sample))
			assert.Equal(t, test.want, buf.String())
		})
	}
}

func TestTableColumnsAreStable(t *testing.T) {
	buf := new(bytes.Buffer)
	table := NewTable(buf)
	require.NoError(t, table.Write(sampler.Sample{PCluster: 600, ECluster: 3504, Timestamp: time.Unix(1700000000, 0)}))
	require.NoError(t, table.Write(sampler.Sample{PCluster: 3504.75, ECluster: 6, Timestamp: time.Unix(1700000002, 0)}))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Len(t, line, 20+1+15+1+15)
		assert.Equal(t, byte(' '), line[20])
		assert.Equal(t, byte(' '), line[36])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTableWriteError(t *testing.T) {
	table := NewTable(failingWriter{})
	assert.EqualError(t, table.Write(sampler.Sample{}), "broken pipe")
	assert.EqualError(t, table.WriteHeader(), "broken pipe")
	assert.Equal(t, "table", table.Name())
}
