package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return buf
}

func TestLevelGate(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{level: LevelDebug, wantDebug: true, wantInfo: true},
		{level: LevelInfo, wantDebug: false, wantInfo: true},
		{level: LevelError, wantDebug: false, wantInfo: false},
	}

	for _, test := range tests {
		buf := capture(t)
		SetLevel(test.level)

		Debug("debug %d", 1)
		Info("info %d", 2)
		Error("error %d", 3)

		out := buf.String()
		assert.Equal(t, test.wantDebug, bytes.Contains(buf.Bytes(), []byte("DEBUG: ")), out)
		assert.Equal(t, test.wantInfo, bytes.Contains(buf.Bytes(), []byte("INFO: ")), out)
		assert.Contains(t, out, "ERROR: ")
		assert.Contains(t, out, "error 3")
	}
}

func TestOutputPointsAtCaller(t *testing.T) {
	buf := capture(t)

	Error("boom")

	assert.Contains(t, buf.String(), "log_test.go:")
}

func TestFatalExits(t *testing.T) {
	buf := capture(t)
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	Fatal("cannot continue: %s", "reason")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "cannot continue: reason")
}
