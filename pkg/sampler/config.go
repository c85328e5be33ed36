package sampler

import (
	"strconv"
	"time"
)

const (
	defaultCommand      = "sudo"
	defaultPowermetrics = "powermetrics"
	defaultWindow       = time.Second
)

// defaultArgs asks for one cpu_power sample. -i is rewritten from Window.
var defaultArgs = []string{
	defaultPowermetrics,
	"-i", "1000",
	"-n", "1",
	"--samplers", "cpu_power",
	"-f", "json",
}

// Config describes how powermetrics is invoked. The zero value runs
// "sudo powermetrics" with a one second measurement window.
type Config struct {
	// Command is the program that is executed, "sudo" unless overridden
	Command string
	// Args are passed to Command
	Args []string
	// Window is the powermetrics measurement window
	Window time.Duration
}

// DirectConfig returns a Config that runs the powermetrics binary at path
// without sudo.
func DirectConfig(path string) Config {
	return Config{
		Command: path,
		Args:    append([]string{}, defaultArgs[1:]...),
	}
}

// SudoConfig returns a Config that runs the powermetrics binary at path
// through sudo.
func SudoConfig(path string) Config {
	args := append([]string{}, defaultArgs...)
	args[0] = path
	return Config{
		Command: defaultCommand,
		Args:    args,
	}
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg

	if normalized.Command == "" {
		normalized.Command = defaultCommand
	}

	var args []string
	if len(normalized.Args) == 0 {
		args = append([]string{}, defaultArgs...)
	} else {
		args = append([]string{}, normalized.Args...)
	}

	if normalized.Window <= 0 {
		normalized.Window = defaultWindow
	}

	normalized.Args = ensureIntervalArgument(args, normalized.Window)
	return normalized
}

func ensureIntervalArgument(args []string, window time.Duration) []string {
	interval := strconv.FormatInt(window.Milliseconds(), 10)
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-i" {
			args[i+1] = interval
			return args
		}
	}
	return append(args, "-i", interval)
}
