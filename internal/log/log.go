package log

import (
	"fmt"
	"io"
	"log"
	"log/syslog"
	"os"
)

// Level is a log level such a Debug or Error
type Level int

const (
	syslogFlags = log.Lshortfile
	normalFlags = log.LUTC | log.Ldate | log.Ltime | log.Lshortfile
)

const (
	// LevelDebug enables debug logging
	LevelDebug Level = iota
	// LevelInfo enables info logging
	LevelInfo
	// LevelError enables error logging
	LevelError
)

// stdout belongs to the frequency table, so every logger writes to stderr
var (
	debuglog = log.New(os.Stderr, "DEBUG: ", normalFlags)
	infolog  = log.New(os.Stderr, "INFO: ", normalFlags)
	errlog   = log.New(os.Stderr, "ERROR: ", normalFlags)

	level = LevelInfo

	exit = os.Exit
)

// SetLevel sets the log level
func SetLevel(l Level) {
	level = l
}

// SetOutput redirects all non-syslog loggers to w
func SetOutput(w io.Writer) {
	debuglog.SetOutput(w)
	infolog.SetOutput(w)
	errlog.SetOutput(w)
}

// InitSyslog initializes logging to syslog
func InitSyslog() (err error) {
	dl, err := syslog.NewLogger(syslog.LOG_DEBUG, syslogFlags)
	if err != nil {
		return fmt.Errorf("InitSyslog failed to initialize debug logger: %+v", err)
	}
	debuglog = dl

	il, err := syslog.NewLogger(syslog.LOG_NOTICE, syslogFlags)
	if err != nil {
		return fmt.Errorf("InitSyslog failed to initialize info logger: %+v", err)
	}
	infolog = il

	el, err := syslog.NewLogger(syslog.LOG_ERR, syslogFlags)
	if err != nil {
		return fmt.Errorf("InitSyslog failed to initialize error logger: %+v", err)
	}
	errlog = el

	return nil
}

// Debug prints a debug message. If syslog is enabled then LOG_DEBUG is used
func Debug(msg string, params ...interface{}) {
	if level > LevelDebug {
		return
	}
	output(debuglog, msg, params...)
}

// Info prints an informational message. If syslog is enabled then LOG_NOTICE is used
func Info(msg string, params ...interface{}) {
	if level > LevelInfo {
		return
	}
	output(infolog, msg, params...)
}

// Error prints an error message. If syslog is enabled then LOG_ERR is used
func Error(msg string, params ...interface{}) {
	output(errlog, msg, params...)
}

// Fatal logs Error and exits 1
func Fatal(msg string, params ...interface{}) {
	output(errlog, msg, params...)
	exit(1)
}

func output(l *log.Logger, msg string, params ...interface{}) {
	// 3 skips output and the exported caller so the file points at the call site
	if err := l.Output(3, fmt.Sprintf(msg, params...)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR writing log output: %+v", err)
	}
}
