// Package obslog is a small request/operation logger used by the HTTP
// front end, giving handlers and middleware one shared line format.
package obslog

import (
	"log"
	"os"
)

// Logger wraps the standard library logger with a fixed prefix. The
// zero value is not usable; construct with New.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to stderr, tagged with prefix.
func New(prefix string) *Logger {
	return &Logger{log.New(os.Stderr, prefix+" ", log.LstdFlags)}
}

// Default is the package-level logger used when callers have no
// reason to carry their own instance.
var Default = New("[pepalign]")

// Request logs one completed HTTP request line.
func (l *Logger) Request(method, path string, status int, reqID string, durationMs int64) {
	l.Printf("%s %s %d %dms reqid=%s", method, path, status, durationMs, reqID)
}

// Errorf logs a formatted operational error.
func (l *Logger) Errorf(format string, args ...any) {
	l.Printf("ERROR "+format, args...)
}
