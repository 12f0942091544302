// Package logger provides the coloured, component-prefixed logger used across the service.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-pcg/config"
)

var ErrNilWriter = errors.New("logger: nil writer")

// Logger writes leveled messages behind a coloured component prefix.
type Logger struct {
	*log.Logger
}

// New creates a Logger whose lines start with "[prefix]" in the given colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	p := color + "[" + prefix + "]" + config.ColorReset + " "
	return &Logger{Logger: log.New(w, p, log.LstdFlags)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.Printf("%s[WARNING]%s %s", config.LogWarningColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
