package v3d

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Logger receives human-readable trace lines from every operation.
// Installing one never changes a computed result.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)    {}
func (nopLogger) Warningf(string, ...any) {}
func (nopLogger) Errorf(string, ...any)   {}

type loggerHolder struct{ Logger }

var sink atomic.Pointer[loggerHolder]

func init() {
	sink.Store(&loggerHolder{nopLogger{}})
}

// SetLogger installs l as the package diagnostic sink. A nil l restores
// the no-op sink.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	sink.Store(&loggerHolder{l})
}

func logger() Logger { return sink.Load().Logger }

// StdLogger writes level-tagged lines to a standard library logger.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a Logger backed by l.
func NewStdLogger(l *log.Logger) *StdLogger {
	return &StdLogger{l: l}
}

func (s *StdLogger) Infof(format string, args ...any) {
	s.l.Output(2, "INFO "+fmt.Sprintf(format, args...))
}

func (s *StdLogger) Warningf(format string, args ...any) {
	s.l.Output(2, "WARNING "+fmt.Sprintf(format, args...))
}

func (s *StdLogger) Errorf(format string, args ...any) {
	s.l.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}
