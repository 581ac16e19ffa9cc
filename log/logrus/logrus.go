package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/untagged"
)

var _ untagged.Logger = Logger{}

// Logger adapts a logrus entry; every line carries component=untagged.
type Logger struct{ E *logrus.Entry }

func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "untagged")}
}

func (l Logger) Debug(msg string, f untagged.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f untagged.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f untagged.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f untagged.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f untagged.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
