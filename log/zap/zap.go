package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/untagged"
)

var _ untagged.Logger = Logger{}

// Logger adapts a *zap.Logger. Entries are written under the "untagged" name.
type Logger struct{ L *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{L: l.Named("untagged")} }

func (z Logger) Debug(msg string, f untagged.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f untagged.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f untagged.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f untagged.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f untagged.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
