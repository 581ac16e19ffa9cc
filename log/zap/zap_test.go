package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/untagged"
)

func TestLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("candidate rejected", untagged.Fields{"candidate": "lxns.Notes", "err": errors.New("boom")})
	l.Warn("no candidate matched", nil)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "untagged" || e.Level != zapcore.DebugLevel {
		t.Fatalf("entry=%+v", e.Entry)
	}
	ctx := e.ContextMap()
	if ctx["candidate"] != "lxns.Notes" || ctx["err"] != "boom" {
		t.Fatalf("fields=%v", ctx)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("level=%v", entries[1].Level)
	}
}
