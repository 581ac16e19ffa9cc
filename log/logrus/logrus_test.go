package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/untagged"
)

func TestLoggerWritesFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("candidate rejected", untagged.Fields{"candidate": "lxns.Notes"})
	l.Error("boom", nil)

	if len(hook.Entries) != 2 {
		t.Fatalf("entries=%d", len(hook.Entries))
	}
	e := hook.Entries[0]
	if e.Level != logrus.DebugLevel || e.Message != "candidate rejected" {
		t.Fatalf("entry=%+v", e)
	}
	if e.Data["candidate"] != "lxns.Notes" || e.Data["component"] != "untagged" {
		t.Fatalf("data=%v", e.Data)
	}
	if hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatalf("level=%v", hook.LastEntry().Level)
	}
}
