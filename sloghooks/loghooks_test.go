package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}

func TestEventsAreLogged(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{})

	h.CandidateRejected("lxns.Notes", errors.New("unknown member"))
	h.NoMatch("lxns.Notes", "lxns.BuddyNotes")
	h.EncodeEmpty("lxns.Notes", "lxns.BuddyNotes")

	out := buf.String()
	for _, want := range []string{
		"untagged.candidate_rejected",
		"candidate=lxns.Notes",
		`err="unknown member"`,
		"untagged.no_match",
		"untagged.encode_empty",
		"b=lxns.BuddyNotes",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRejectSampling(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{RejectEvery: 2})
	for i := 0; i < 4; i++ {
		h.CandidateRejected("A", errors.New("x"))
	}
	if n := strings.Count(buf.String(), "untagged.candidate_rejected"); n != 2 {
		t.Fatalf("logged %d times, want 2", n)
	}
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	h.CandidateRejected("A", errors.New("x"))
	h.NoMatch("A", "B")
	h.EncodeEmpty("A", "B")
}
