package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/untagged"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery  uint64
	NoMatchEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr  atomic.Uint64
	noMatchCtr atomic.Uint64
}

var _ untagged.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CandidateRejected(candidate string, err error) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("untagged.candidate_rejected",
		"candidate", candidate,
		"err", err)
}

func (h *Hooks) NoMatch(a, b string) {
	if h.l == nil || !sample(h.opts.NoMatchEvery, &h.noMatchCtr) {
		return
	}
	h.l.Info("untagged.no_match",
		"a", a,
		"b", b)
}

func (h *Hooks) EncodeEmpty(a, b string) {
	if h.l == nil {
		return
	}
	h.l.Warn("untagged.encode_empty",
		"a", a,
		"b", b)
}
