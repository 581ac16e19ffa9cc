// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    RejectEvery: 100, // sample: ~every 100th rejected candidate
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := untagged.JSON[lxns.Notes, lxns.BuddyNotes](untagged.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/untagged"
)

type Hooks struct {
	inner untagged.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	mu     sync.RWMutex
	closed bool
}

var _ untagged.Hooks = (*Hooks)(nil)

func New(inner untagged.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CandidateRejected(c string, err error) {
	h.try(func() { h.inner.CandidateRejected(c, err) })
}
func (h *Hooks) NoMatch(a, b string)     { h.try(func() { h.inner.NoMatch(a, b) }) }
func (h *Hooks) EncodeEmpty(a, b string) { h.try(func() { h.inner.EncodeEmpty(a, b) }) }
