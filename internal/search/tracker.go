package search

import (
	"context"
	"sync"
)

// Tracker keeps at most one search in flight. Starting a new search cancels the
// previous one and bumps the sequence number used to discard late results.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	text   string
	cancel context.CancelFunc
}

// Begin cancels any in-flight search and returns the context and sequence number
// for a new one.
func (t *Tracker) Begin(parent context.Context, text string) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.seq++
	t.text = text
	return ctx, t.seq
}

// Finish releases the context of seq if it is still the current search.
// It reports whether seq is current.
func (t *Tracker) Finish(seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return true
}

// Current returns the sequence number and text of the latest search
func (t *Tracker) Current() (uint64, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq, t.text
}

// Stop cancels the in-flight search, if any
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
