package event

import (
	"context"
	"errors"
)

// ErrInboxFull is returned by TryPost when the inbox has no free slot
var ErrInboxFull = errors.New(ErrMsgInboxFull)

// Inbox is the single multiplexed queue between background work and the planner loop.
// Delivery is FIFO across all kinds, so it is also FIFO per kind.
type Inbox struct {
	ch chan Event
}

// NewInbox creates an inbox buffering up to size events
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{ch: make(chan Event, size)}
}

// Post queues the event, blocking while the inbox is full until ctx is done.
func (i *Inbox) Post(ctx context.Context, e Event) error {
	select {
	case i.ch <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPost queues the event without blocking.
func (i *Inbox) TryPost(e Event) error {
	select {
	case i.ch <- e:
		return nil
	default:
		return ErrInboxFull
	}
}

// Drain returns the events queued when it was called, in arrival order, without
// blocking. Events posted while draining are left for the next call.
func (i *Inbox) Drain() []Event {
	n := len(i.ch)
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for k := 0; k < n; k++ {
		select {
		case e := <-i.ch:
			out = append(out, e)
		default:
			return out
		}
	}
	return out
}

// Len returns the number of queued events
func (i *Inbox) Len() int {
	return len(i.ch)
}
