package tui

import (
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// DefaultQueueCapacity bounds the movement actions kept between two frames.
const DefaultQueueCapacity = 32

// KeyQueue buffers actions between frames and hands them to the game loop.
// It implements dodge.InputSource. Movement actions beyond the capacity push
// out the oldest ones (only the last movement of a frame matters); a quit
// request is never dropped.
//
// It is only touched from the Bubble Tea update loop and needs no locking.
type KeyQueue struct {
	pending  []core.Action
	capacity int
	quit     bool
	dropped  int
}

// NewKeyQueue creates a queue; a non-positive capacity selects the default.
func NewKeyQueue(capacity int) *KeyQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &KeyQueue{
		pending:  make([]core.Action, 0, capacity),
		capacity: capacity,
	}
}

// Push records an action for the next frame.
func (q *KeyQueue) Push(a core.Action) {
	switch {
	case a == core.ActionQuit:
		q.quit = true
	case a.IsMovement():
		if len(q.pending) == q.capacity {
			copy(q.pending, q.pending[1:])
			q.pending = q.pending[:len(q.pending)-1]
			q.dropped++
		}
		q.pending = append(q.pending, a)
	}
}

// Poll drains the queue. It never blocks.
func (q *KeyQueue) Poll() []core.Action {
	if len(q.pending) == 0 && !q.quit {
		return nil
	}
	out := make([]core.Action, 0, len(q.pending)+1)
	out = append(out, q.pending...)
	if q.quit {
		out = append(out, core.ActionQuit)
	}
	q.Clear()
	return out
}

// Clear discards everything pending, including a quit request.
func (q *KeyQueue) Clear() {
	q.pending = q.pending[:0]
	q.quit = false
}

// QuitPending reports whether a quit request is waiting for the next frame.
func (q *KeyQueue) QuitPending() bool {
	return q.quit
}

// Len returns the number of pending actions.
func (q *KeyQueue) Len() int {
	n := len(q.pending)
	if q.quit {
		n++
	}
	return n
}

// Dropped returns how many movement actions were discarded on overflow.
func (q *KeyQueue) Dropped() int {
	return q.dropped
}
