package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// DefaultHoldWindow is how long a direction key counts as held after its
// last press or auto-repeat.
const DefaultHoldWindow = 180 * time.Millisecond

// InputBuffer collects key presses from the UI goroutine and hands them to
// the simulation loop one frame at a time. Terminals report no key
// releases, so a direction stays held until its hold window expires, a
// different direction is pressed, or Stop is pressed.
type InputBuffer struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time

	dir      core.Action
	dirUntil time.Time
	pending  core.InputFrame
}

// NewInputBuffer creates a buffer with the given hold window.
func NewInputBuffer(hold time.Duration) *InputBuffer {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputBuffer{
		hold:    hold,
		now:     time.Now,
		pending: core.NewInputFrame(),
	}
}

// Press records one key press.
func (b *InputBuffer) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case a.IsDirection():
		b.dir = a
		b.dirUntil = b.now().Add(b.hold)
	case a == core.ActionStop:
		b.dir = core.ActionNone
		b.pending.Set(a)
	default:
		b.pending.Set(a)
	}
}

// Drain returns the frame for the next simulation tick: the held direction
// if it has not expired, plus every one-shot action pressed since the last
// drain.
func (b *InputBuffer) Drain() core.InputFrame {
	b.mu.Lock()
	defer b.mu.Unlock()

	frame := b.pending.Clone()
	b.pending.Clear()

	if b.dir != core.ActionNone {
		if b.now().Before(b.dirUntil) {
			frame.Set(b.dir)
		} else {
			b.dir = core.ActionNone
		}
	}
	return frame
}

// Held returns the currently held direction, or ActionNone.
func (b *InputBuffer) Held() core.Action {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dir != core.ActionNone && !b.now().Before(b.dirUntil) {
		return core.ActionNone
	}
	return b.dir
}

// Reset drops the held direction and pending actions.
func (b *InputBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dir = core.ActionNone
	b.pending.Clear()
}
