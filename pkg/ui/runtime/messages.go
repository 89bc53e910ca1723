package runtime

import (
	"time"

	"github.com/odvcencio/pinpad/pkg/ui/terminal"
)

// Message represents an event flowing into the UI.
// Messages come from the input backend, the timer service, or tests.
type Message interface {
	isMessage()
}

// TouchPhase distinguishes the two ends of a touch gesture.
type TouchPhase int

const (
	TouchPress TouchPhase = iota
	TouchRelease
)

// TouchMsg represents a discrete touch event carrying a position.
// Backends deliver touch-down/touch-up pairs in order; no coalescing
// is performed by the runtime.
type TouchMsg struct {
	X, Y  int
	Phase TouchPhase
}

func (TouchMsg) isMessage() {}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key  terminal.Key
	Rune rune
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the display size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TimerMsg is the delivery of a previously requested single-shot timer.
// Widgets recognize their own timer by comparing the handle against the
// one they hold; stale or foreign handles are ignored.
type TimerMsg struct {
	Handle TimerHandle
	Time   time.Time
}

func (TimerMsg) isMessage() {}

// TickMsg is sent on each frame tick for animations.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}
