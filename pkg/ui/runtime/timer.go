package runtime

import (
	"time"

	"github.com/google/uuid"
)

// TimerHandle is an opaque token identifying a single-shot timer
// request. Handles are compared by equality; the zero value matches no
// timer.
type TimerHandle struct {
	id uuid.UUID
}

// NewTimerHandle returns a fresh, unique handle.
func NewTimerHandle() TimerHandle {
	return TimerHandle{id: uuid.New()}
}

// Valid reports whether the handle identifies a requested timer.
func (h TimerHandle) Valid() bool {
	return h.id != uuid.Nil
}

// Scheduler hands out single-shot wake-up requests. The owner of the
// event loop delivers a TimerMsg carrying the returned handle when the
// duration elapses. Unmatched handles are eventually discarded by the
// scheduler; widgets never cancel explicitly.
type Scheduler interface {
	After(d time.Duration) TimerHandle
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration) TimerHandle

// After implements Scheduler.
func (f SchedulerFunc) After(d time.Duration) TimerHandle {
	return f(d)
}
