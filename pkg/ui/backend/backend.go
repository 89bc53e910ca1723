// Package backend defines the render/input backend for the keypad UI.
// The abstraction allows swapping between tcell (real terminals) and the
// simulation backend (automated UI tests) without touching widget code.
package backend

import "github.com/odvcencio/pinpad/pkg/ui/terminal"

// Backend is the display abstraction layer. Implementations handle
// input events and screen output; rendering is pull-based, driven by
// the runtime, never by widgets.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini cleans up the backend (restores terminal state).
	Fini()

	// Size returns the current display dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	SetContent(x, y int, mainc rune, style Style)

	// Show synchronizes the internal buffer to the display.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent blocks until an event is available and returns it.
	// Returns nil if the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue.
	// Used by tests and by the simulation backend.
	PostEvent(ev terminal.Event) error

	// Sync forces a full redraw on next Show().
	Sync()
}
