// Package theme provides the visual design system for the keypad UI.
// A Theme is an immutable value threaded through widget constructors;
// there is no ambient global style state.
package theme

import (
	"time"

	"github.com/odvcencio/pinpad/pkg/ui/backend"
)

// ButtonStyle groups the styles a button cycles through.
type ButtonStyle struct {
	Normal   backend.Style
	Pressed  backend.Style
	Disabled backend.Style
}

// Theme defines the complete visual language for the keypad.
type Theme struct {
	// Core palette
	Background backend.Style
	Surface    backend.Style

	// Prompt labels
	LabelMajor   backend.Style // Main prompt
	LabelMinor   backend.Style // Secondary prompt
	LabelWarning backend.Style // Warning shown until its timer fires

	// PIN indicator
	PinText     backend.Style // Revealed digits and normal mask dots
	PinDim      backend.Style // Dimmed mask dot at the overflow edge
	PinOverflow backend.Style // Small leading overflow glyph

	// Buttons
	ButtonKeyboard ButtonStyle // Digit keys
	ButtonErase    ButtonStyle
	ButtonCancel   ButtonStyle
	ButtonConfirm  ButtonStyle
}

// Default returns the dark keypad theme: rich blacks, warm amber
// accents, coral warnings.
func Default() *Theme {
	bg := backend.DefaultStyle().Background(backend.ColorRGB(12, 12, 16))
	surface := backend.DefaultStyle().Background(backend.ColorRGB(22, 22, 28))

	return &Theme{
		Background: bg,
		Surface:    surface,

		LabelMajor:   bg.Foreground(backend.ColorRGB(240, 238, 232)),
		LabelMinor:   bg.Foreground(backend.ColorRGB(160, 158, 150)),
		LabelWarning: bg.Foreground(backend.ColorRGB(255, 138, 101)).Bold(true),

		PinText:     bg.Foreground(backend.ColorRGB(255, 183, 77)),
		PinDim:      bg.Foreground(backend.ColorRGB(180, 130, 60)).Dim(true),
		PinOverflow: bg.Foreground(backend.ColorRGB(100, 98, 92)),

		ButtonKeyboard: ButtonStyle{
			Normal:   surface.Foreground(backend.ColorRGB(240, 238, 232)),
			Pressed:  surface.Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(255, 183, 77)),
			Disabled: surface.Foreground(backend.ColorRGB(100, 98, 92)).Dim(true),
		},
		ButtonErase: ButtonStyle{
			Normal:   surface.Foreground(backend.ColorRGB(160, 158, 150)),
			Pressed:  surface.Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(160, 158, 150)),
			Disabled: surface.Foreground(backend.ColorRGB(100, 98, 92)).Dim(true),
		},
		ButtonCancel: ButtonStyle{
			Normal:   surface.Foreground(backend.ColorRGB(255, 138, 101)),
			Pressed:  surface.Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(255, 138, 101)),
			Disabled: surface.Foreground(backend.ColorRGB(100, 98, 92)).Dim(true),
		},
		ButtonConfirm: ButtonStyle{
			Normal:   surface.Foreground(backend.ColorRGB(134, 239, 172)).Bold(true),
			Pressed:  surface.Foreground(backend.ColorRGB(12, 12, 16)).Background(backend.ColorRGB(134, 239, 172)),
			Disabled: surface.Foreground(backend.ColorRGB(100, 98, 92)).Dim(true),
		},
	}
}

// Symbols provides consistent iconography.
var Symbols = struct {
	// PIN indicator glyphs
	DotFull  rune // One entered digit, value hidden
	DotSmall rune // Leading overflow marker

	// Control icons
	IconErase   rune
	IconCancel  rune
	IconConfirm rune
}{
	DotFull:  '●',
	DotSmall: '·',

	IconErase:   '⌫',
	IconCancel:  '✗',
	IconConfirm: '✓',
}

// Layout defines fixed keypad geometry and timings.
var Layout = struct {
	// Button grid
	PinButtonHeight int
	ButtonSpacing   int

	// Header (prompts + PIN indicator)
	HeaderPaddingTop    int
	HeaderPaddingSide   int
	HeaderPaddingBottom int

	// PIN indicator
	DotPitch     int // Horizontal cells per mask glyph
	JiggleOffset int

	// Timings
	EraseHoldDuration time.Duration
	WarningTimeout    time.Duration
}{
	PinButtonHeight: 3,
	ButtonSpacing:   1,

	HeaderPaddingTop:    1,
	HeaderPaddingSide:   2,
	HeaderPaddingBottom: 1,

	DotPitch:     2,
	JiggleOffset: 1,

	EraseHoldDuration: 1500 * time.Millisecond,
	WarningTimeout:    2 * time.Second,
}
