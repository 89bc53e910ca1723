package pinpad

import (
	"github.com/odvcencio/pinpad/pkg/ui/runtime"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
	"github.com/odvcencio/pinpad/pkg/ui/widgets"
)

const (
	// maxVisibleDots caps the masked row regardless of PIN length.
	maxVisibleDots = 18
	// maxVisibleDigits is the trailing window shown in reveal mode.
	maxVisibleDigits = 18
)

// PinDots renders the PIN buffer either as an overflow-aware row of
// mask dots or, while touch-held, as a trailing window of the literal
// digits. It reads the buffer but never mutates it.
type PinDots struct {
	widgets.Base
	pin    *PinBuffer
	theme  *theme.Theme
	reveal bool
}

// NewPinDots creates the indicator over the given buffer.
func NewPinDots(pin *PinBuffer, th *theme.Theme) *PinDots {
	return &PinDots{pin: pin, theme: th}
}

// RevealActive reports whether the literal digits are currently shown.
func (d *PinDots) RevealActive() bool {
	return d.reveal
}

// HandleMessage flips reveal mode on touch gestures: touch-down inside
// the indicator area turns it on, any touch-up turns it off regardless
// of where the release lands. Returns Handled when the mode changed.
func (d *PinDots) HandleMessage(msg runtime.Message) runtime.HandleResult {
	touch, ok := msg.(runtime.TouchMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch touch.Phase {
	case runtime.TouchPress:
		if d.Bounds().Contains(touch.X, touch.Y) {
			d.reveal = true
			d.Invalidate()
			return runtime.Handled()
		}
	case runtime.TouchRelease:
		if d.reveal {
			d.reveal = false
			d.Invalidate()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

// Measure wants the full masked row width and one row of height.
func (d *PinDots) Measure(constraints runtime.Constraints) runtime.Size {
	ndots := min(d.pin.Len(), maxVisibleDots)
	return constraints.Constrain(runtime.Size{
		Width:  ndots * theme.Layout.DotPitch,
		Height: 1,
	})
}

// Render draws the indicator background and the current mode's
// content, vertically centered in the padded area.
func (d *PinDots) Render(ctx runtime.RenderContext) {
	bounds := d.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	ctx.Buffer.Fill(bounds, ' ', d.theme.Background)

	area := bounds.Inset(
		theme.Layout.HeaderPaddingTop,
		theme.Layout.HeaderPaddingSide,
		theme.Layout.HeaderPaddingBottom,
		theme.Layout.HeaderPaddingSide,
	)
	if area.Width <= 0 || area.Height <= 0 {
		return
	}

	if d.reveal {
		d.renderDigits(ctx, area)
	} else {
		d.renderDots(ctx, area)
	}
	d.ClearInvalidation()
}

// renderDigits shows the literal PIN, left aligned. Beyond the window
// only the trailing digits are drawn; terminal cells are fixed width,
// so positions do not shift as digits are appended within the window.
func (d *PinDots) renderDigits(ctx runtime.RenderContext, area runtime.Rect) {
	_, cy := area.LeftCenter()

	digits := d.pin.String()
	if len(digits) > maxVisibleDigits {
		digits = digits[len(digits)-maxVisibleDigits:]
	}
	ctx.Buffer.SetString(area.X, cy, digits, d.theme.PinText)
}

// renderDots shows one mask glyph per digit up to the visible cap.
// Past the cap, a dimmed dot (and, one digit later, a small leading
// glyph) signal truncated history on the left edge.
func (d *PinDots) renderDots(ctx runtime.RenderContext, area runtime.Rect) {
	x, cy := area.LeftCenter()

	digits := d.pin.Len()
	dotsVisible := min(digits, maxVisibleDots)
	step := theme.Layout.DotPitch

	// Jiggle when overflowed: a deliberate flicker cue that the length
	// is still changing near the overflow boundary.
	if digits > maxVisibleDots+1 && (digits+1)%2 == 0 {
		x += theme.Layout.JiggleOffset
	}

	shown := 0
	// Small leftmost glyph.
	if digits > maxVisibleDots+1 {
		ctx.Buffer.Set(x, cy, theme.Symbols.DotSmall, d.theme.PinOverflow)
		x += step
		shown++
	}

	// Dimmed dot.
	if digits > maxVisibleDots {
		ctx.Buffer.Set(x, cy, theme.Symbols.DotFull, d.theme.PinDim)
		x += step
		shown++
	}

	// One dot per remaining visible digit.
	for ; shown < dotsVisible; shown++ {
		ctx.Buffer.Set(x, cy, theme.Symbols.DotFull, d.theme.PinText)
		x += step
	}
}
