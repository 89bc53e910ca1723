package widgets

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/pinpad/pkg/ui/runtime"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
)

// ButtonContent is the tagged variant of what a button displays:
// a text label or a single-rune icon.
type ButtonContent struct {
	text string
	icon rune
}

// TextContent creates text button content.
func TextContent(text string) ButtonContent {
	return ButtonContent{text: text}
}

// IconContent creates icon button content.
func IconContent(icon rune) ButtonContent {
	return ButtonContent{icon: icon}
}

// IsText reports whether the content is a text label.
func (c ButtonContent) IsText() bool {
	return c.text != ""
}

// Text returns the text label, or "" for icon content.
func (c ButtonContent) Text() string {
	return c.text
}

// ButtonMsg is the outcome of feeding one event to a button.
type ButtonMsg int

const (
	ButtonNone ButtonMsg = iota
	ButtonClicked
	ButtonLongPressed
)

// Button is a touch button. The owning widget drives it through Event
// and reads the result; buttons never emit commands on their own.
type Button struct {
	Base
	content ButtonContent
	styles  theme.ButtonStyle

	enabled bool
	pressed bool

	longPressAfter time.Duration
	pressedAt      time.Time
	now            func() time.Time
}

// NewButton creates an enabled button with the given content and styles.
func NewButton(content ButtonContent, styles theme.ButtonStyle) *Button {
	return &Button{
		content: content,
		styles:  styles,
		enabled: true,
		now:     time.Now,
	}
}

// WithLongPress arms long-press detection: a press held at least d
// reports ButtonLongPressed instead of ButtonClicked. At most one of
// the two fires per press.
func (b *Button) WithLongPress(d time.Duration) *Button {
	b.longPressAfter = d
	return b
}

// InitiallyDisabled returns the button disabled.
func (b *Button) InitiallyDisabled() *Button {
	b.enabled = false
	return b
}

// SetClock replaces the time source, for tests.
func (b *Button) SetClock(now func() time.Time) {
	b.now = now
}

// Content returns the button's content variant.
func (b *Button) Content() ButtonContent {
	return b.content
}

// Enabled reports whether the button accepts input.
func (b *Button) Enabled() bool {
	return b.enabled
}

// EnableIf sets the enabled flag and invalidates on change.
// A disabled button is inert: presses are swallowed without effect.
func (b *Button) EnableIf(enable bool) {
	if b.enabled != enable {
		b.enabled = enable
		if !enable {
			b.pressed = false
		}
		b.Invalidate()
	}
}

// Pressed reports whether a touch is currently held on the button.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Event feeds one message to the button and returns the gesture it
// completed, if any. A click fires on touch-up inside the bounds; a
// long press fires on touch-up after the hold threshold regardless of
// where the touch ended.
func (b *Button) Event(msg runtime.Message) ButtonMsg {
	touch, ok := msg.(runtime.TouchMsg)
	if !ok {
		return ButtonNone
	}

	switch touch.Phase {
	case runtime.TouchPress:
		if b.enabled && b.Bounds().Contains(touch.X, touch.Y) {
			b.pressed = true
			b.pressedAt = b.now()
			b.Invalidate()
		}
	case runtime.TouchRelease:
		if !b.pressed {
			return ButtonNone
		}
		b.pressed = false
		b.Invalidate()

		if b.longPressAfter > 0 && b.now().Sub(b.pressedAt) >= b.longPressAfter {
			return ButtonLongPressed
		}
		if b.Bounds().Contains(touch.X, touch.Y) {
			return ButtonClicked
		}
	}
	return ButtonNone
}

// Measure fills the available space; buttons are sized by the grid.
func (b *Button) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Render fills the bounds with the state style and draws the content
// centered.
func (b *Button) Render(ctx runtime.RenderContext) {
	bounds := b.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	style := b.styles.Normal
	switch {
	case !b.enabled:
		style = b.styles.Disabled
	case b.pressed:
		style = b.styles.Pressed
	}

	ctx.Buffer.Fill(bounds, ' ', style)

	cy := bounds.Y + bounds.Height/2
	if b.content.IsText() {
		w := runewidth.StringWidth(b.content.text)
		ctx.Buffer.SetString(bounds.X+(bounds.Width-w)/2, cy, b.content.text, style)
	} else {
		ctx.Buffer.Set(bounds.X+bounds.Width/2, cy, b.content.icon, style)
	}
	b.ClearInvalidation()
}
