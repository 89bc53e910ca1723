package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/pinpad/pkg/ui/backend"
	"github.com/odvcencio/pinpad/pkg/ui/runtime"
)

// Alignment positions a label's text within its bounds.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a single-line text widget.
type Label struct {
	Base
	text  string
	style backend.Style
	align Alignment
}

// NewLabel creates a label with the given text, style, and alignment.
func NewLabel(text string, style backend.Style, align Alignment) *Label {
	return &Label{text: text, style: style, align: align}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	if l.text != text {
		l.text = text
		l.Invalidate()
	}
}

// SetStyle replaces the label's style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
	l.Invalidate()
}

// Measure returns the text width and a height of one row.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.text),
		Height: 1,
	})
}

// Render draws the text on the first row of the bounds, truncated to
// fit, positioned per the alignment.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	text := runewidth.Truncate(l.text, bounds.Width, "")
	w := runewidth.StringWidth(text)

	x := bounds.X
	switch l.align {
	case AlignCenter:
		x += (bounds.Width - w) / 2
	case AlignRight:
		x += bounds.Width - w
	}

	ctx.Buffer.SetString(x, bounds.Y, text, l.style)
	l.ClearInvalidation()
}
