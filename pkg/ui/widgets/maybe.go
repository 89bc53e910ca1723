package widgets

import (
	"github.com/odvcencio/pinpad/pkg/ui/backend"
	"github.com/odvcencio/pinpad/pkg/ui/runtime"
)

// Maybe wraps a widget with a visibility flag. A hidden widget paints
// its background instead of the child, so stale child pixels never
// leak. Visibility is independent of the child's own enabled state.
type Maybe struct {
	Base
	inner   runtime.Widget
	visible bool
	bg      backend.Style
}

// NewMaybe wraps inner with the given initial visibility.
func NewMaybe(inner runtime.Widget, visible bool, bg backend.Style) *Maybe {
	return &Maybe{inner: inner, visible: visible, bg: bg}
}

// Visible reports whether the child is shown.
func (m *Maybe) Visible() bool {
	return m.visible
}

// ShowIf sets visibility and invalidates on change.
func (m *Maybe) ShowIf(show bool) {
	if m.visible != show {
		m.visible = show
		m.Invalidate()
	}
}

// Inner returns the wrapped widget.
func (m *Maybe) Inner() runtime.Widget {
	return m.inner
}

// Measure delegates to the child.
func (m *Maybe) Measure(constraints runtime.Constraints) runtime.Size {
	return m.inner.Measure(constraints)
}

// Layout places the child at the same bounds.
func (m *Maybe) Layout(bounds runtime.Rect) {
	m.Base.Layout(bounds)
	m.inner.Layout(bounds)
}

// Render draws the child when visible, otherwise the background.
func (m *Maybe) Render(ctx runtime.RenderContext) {
	if m.visible {
		m.inner.Render(ctx)
	} else {
		ctx.Buffer.Fill(m.Bounds(), ' ', m.bg)
	}
	m.ClearInvalidation()
}

// HandleMessage forwards to the child only while visible.
func (m *Maybe) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !m.visible {
		return runtime.Unhandled()
	}
	return m.inner.HandleMessage(msg)
}
