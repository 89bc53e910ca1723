package runtime

import "github.com/odvcencio/pinpad/pkg/ui/theme"

// Screen manages the widget tree and rendering.
// It holds a single root widget; the keypad owns its children itself.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	theme         *theme.Theme
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.Default()
	}
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays-out the root.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)

	if s.root != nil {
		s.root.Layout(Rect{0, 0, w, h})
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	s.theme = th
}

// SetRoot sets the root widget and places it. The parent always places
// children before the first render.
func (s *Screen) SetRoot(root Widget) {
	s.root = root
	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Render draws the widget tree to the buffer.
func (s *Screen) Render() {
	s.buffer.Clear()

	if s.root == nil {
		return
	}

	s.root.Render(RenderContext{
		Buffer: s.buffer,
		Theme:  s.theme,
		Bounds: Rect{0, 0, s.width, s.height},
	})
}

// HandleMessage dispatches a message to the root widget.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	return s.root.HandleMessage(msg)
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer *Buffer
	Theme  *theme.Theme
	Bounds Rect // Widget's allocated bounds
}

// Sub creates a new context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer: ctx.Buffer,
		Theme:  ctx.Theme,
		Bounds: bounds,
	}
}
