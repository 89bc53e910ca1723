package runtime

import (
	"testing"

	"github.com/odvcencio/pinpad/pkg/ui/backend"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
)

// stubWidget records the runtime's calls for assertions.
type stubWidget struct {
	layouts  []Rect
	rendered int
	messages []Message
	result   HandleResult
}

func (w *stubWidget) Measure(c Constraints) Size { return c.MaxSize() }
func (w *stubWidget) Layout(bounds Rect)         { w.layouts = append(w.layouts, bounds) }

func (w *stubWidget) Render(ctx RenderContext) {
	w.rendered++
	ctx.Buffer.Set(0, 0, '@', backend.DefaultStyle())
}

func (w *stubWidget) HandleMessage(msg Message) HandleResult {
	w.messages = append(w.messages, msg)
	return w.result
}

func TestScreenSetRootPlacesWidget(t *testing.T) {
	s := NewScreen(29, 24, theme.Default())
	w := &stubWidget{}

	s.SetRoot(w)

	if len(w.layouts) != 1 {
		t.Fatalf("layouts = %d, want 1", len(w.layouts))
	}
	if w.layouts[0] != (Rect{0, 0, 29, 24}) {
		t.Errorf("layout bounds = %+v", w.layouts[0])
	}
}

func TestScreenResizeRelaysOut(t *testing.T) {
	s := NewScreen(29, 24, theme.Default())
	w := &stubWidget{}
	s.SetRoot(w)

	s.Resize(40, 30)

	if got := w.layouts[len(w.layouts)-1]; got != (Rect{0, 0, 40, 30}) {
		t.Errorf("bounds after resize = %+v", got)
	}
	if bw, bh := s.Buffer().Size(); bw != 40 || bh != 30 {
		t.Errorf("buffer size = %dx%d", bw, bh)
	}
}

func TestScreenRender(t *testing.T) {
	s := NewScreen(10, 5, theme.Default())
	w := &stubWidget{}
	s.SetRoot(w)

	s.Render()

	if w.rendered != 1 {
		t.Errorf("rendered = %d, want 1", w.rendered)
	}
	if got := s.Buffer().Get(0, 0).Rune; got != '@' {
		t.Errorf("cell (0,0) = %q, want '@'", got)
	}
}

func TestScreenRenderWithoutRoot(t *testing.T) {
	s := NewScreen(10, 5, theme.Default())
	s.Render() // must not panic

	if s.HandleMessage(TickMsg{}).Handled {
		t.Error("rootless screen must not handle messages")
	}
}

func TestScreenHandleMessageDispatch(t *testing.T) {
	s := NewScreen(10, 5, theme.Default())
	w := &stubWidget{result: WithCommand(PinCancelled{})}
	s.SetRoot(w)

	msg := TouchMsg{X: 1, Y: 1, Phase: TouchPress}
	res := s.HandleMessage(msg)

	if len(w.messages) != 1 || w.messages[0] != Message(msg) {
		t.Errorf("widget saw %+v", w.messages)
	}
	if !res.Handled || len(res.Commands) != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestScreenNilThemeFallsBack(t *testing.T) {
	s := NewScreen(10, 5, nil)
	if s.Theme() == nil {
		t.Error("nil theme should fall back to the default")
	}
}

func TestRenderContextSub(t *testing.T) {
	buf := NewBuffer(10, 5)
	ctx := RenderContext{Buffer: buf, Theme: theme.Default(), Bounds: Rect{0, 0, 10, 5}}

	sub := ctx.Sub(Rect{2, 1, 4, 2})
	if sub.Buffer != buf || sub.Bounds != (Rect{2, 1, 4, 2}) {
		t.Errorf("Sub = %+v", sub)
	}
}
