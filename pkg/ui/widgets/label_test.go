package widgets

import (
	"testing"

	"github.com/odvcencio/pinpad/pkg/ui/backend"
	"github.com/odvcencio/pinpad/pkg/ui/runtime"
)

func TestLabelAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		want  string
	}{
		{"left", AlignLeft, "hi        "},
		{"center", AlignCenter, "    hi    "},
		{"right", AlignRight, "        hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel("hi", backend.DefaultStyle(), tt.align)
			l.Layout(runtime.NewRect(0, 0, 10, 1))
			assertFrame(t, tt.want, renderFrame(t, l, 10, 1))
		})
	}
}

func TestLabelTruncates(t *testing.T) {
	l := NewLabel("a very long line", backend.DefaultStyle(), AlignLeft)
	l.Layout(runtime.NewRect(0, 0, 6, 1))
	assertFrame(t, "a very    ", renderFrame(t, l, 10, 1))
}

func TestLabelSetText(t *testing.T) {
	l := NewLabel("one", backend.DefaultStyle(), AlignLeft)
	l.Layout(runtime.NewRect(0, 0, 5, 1))
	l.ClearInvalidation()

	l.SetText("two")
	if !l.NeedsRender() {
		t.Error("SetText should invalidate")
	}
	assertFrame(t, "two  ", renderFrame(t, l, 5, 1))

	l.ClearInvalidation()
	l.SetText("two")
	if l.NeedsRender() {
		t.Error("identical SetText should not invalidate")
	}
}

func TestLabelRendersOnFirstRow(t *testing.T) {
	l := NewLabel("x", backend.DefaultStyle(), AlignLeft)
	l.Layout(runtime.NewRect(1, 2, 3, 2))

	buf := runtime.NewBuffer(5, 5)
	l.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.NewRect(0, 0, 5, 5)})

	if got := buf.Get(1, 2).Rune; got != 'x' {
		t.Errorf("cell (1,2) = %q, want 'x'", got)
	}
}
