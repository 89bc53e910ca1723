package widgets

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/odvcencio/pinpad/pkg/ui/runtime"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
)

// renderFrame renders a widget into a fresh buffer and returns the
// frame as newline-joined rows, for snapshot comparisons.
func renderFrame(t *testing.T, w runtime.Widget, width, height int) string {
	t.Helper()

	buf := runtime.NewBuffer(width, height)
	w.Render(runtime.RenderContext{
		Buffer: buf,
		Theme:  theme.Default(),
		Bounds: runtime.NewRect(0, 0, width, height),
	})

	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := buf.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		if y < height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// assertFrame compares a rendered frame against the expected one and
// fails with a unified diff on mismatch.
func assertFrame(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	t.Errorf("frame mismatch:\n%s", diff)
}
