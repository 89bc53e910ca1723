package runtime

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 5, 4)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{6, 6, true},  // inclusive bottom-right cell
		{7, 3, false}, // one past the right edge
		{2, 7, false}, // one past the bottom edge
		{1, 3, false},
		{2, 2, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if got := a.Intersection(b); got != (Rect{5, 5, 5, 5}) {
		t.Errorf("Intersection = %+v", got)
	}
	if got := a.Intersection(NewRect(20, 20, 5, 5)); got != ZeroRect {
		t.Errorf("disjoint Intersection = %+v, want zero", got)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	if got := r.Inset(1, 2, 1, 2); got != (Rect{2, 1, 16, 8}) {
		t.Errorf("Inset = %+v", got)
	}
	// Over-inset collapses to zero size, never negative.
	if got := r.Inset(6, 0, 6, 0); got.Height != 0 {
		t.Errorf("over-inset Height = %d, want 0", got.Height)
	}
}

func TestRectSplitBottom(t *testing.T) {
	r := NewRect(0, 0, 29, 24)

	top, bottom := r.SplitBottom(15)
	if top != (Rect{0, 0, 29, 9}) {
		t.Errorf("top = %+v", top)
	}
	if bottom != (Rect{0, 9, 29, 15}) {
		t.Errorf("bottom = %+v", bottom)
	}

	// Asking for more than available gives everything to the bottom.
	top, bottom = r.SplitBottom(100)
	if top.Height != 0 {
		t.Errorf("oversized split top = %+v", top)
	}
	if bottom != r {
		t.Errorf("oversized split bottom = %+v", bottom)
	}
}

func TestRectLeftCenter(t *testing.T) {
	x, y := NewRect(2, 1, 25, 7).LeftCenter()
	if x != 2 || y != 4 {
		t.Errorf("LeftCenter = (%d, %d), want (2, 4)", x, y)
	}
}

func TestConstraintsConstrain(t *testing.T) {
	c := Constraints{MinWidth: 2, MaxWidth: 10, MinHeight: 1, MaxHeight: 5}

	tests := []struct {
		in, want Size
	}{
		{Size{5, 3}, Size{5, 3}},
		{Size{20, 20}, Size{10, 5}},
		{Size{0, 0}, Size{2, 1}},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTightAndLoose(t *testing.T) {
	tight := Tight(7, 3)
	if tight.Constrain(Size{100, 100}) != (Size{7, 3}) {
		t.Error("Tight should force the exact size")
	}

	loose := Loose(7, 3)
	if loose.Constrain(Size{1, 1}) != (Size{1, 1}) {
		t.Error("Loose should allow smaller sizes")
	}
	if loose.MaxSize() != (Size{7, 3}) {
		t.Error("Loose MaxSize mismatch")
	}
}

func TestHandleResultHelpers(t *testing.T) {
	if !Handled().Handled || len(Handled().Commands) != 0 {
		t.Error("Handled() malformed")
	}
	if Unhandled().Handled {
		t.Error("Unhandled() malformed")
	}

	res := WithCommand(Quit{})
	if !res.Handled || len(res.Commands) != 1 {
		t.Errorf("WithCommand = %+v", res)
	}
	if _, ok := res.Commands[0].(Quit); !ok {
		t.Errorf("command type = %T, want Quit", res.Commands[0])
	}
}
