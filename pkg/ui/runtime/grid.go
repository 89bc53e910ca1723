package runtime

// Grid divides a rect into equally sized cells with fixed spacing
// between them. Cell indices run in reading order: left-to-right,
// top-to-bottom.
type Grid struct {
	Area    Rect
	Rows    int
	Cols    int
	Spacing int
}

// NewGrid creates a grid over the given area.
func NewGrid(area Rect, rows, cols int) Grid {
	return Grid{Area: area, Rows: rows, Cols: cols}
}

// WithSpacing returns a copy of the grid with the given cell spacing.
func (g Grid) WithSpacing(spacing int) Grid {
	g.Spacing = spacing
	return g
}

// RowCol returns the rect of the cell at (row, col).
func (g Grid) RowCol(row, col int) Rect {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ZeroRect
	}

	cellW := (g.Area.Width - (g.Cols-1)*g.Spacing) / g.Cols
	cellH := (g.Area.Height - (g.Rows-1)*g.Spacing) / g.Rows

	return Rect{
		X:      g.Area.X + col*(cellW+g.Spacing),
		Y:      g.Area.Y + row*(cellH+g.Spacing),
		Width:  cellW,
		Height: cellH,
	}
}

// Cell returns the rect of the i-th cell in reading order.
func (g Grid) Cell(i int) Rect {
	if g.Cols == 0 {
		return ZeroRect
	}
	return g.RowCol(i/g.Cols, i%g.Cols)
}
