package canvas

import (
	"math"
	"strings"
)

const (
	// Canvas units covered by one terminal cell at zoom 0. Cells are roughly
	// twice as tall as they are wide.
	unitsPerColumn = 10.0
	unitsPerRow    = 20.0

	noZoomLevel = -4.0
)

// Box is a node projected onto the terminal grid. Coordinates may lie outside
// the grid; Render clips them.
type Box struct {
	Node                    Node
	Col, Row, Width, Height int
}

// scale returns terminal cells per canvas unit multiplier for v's zoom.
func scale(v *Viewport) float64 {
	z, ok := v.Zoom()
	if !ok || math.IsNaN(z) {
		z = noZoomLevel
	}
	return math.Pow(2, z)
}

// ToCell maps a canvas point to a cell in a cols x rows grid centred on the viewport.
func ToCell(v *Viewport, x, y float64, cols, rows int) (int, int) {
	s := scale(v)
	col := (x-v.TX)*s/unitsPerColumn + float64(cols)/2
	row := (y-v.TY)*s/unitsPerRow + float64(rows)/2
	return int(math.Floor(col)), int(math.Floor(row))
}

// Project returns the boxes of the nodes that intersect the grid, groups first.
func Project(doc *Document, v *Viewport, cols, rows int) []Box {
	if doc == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	s := scale(v)
	var groups, cards []Box
	for _, n := range doc.Nodes {
		col, row := ToCell(v, n.X, n.Y, cols, rows)
		b := Box{
			Node:   n,
			Col:    col,
			Row:    row,
			Width:  max(1, int(math.Round(n.Width*s/unitsPerColumn))),
			Height: max(1, int(math.Round(n.Height*s/unitsPerRow))),
		}
		if b.Col >= cols || b.Row >= rows || b.Col+b.Width <= 0 || b.Row+b.Height <= 0 {
			continue
		}
		if n.Type == NodeGroup {
			groups = append(groups, b)
		} else {
			cards = append(cards, b)
		}
	}
	return append(groups, cards...)
}

// Render draws the visible part of doc as cols x rows lines of text.
func Render(doc *Document, v *Viewport, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	set := func(col, row int, ch rune) {
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = ch
		}
	}

	// Origin marker.
	oc, orow := ToCell(v, 0, 0, cols, rows)
	set(oc, orow, '+')

	for _, b := range Project(doc, v, cols, rows) {
		drawBox(set, b, cols, rows)
	}

	lines := make([]string, rows)
	for r, line := range grid {
		lines[r] = string(line)
	}
	return lines
}

// drawBox outlines b on a cols x rows grid. Loops visit only the cells of b
// that lie on the grid, so the cost is bounded by the grid size.
func drawBox(set func(col, row int, ch rune), b Box, cols, rows int) {
	right, bottom := b.Col+b.Width-1, b.Row+b.Height-1
	if b.Width < 2 || b.Height < 2 {
		set(b.Col, b.Row, '■')
		return
	}
	horiz, vert := '─', '│'
	if b.Node.Type == NodeGroup {
		horiz, vert = '┄', '┆'
	}

	// Interior columns and rows clipped to the grid.
	c0, c1 := max(b.Col+1, 0), min(right, cols)
	r0, r1 := max(b.Row+1, 0), min(bottom, rows)

	for c := c0; c < c1; c++ {
		set(c, b.Row, horiz)
		set(c, bottom, horiz)
	}
	for r := r0; r < r1; r++ {
		set(b.Col, r, vert)
		set(right, r, vert)
		if b.Node.Type != NodeGroup {
			for c := c0; c < c1; c++ {
				set(c, r, ' ')
			}
		}
	}
	set(b.Col, b.Row, '┌')
	set(right, b.Row, '┐')
	set(b.Col, bottom, '└')
	set(right, bottom, '┘')

	textRow := b.Row + 1
	if b.Node.Type == NodeGroup || b.Height < 3 {
		textRow = b.Row
	}
	if textRow < 0 || textRow >= rows {
		return
	}
	for i, ch := range []rune(b.Node.Title()) {
		c := b.Col + 1 + i
		if c >= right || c >= cols {
			break
		}
		set(c, textRow, ch)
	}
}
