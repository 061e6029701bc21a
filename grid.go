package main

import "strings"

// Grid is a row-major glyph raster. Writes outside the grid are dropped.
type Grid [][]rune

func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for i := range g {
		g[i] = make([]rune, width)
	}
	g.Clear()
	return g
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Clear() {
	for i := range g {
		for j := range g[i] {
			g[i][j] = blankCell
		}
	}
}

func (g Grid) isValidPos(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

func (g Grid) Set(x, y int, r rune) {
	if g.isValidPos(x, y) {
		g[y][x] = r
	}
}

// At returns the glyph at (x, y), or a blank outside the grid.
func (g Grid) At(x, y int) rune {
	if !g.isValidPos(x, y) {
		return blankCell
	}
	return g[y][x]
}

// Lines renders each row as a string with no separators.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
