package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, kind Kind, x, y int, glyph rune, fill bool, params ...float64) Shape {
	t.Helper()
	s, err := NewShape(kind, x, y, glyph, fill, params)
	require.NoError(t, err)
	return s
}

// painted lists the cells a shape paints on a blank grid.
func painted(s Shape, width, height int) map[point]bool {
	g := NewGrid(width, height)
	s.Rasterize(g)
	cells := make(map[point]bool)
	for y := range g {
		for x := range g[y] {
			if g[y][x] != blankCell {
				cells[point{x, y}] = true
			}
		}
	}
	return cells
}

func cellSet(pts ...point) map[point]bool {
	m := make(map[point]bool, len(pts))
	for _, p := range pts {
		m[p] = true
	}
	return m
}

func TestRectangleOutline(t *testing.T) {
	r := mustShape(t, KindRectangle, 1, 1, '#', false, 4, 3)
	g := NewGrid(10, 10)
	r.Rasterize(g)

	lines := g.Lines()
	assert.Equal(t, "          ", lines[0])
	assert.Equal(t, " ####     ", lines[1])
	assert.Equal(t, " #  #     ", lines[2])
	assert.Equal(t, " ####     ", lines[3])
	assert.Equal(t, "          ", lines[4])
}

func TestRectangleFill(t *testing.T) {
	r := mustShape(t, KindRectangle, 0, 0, 'x', true, 3, 2)
	assert.Equal(t, cellSet(
		point{0, 0}, point{1, 0}, point{2, 0},
		point{0, 1}, point{1, 1}, point{2, 1},
	), painted(r, 5, 5))
}

func TestRectangleClipsAtBoardEdge(t *testing.T) {
	r := mustShape(t, KindRectangle, 3, 3, '#', true, 4, 4)
	cells := painted(r, 5, 5)
	assert.Len(t, cells, 4)
	assert.True(t, cells[point{4, 4}])
}

func TestCircleOutline(t *testing.T) {
	c := mustShape(t, KindCircle, 5, 5, 'o', false, 3)
	cells := painted(c, 11, 11)

	// Top row of the ring and the horizontal extremes.
	for _, p := range []point{{4, 2}, {5, 2}, {6, 2}, {2, 5}, {8, 5}, {3, 3}, {7, 3}} {
		assert.True(t, cells[p], "expected %v painted", p)
	}
	assert.False(t, cells[point{5, 5}], "centre must stay empty")
	assert.False(t, cells[point{3, 2}])
	assert.Len(t, cells, 16)
}

func TestCircleFill(t *testing.T) {
	c := mustShape(t, KindCircle, 2, 2, 'o', true, 1)
	assert.Equal(t, cellSet(
		point{2, 1}, point{1, 2}, point{2, 2}, point{3, 2}, point{2, 3},
	), painted(c, 5, 5))
}

func TestTriangleOutline(t *testing.T) {
	tr := mustShape(t, KindTriangle, 5, 0, '^', false, 4, 6)
	assert.Equal(t, cellSet(
		point{5, 0},
		point{5, 1},
		point{4, 2}, point{6, 2},
		point{2, 3}, point{3, 3}, point{4, 3}, point{5, 3}, point{6, 3}, point{7, 3}, point{8, 3},
	), painted(tr, 10, 10))
}

func TestTriangleFill(t *testing.T) {
	tr := mustShape(t, KindTriangle, 5, 0, '^', true, 4, 6)
	cells := painted(tr, 10, 10)
	assert.True(t, cells[point{5, 2}])
	assert.True(t, cells[point{4, 2}])
	assert.False(t, cells[point{3, 2}])
	assert.Len(t, cells, 1+1+3+7)
}

func TestLineSteps(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  map[point]bool
	}{
		{"horizontal", 0, cellSet(point{0, 0}, point{1, 0}, point{2, 0}, point{3, 0})},
		{"vertical", 90, cellSet(point{0, 0}, point{0, 1}, point{0, 2}, point{0, 3})},
		{"diagonal", 45, cellSet(point{0, 0}, point{1, 1}, point{2, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustShape(t, KindLine, 0, 0, '*', false, 4, tt.angle)
			assert.Equal(t, tt.want, painted(l, 6, 6))
		})
	}
}

func TestLineBackwardsIsClipped(t *testing.T) {
	l := mustShape(t, KindLine, 1, 0, '*', false, 4, 180)
	assert.Equal(t, cellSet(point{1, 0}, point{0, 0}), painted(l, 6, 6))
}

func TestCoversPointMatchesRasterize(t *testing.T) {
	shapes := []Shape{
		mustShape(t, KindRectangle, 2, 3, '#', false, 7, 5),
		mustShape(t, KindRectangle, 2, 3, '#', true, 7, 5),
		mustShape(t, KindCircle, 8, 8, 'o', false, 6),
		mustShape(t, KindCircle, 8, 8, 'o', true, 6),
		mustShape(t, KindCircle, 1, 1, 'o', false, 4),
		mustShape(t, KindTriangle, 8, 1, '^', false, 9, 11),
		mustShape(t, KindTriangle, 8, 1, '^', true, 9, 11),
		mustShape(t, KindTriangle, 8, 1, '^', false, 3, 15),
		mustShape(t, KindLine, 3, 3, '*', false, 12, 30),
		mustShape(t, KindLine, 10, 10, '*', false, 9, 225),
	}
	const size = 18
	for _, s := range shapes {
		cells := painted(s, size, size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				assert.Equal(t, cells[point{x, y}], s.CoversPoint(x, y), "%s at (%d, %d)", Describe(s), x, y)
			}
		}
	}
}

func TestWithinBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  bool
	}{
		{"rectangle filling the board", mustShape(t, KindRectangle, 0, 0, '#', false, 10, 10), true},
		{"rectangle too wide", mustShape(t, KindRectangle, 0, 0, '#', false, 11, 10), false},
		{"negative anchor", mustShape(t, KindRectangle, -1, 0, '#', false, 1, 1), false},
		{"anchor on the edge", mustShape(t, KindRectangle, 10, 0, '#', false, 1, 1), false},
		{"last cell", mustShape(t, KindRectangle, 9, 9, '#', false, 1, 1), true},
		{"triangle too tall", mustShape(t, KindTriangle, 5, 0, '^', false, 11, 2), false},
		{"circle up to the diagonal", mustShape(t, KindCircle, 5, 5, 'o', false, 14), true},
		{"circle past the diagonal", mustShape(t, KindCircle, 5, 5, 'o', false, 15), false},
		{"circle anchor outside", mustShape(t, KindCircle, 5, 10, 'o', false, 1), false},
		{"line up to the diagonal", mustShape(t, KindLine, 0, 0, '*', false, 14, 45), true},
		{"line past the diagonal", mustShape(t, KindLine, 0, 0, '*', false, 15, 45), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.WithinBounds(10, 10))
		})
	}
}

func TestSameSpot(t *testing.T) {
	rect := mustShape(t, KindRectangle, 1, 1, '#', false, 4, 3)

	assert.True(t, rect.SameSpot(mustShape(t, KindRectangle, 1, 1, 'x', true, 4, 3)), "glyph and fill do not matter")
	assert.False(t, rect.SameSpot(mustShape(t, KindRectangle, 1, 1, '#', false, 4, 4)))
	assert.False(t, rect.SameSpot(mustShape(t, KindRectangle, 2, 1, '#', false, 4, 3)))
	assert.False(t, rect.SameSpot(mustShape(t, KindTriangle, 1, 1, '#', false, 4, 3)))

	tri := mustShape(t, KindTriangle, 5, 0, '^', false, 4, 6)
	assert.False(t, tri.SameSpot(mustShape(t, KindTriangle, 5, 0, '^', false, 4, 8)), "width is part of a triangle's spot")

	circle := mustShape(t, KindCircle, 5, 5, 'o', false, 3)
	assert.True(t, circle.SameSpot(mustShape(t, KindCircle, 5, 5, 'o', true, 3)))
	assert.False(t, circle.SameSpot(mustShape(t, KindCircle, 5, 5, 'o', false, 2)))

	line := mustShape(t, KindLine, 0, 0, '*', false, 5, 0)
	assert.True(t, line.SameSpot(mustShape(t, KindLine, 0, 0, '*', false, 5, 90)), "lines compare length only")
}

func TestResize(t *testing.T) {
	c := mustShape(t, KindCircle, 5, 5, 'o', false, 3)
	assert.ErrorIs(t, c.Resize([]float64{1, 2}), ErrArity)
	assert.ErrorIs(t, c.Resize([]float64{0}), ErrInvalidSize)
	assert.ErrorIs(t, c.Resize([]float64{2.5}), ErrInvalidSize)
	assert.Equal(t, []float64{3}, c.Params())

	require.NoError(t, c.Resize([]float64{5}))
	assert.Equal(t, []float64{5}, c.Params())

	r := mustShape(t, KindRectangle, 0, 0, '#', false, 4, 3)
	assert.ErrorIs(t, r.Resize([]float64{6, -1}), ErrInvalidSize)
	assert.Equal(t, []float64{4, 3}, r.Params(), "failed resize must not partially apply")

	l := mustShape(t, KindLine, 0, 0, '*', false, 4, 0)
	require.NoError(t, l.Resize([]float64{6, -30.5}))
	assert.Equal(t, []float64{6, -30.5}, l.Params())
}

func TestMoveAndRecolor(t *testing.T) {
	s := mustShape(t, KindTriangle, 5, 0, '^', false, 4, 6)
	s.Move(2, 3)
	s.Recolor('r')
	x, y := s.Position()
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, 'r', s.Glyph())
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustShape(t, KindRectangle, 1, 1, '#', false, 4, 3)
	c := s.Clone()
	c.Move(0, 0)
	require.NoError(t, c.Resize([]float64{2, 2}))

	x, _ := s.Position()
	assert.Equal(t, 1, x)
	assert.Equal(t, []float64{4, 3}, s.Params())
}

func TestNewShapeValidation(t *testing.T) {
	_, err := NewShape(KindRectangle, 0, 0, ' ', false, []float64{1, 1})
	assert.ErrorIs(t, err, ErrInvalidGlyph)

	_, err = NewShape(KindLine, 0, 0, '*', false, []float64{3})
	assert.ErrorIs(t, err, ErrArity)

	_, err = NewShape(Kind(42), 0, 0, '*', false, nil)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("circle")
	require.NoError(t, err)
	assert.Equal(t, KindCircle, k)

	k, err = ParseKind("Triangle")
	require.NoError(t, err)
	assert.Equal(t, KindTriangle, k)

	_, err = ParseKind("hexagon")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Rectangle at (1, 1), glyph '#', frame, width 4, height 3",
		Describe(mustShape(t, KindRectangle, 1, 1, '#', false, 4, 3)))
	assert.Equal(t, "Circle at (5, 5), glyph 'o', fill, radius 2",
		Describe(mustShape(t, KindCircle, 5, 5, 'o', true, 2)))
	assert.Equal(t, "Line at (0, 0), glyph '*', frame, length 5, angle 22.5",
		Describe(mustShape(t, KindLine, 0, 0, '*', false, 5, 22.5)))
}
