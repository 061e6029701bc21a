package main

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Shape is one primitive on the board. The set of implementations is closed:
// Rectangle, Circle, Triangle and Line.
type Shape interface {
	Kind() Kind
	Position() (x, y int)
	Glyph() rune
	Filled() bool

	// Rasterize writes the shape into g, skipping cells outside it.
	Rasterize(g Grid)
	WithinBounds(boardWidth, boardHeight int) bool
	// CoversPoint reports whether Rasterize would paint (px, py).
	CoversPoint(px, py int) bool
	SameSpot(other Shape) bool

	Resize(params []float64) error
	Move(x, y int)
	Recolor(glyph rune)

	// Params returns the size parameters in the order Resize takes them.
	Params() []float64
	Clone() Shape

	sealed()
}

type base struct {
	X    int
	Y    int
	Char rune
	Fill bool
}

func (b *base) Position() (int, int) { return b.X, b.Y }
func (b *base) Glyph() rune          { return b.Char }
func (b *base) Filled() bool         { return b.Fill }
func (b *base) sealed()              {}

func (b *base) Move(x, y int) {
	b.X = x
	b.Y = y
}

func (b *base) Recolor(glyph rune) {
	b.Char = glyph
}

func (b *base) anchorWithin(boardWidth, boardHeight int) bool {
	return b.X >= 0 && b.X < boardWidth && b.Y >= 0 && b.Y < boardHeight
}

func diagonal(boardWidth, boardHeight int) float64 {
	return math.Hypot(float64(boardWidth), float64(boardHeight))
}

// NewShape builds a validated shape of the given kind.
func NewShape(kind Kind, x, y int, glyph rune, fill bool, params []float64) (Shape, error) {
	if !validGlyph(glyph) {
		return nil, ErrInvalidGlyph
	}
	b := base{X: x, Y: y, Char: glyph, Fill: fill}

	var s Shape
	switch kind {
	case KindRectangle:
		s = &Rectangle{base: b}
	case KindCircle:
		s = &Circle{base: b}
	case KindTriangle:
		s = &Triangle{base: b}
	case KindLine:
		s = &Line{base: b}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, kind)
	}
	if err := s.Resize(params); err != nil {
		return nil, err
	}
	return s, nil
}

func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func validGlyph(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func checkArity(kind Kind, params []float64) error {
	if len(params) != kind.Arity() {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, kind, kind.Arity(), len(params))
	}
	return nil
}

// dimension converts a size parameter, rejecting anything that is not a
// positive integer.
func dimension(v float64) (int, error) {
	if math.IsNaN(v) || v <= 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, v)
	}
	return int(v), nil
}

type Rectangle struct {
	base
	Width  int
	Height int
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Rasterize(g Grid) {
	x0, x1 := max(r.X, 0), min(r.X+r.Width, g.Width())
	y0, y1 := max(r.Y, 0), min(r.Y+r.Height, g.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.CoversPoint(x, y) {
				g.Set(x, y, r.Char)
			}
		}
	}
}

func (r *Rectangle) CoversPoint(px, py int) bool {
	if px < r.X || px >= r.X+r.Width || py < r.Y || py >= r.Y+r.Height {
		return false
	}
	if r.Fill {
		return true
	}
	return px == r.X || px == r.X+r.Width-1 || py == r.Y || py == r.Y+r.Height-1
}

func (r *Rectangle) WithinBounds(boardWidth, boardHeight int) bool {
	return r.anchorWithin(boardWidth, boardHeight) && r.Width <= boardWidth && r.Height <= boardHeight
}

func (r *Rectangle) SameSpot(other Shape) bool {
	o, ok := other.(*Rectangle)
	return ok && o.X == r.X && o.Y == r.Y && o.Width == r.Width && o.Height == r.Height
}

func (r *Rectangle) Resize(params []float64) error {
	if err := checkArity(KindRectangle, params); err != nil {
		return err
	}
	w, err := dimension(params[0])
	if err != nil {
		return err
	}
	h, err := dimension(params[1])
	if err != nil {
		return err
	}
	r.Width, r.Height = w, h
	return nil
}

func (r *Rectangle) Params() []float64 {
	return []float64{float64(r.Width), float64(r.Height)}
}

func (r *Rectangle) Clone() Shape {
	c := *r
	return &c
}

type Circle struct {
	base
	Radius int
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Rasterize(g Grid) {
	for i := -c.Radius; i <= c.Radius; i++ {
		for j := -c.Radius; j <= c.Radius; j++ {
			if c.hits(i, j) {
				g.Set(c.X+j, c.Y+i, c.Char)
			}
		}
	}
}

// hits applies the ring test to an offset from the centre. Outline cells are
// those whose squared distance lies within r of r².
func (c *Circle) hits(i, j int) bool {
	r := c.Radius
	d := i*i + j*j
	if c.Fill {
		return d <= r*r
	}
	return d >= r*r-r && d <= r*r+r
}

func (c *Circle) CoversPoint(px, py int) bool {
	i, j := py-c.Y, px-c.X
	if i < -c.Radius || i > c.Radius || j < -c.Radius || j > c.Radius {
		return false
	}
	return c.hits(i, j)
}

func (c *Circle) WithinBounds(boardWidth, boardHeight int) bool {
	return c.anchorWithin(boardWidth, boardHeight) && float64(c.Radius) <= diagonal(boardWidth, boardHeight)
}

func (c *Circle) SameSpot(other Shape) bool {
	o, ok := other.(*Circle)
	return ok && o.X == c.X && o.Y == c.Y && o.Radius == c.Radius
}

func (c *Circle) Resize(params []float64) error {
	if err := checkArity(KindCircle, params); err != nil {
		return err
	}
	r, err := dimension(params[0])
	if err != nil {
		return err
	}
	c.Radius = r
	return nil
}

func (c *Circle) Params() []float64 {
	return []float64{float64(c.Radius)}
}

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

// Triangle is isoceles with its apex at the anchor and its base on row
// Y+Height-1.
type Triangle struct {
	base
	Height int
	Width  int
}

func (t *Triangle) Kind() Kind { return KindTriangle }

// edge is the half-width of row i. Integer division produces the staircase.
func (t *Triangle) edge(i int) int {
	return (i * t.Width / t.Height) / 2
}

func (t *Triangle) Rasterize(g Grid) {
	// No row is wider than the base.
	half := t.Width / 2
	for i := 0; i < t.Height; i++ {
		for x := t.X - half; x <= t.X+half; x++ {
			if t.CoversPoint(x, t.Y+i) {
				g.Set(x, t.Y+i, t.Char)
			}
		}
	}
}

func (t *Triangle) CoversPoint(px, py int) bool {
	i := py - t.Y
	if i < 0 || i >= t.Height {
		return false
	}
	if i == t.Height-1 && px >= t.X-t.Width/2 && px <= t.X+t.Width/2 {
		return true
	}
	off := t.edge(i)
	if t.Fill {
		return px >= t.X-off && px <= t.X+off
	}
	return px == t.X-off || px == t.X+off
}

func (t *Triangle) WithinBounds(boardWidth, boardHeight int) bool {
	return t.anchorWithin(boardWidth, boardHeight) && t.Width <= boardWidth && t.Height <= boardHeight
}

func (t *Triangle) SameSpot(other Shape) bool {
	o, ok := other.(*Triangle)
	return ok && o.X == t.X && o.Y == t.Y && o.Height == t.Height && o.Width == t.Width
}

func (t *Triangle) Resize(params []float64) error {
	if err := checkArity(KindTriangle, params); err != nil {
		return err
	}
	h, err := dimension(params[0])
	if err != nil {
		return err
	}
	w, err := dimension(params[1])
	if err != nil {
		return err
	}
	t.Height, t.Width = h, w
	return nil
}

func (t *Triangle) Params() []float64 {
	return []float64{float64(t.Height), float64(t.Width)}
}

func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

// Line is a ray of Length cells from the anchor. Angle is in degrees, with
// y growing downwards.
type Line struct {
	base
	Length int
	Angle  float64
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) cells() []point {
	rad := l.Angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	pts := make([]point, 0, l.Length)
	for i := 0; i < l.Length; i++ {
		pts = append(pts, point{
			X: l.X + int(float64(i)*cos),
			Y: l.Y + int(float64(i)*sin),
		})
	}
	return pts
}

func (l *Line) Rasterize(g Grid) {
	for _, p := range l.cells() {
		g.Set(p.X, p.Y, l.Char)
	}
}

func (l *Line) CoversPoint(px, py int) bool {
	for _, p := range l.cells() {
		if p.X == px && p.Y == py {
			return true
		}
	}
	return false
}

func (l *Line) WithinBounds(boardWidth, boardHeight int) bool {
	return l.anchorWithin(boardWidth, boardHeight) && float64(l.Length) <= diagonal(boardWidth, boardHeight)
}

func (l *Line) SameSpot(other Shape) bool {
	o, ok := other.(*Line)
	return ok && o.X == l.X && o.Y == l.Y && o.Length == l.Length
}

func (l *Line) Resize(params []float64) error {
	if err := checkArity(KindLine, params); err != nil {
		return err
	}
	n, err := dimension(params[0])
	if err != nil {
		return err
	}
	if math.IsNaN(params[1]) || math.IsInf(params[1], 0) {
		return fmt.Errorf("%w: angle %v", ErrInvalidSize, params[1])
	}
	l.Length, l.Angle = n, params[1]
	return nil
}

func (l *Line) Params() []float64 {
	return []float64{float64(l.Length), l.Angle}
}

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

func fillWord(fill bool) string {
	if fill {
		return "fill"
	}
	return "frame"
}

// Describe renders a shape for the list command.
func Describe(s Shape) string {
	x, y := s.Position()
	head := fmt.Sprintf("%s at (%d, %d), glyph '%c', %s", s.Kind(), x, y, s.Glyph(), fillWord(s.Filled()))
	switch v := s.(type) {
	case *Rectangle:
		return fmt.Sprintf("%s, width %d, height %d", head, v.Width, v.Height)
	case *Circle:
		return fmt.Sprintf("%s, radius %d", head, v.Radius)
	case *Triangle:
		return fmt.Sprintf("%s, height %d, width %d", head, v.Height, v.Width)
	case *Line:
		return fmt.Sprintf("%s, length %d, angle %g", head, v.Length, v.Angle)
	default:
		return head
	}
}
