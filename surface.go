package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Surface owns the board: its dimensions, the shapes in z-order, the current
// selection and the undo history. Every mutating method validates first and
// leaves the surface untouched when it returns an error.
type Surface struct {
	width    int
	height   int
	grid     Grid
	shapes   []Item
	slots    map[int]int
	nextID   int
	selected int

	undoStack []snapshot
	redoStack []snapshot
	undoDepth int

	log logrus.FieldLogger
}

func NewSurface(width, height int) (*Surface, error) {
	if !validBoardSide(width) || !validBoardSide(height) {
		return nil, fmt.Errorf("%w: %dx%d (at most %d per side)", ErrInvalidDimensions, width, height, maxBoardSide)
	}
	return &Surface{
		width:     width,
		height:    height,
		grid:      NewGrid(width, height),
		shapes:    make([]Item, 0),
		slots:     make(map[int]int),
		selected:  noSelection,
		undoDepth: defaultUndoDepth,
		log:       discardLogger(),
	}, nil
}

func (s *Surface) SetLogger(l logrus.FieldLogger) {
	s.log = l.WithField("component", "surface")
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }
func (s *Surface) Len() int    { return len(s.shapes) }

func (s *Surface) reindex() {
	s.slots = make(map[int]int, len(s.shapes))
	for i, it := range s.shapes {
		s.slots[it.ID] = i
	}
}

func (s *Surface) inBoard(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// validate checks that sh could sit on the board. The shape with id skip is
// ignored in the duplicate scan so edits can be checked against the rest.
func (s *Surface) validate(sh Shape, skip int) error {
	if !sh.WithinBounds(s.width, s.height) {
		x, y := sh.Position()
		return fmt.Errorf("%w: %s at (%d, %d) on a %dx%d board", ErrOutOfBounds, sh.Kind(), x, y, s.width, s.height)
	}
	for _, it := range s.shapes {
		if it.ID != skip && it.Shape.SameSpot(sh) {
			return fmt.Errorf("%w (id %d)", ErrDuplicate, it.ID)
		}
	}
	return nil
}

// Place adds a copy of sh on top of the other shapes and returns its id.
func (s *Surface) Place(sh Shape) (int, error) {
	if err := s.validate(sh, noSelection); err != nil {
		return 0, err
	}
	s.recordSnapshot()

	id := s.nextID
	s.nextID++
	s.shapes = append(s.shapes, Item{ID: id, Shape: sh.Clone()})
	s.slots[id] = len(s.shapes) - 1

	x, y := sh.Position()
	s.log.WithFields(logrus.Fields{"id": id, "kind": sh.Kind(), "x": x, "y": y}).Debug("shape placed")
	return id, nil
}

func (s *Surface) Remove(id int) error {
	slot, ok := s.slots[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	s.recordSnapshot()

	s.shapes = append(s.shapes[:slot], s.shapes[slot+1:]...)
	s.reindex()
	if s.selected == id {
		s.selected = noSelection
	}
	s.log.WithField("id", id).Debug("shape removed")
	return nil
}

func (s *Surface) RemoveSelected() error {
	if s.selected == noSelection {
		return ErrNoSelection
	}
	return s.Remove(s.selected)
}

// Clear removes every shape. It is recorded even when the board is empty.
func (s *Surface) Clear() {
	s.recordSnapshot()
	s.shapes = make([]Item, 0)
	s.reindex()
	s.selected = noSelection
	s.log.Debug("board cleared")
}

func (s *Surface) Select(id int) error {
	if _, ok := s.slots[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	s.selected = id
	return nil
}

// SelectAt selects the topmost shape painted at (x, y). A miss clears the
// selection.
func (s *Surface) SelectAt(x, y int) (int, bool) {
	s.selected = noSelection
	if !s.inBoard(x, y) {
		return 0, false
	}
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Shape.CoversPoint(x, y) {
			s.selected = s.shapes[i].ID
			return s.selected, true
		}
	}
	return 0, false
}

func (s *Surface) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

func (s *Surface) Deselect() {
	s.selected = noSelection
}

// Lookup returns a copy of the shape with the given id.
func (s *Surface) Lookup(id int) (Shape, bool) {
	slot, ok := s.slots[id]
	if !ok {
		return nil, false
	}
	return s.shapes[slot].Shape.Clone(), true
}

// Items lists copies of the shapes bottom to top.
func (s *Surface) Items() []Item {
	return cloneItems(s.shapes)
}

// editSelected applies fn to a copy of the selected shape and commits the
// copy only if it still fits the board.
func (s *Surface) editSelected(op string, fn func(Shape) error) error {
	if s.selected == noSelection {
		return ErrNoSelection
	}
	slot := s.slots[s.selected]
	edited := s.shapes[slot].Shape.Clone()
	if err := fn(edited); err != nil {
		return err
	}
	if err := s.validate(edited, s.selected); err != nil {
		return err
	}
	s.recordSnapshot()
	s.shapes[slot].Shape = edited
	s.log.WithFields(logrus.Fields{"id": s.selected, "op": op}).Debug("shape edited")
	return nil
}

func (s *Surface) EditSize(values []float64) error {
	return s.editSelected("resize", func(sh Shape) error {
		return sh.Resize(values)
	})
}

func (s *Surface) Move(x, y int) error {
	if !s.inBoard(x, y) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, x, y, s.width, s.height)
	}
	return s.editSelected("move", func(sh Shape) error {
		sh.Move(x, y)
		return nil
	})
}

func (s *Surface) Paint(glyph rune) error {
	if !validGlyph(glyph) {
		return ErrInvalidGlyph
	}
	return s.editSelected("paint", func(sh Shape) error {
		sh.Recolor(glyph)
		return nil
	})
}

// Render redraws the grid from scratch. Later shapes overwrite earlier ones.
// The returned grid is reused by the next call.
func (s *Surface) Render() Grid {
	s.grid.Clear()
	for _, it := range s.shapes {
		it.Shape.Rasterize(s.grid)
	}
	return s.grid
}

// replace swaps in a decoded drawing. New ids are assigned in file order.
func (s *Surface) replace(d *drawing) {
	grid := NewGrid(d.width, d.height)
	s.recordSnapshot()

	s.width, s.height = d.width, d.height
	s.grid = grid
	s.shapes = make([]Item, 0, len(d.shapes))
	for _, sh := range d.shapes {
		s.shapes = append(s.shapes, Item{ID: s.nextID, Shape: sh})
		s.nextID++
	}
	s.reindex()
	s.selected = noSelection
}
