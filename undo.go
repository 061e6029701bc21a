package main

func (s *Surface) snapshot() snapshot {
	return snapshot{
		width:  s.width,
		height: s.height,
		items:  cloneItems(s.shapes),
	}
}

// recordSnapshot saves the current state before a mutation. Any redo history
// is discarded.
func (s *Surface) recordSnapshot() {
	s.undoStack = append(s.undoStack, s.snapshot())
	if s.undoDepth > 0 && len(s.undoStack) > s.undoDepth {
		drop := len(s.undoStack) - s.undoDepth
		s.undoStack = append(s.undoStack[:0], s.undoStack[drop:]...)
	}
	s.redoStack = s.redoStack[:0]
}

func (s *Surface) restore(snap snapshot) {
	if snap.width != s.width || snap.height != s.height {
		s.width, s.height = snap.width, snap.height
		s.grid = NewGrid(s.width, s.height)
	}
	s.shapes = snap.items
	s.reindex()
	if _, ok := s.slots[s.selected]; !ok {
		s.selected = noSelection
	}
}

// Undo restores the state before the most recent mutation. It reports false
// when there is nothing to undo.
func (s *Surface) Undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}
	lastIndex := len(s.undoStack) - 1
	snap := s.undoStack[lastIndex]
	s.undoStack = s.undoStack[:lastIndex]

	s.redoStack = append(s.redoStack, s.snapshot())
	s.restore(snap)
	s.log.WithField("shapes", len(s.shapes)).Debug("undo")
	return true
}

func (s *Surface) Redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}
	lastIndex := len(s.redoStack) - 1
	snap := s.redoStack[lastIndex]
	s.redoStack = s.redoStack[:lastIndex]

	s.undoStack = append(s.undoStack, s.snapshot())
	s.restore(snap)
	s.log.WithField("shapes", len(s.shapes)).Debug("redo")
	return true
}

// SetUndoDepth bounds the undo history; n <= 0 leaves it unbounded.
func (s *Surface) SetUndoDepth(n int) {
	s.undoDepth = n
	if n > 0 && len(s.undoStack) > n {
		s.undoStack = s.undoStack[len(s.undoStack)-n:]
	}
}

func (s *Surface) ClearHistory() {
	s.undoStack = s.undoStack[:0]
	s.redoStack = s.redoStack[:0]
}

func (s *Surface) HistoryLen() int {
	return len(s.undoStack)
}
