package main

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "left", "shift+left":
		m.cursorX -= speed
	case "right", "shift+right":
		m.cursorX += speed
	case "up", "shift+up":
		m.cursorY -= speed
	case "down", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// ensureCursorInBounds keeps the board cursor on the board, which can change
// size after a load or undo.
func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if w := m.surface.Width(); m.cursorX >= w {
		m.cursorX = w - 1
	}
	if h := m.surface.Height(); m.cursorY >= h {
		m.cursorY = h - 1
	}
}

// cellAt converts a mouse position to board coordinates. The board is drawn
// inside a one-cell border with two columns per cell.
func (m *model) cellAt(mouseX, mouseY int) (int, int, bool) {
	if mouseX < boardOriginX || mouseY < boardOriginY {
		return 0, 0, false
	}
	x, y := (mouseX-boardOriginX)/cellWidth, mouseY-boardOriginY
	return x, y, x < m.surface.Width() && y < m.surface.Height()
}
