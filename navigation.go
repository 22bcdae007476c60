package main

import "strings"

// cursorStep maps a movement key to a unit direction. The shifted keys move
// two cells. ok is false for keys that do not move the cursor.
func cursorStep(key string) (dx, dy, step int, ok bool) {
	step = 1
	if strings.HasPrefix(key, "shift+") {
		step = 2
		key = strings.TrimPrefix(key, "shift+")
	} else if len(key) == 1 && strings.ContainsAny(key, "HJKL") {
		step = 2
		key = strings.ToLower(key)
	}

	switch key {
	case "h", "left":
		return -1, 0, step, true
	case "l", "right":
		return 1, 0, step, true
	case "k", "up":
		return 0, -1, step, true
	case "j", "down":
		return 0, 1, step, true
	}
	return 0, 0, 0, false
}

// moveCursor moves the keyboard cursor for key and reports whether key was a
// movement key.
func (m *model) moveCursor(key string) bool {
	dx, dy, step, ok := cursorStep(key)
	if !ok {
		return false
	}
	m.cursorX += dx * step
	m.cursorY += dy * step
	m.ensureCursorInBounds()
	return true
}

func (m *model) ensureCursorInBounds() {
	size := m.editor.Grid().Size()
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorX >= size {
		m.cursorX = size - 1
	}
	if m.cursorY >= size {
		m.cursorY = size - 1
	}
}

// canvasCell maps a terminal mouse position to a grid cell. inside reports
// whether the position was over the canvas at all.
func (m *model) canvasCell(mouseX, mouseY int) (x, y int, inside bool, err error) {
	size := m.editor.Grid().Size()
	width := float64(size * cellColumns)
	height := float64(size)
	px := float64(mouseX - canvasLeft)
	py := float64(mouseY - canvasTop)
	inside = px >= 0 && py >= 0 && px < width && py < height
	x, y, err = MapToCell(px, py, width, height, size)
	return x, y, inside, err
}
