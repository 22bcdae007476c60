package main

// History keeps whole-grid snapshots for undo and redo. The undo stack holds
// at most limit entries; the oldest is dropped first.
type History struct {
	undoStack []*Grid
	redoStack []*Grid
	limit     int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = maxHistory
	}
	return &History{limit: limit}
}

// Record snapshots g before a gesture mutates it and invalidates redo.
func (h *History) Record(g *Grid) {
	h.undoStack = append(h.undoStack, g.Clone())
	if len(h.undoStack) > h.limit {
		evict := len(h.undoStack) - h.limit
		copy(h.undoStack, h.undoStack[evict:])
		for i := len(h.undoStack) - evict; i < len(h.undoStack); i++ {
			h.undoStack[i] = nil
		}
		h.undoStack = h.undoStack[:h.limit]
	}
	h.redoStack = nil
}

// Undo returns the grid to show after undoing. With nothing to undo it
// returns current unchanged.
func (h *History) Undo(current *Grid) *Grid {
	if len(h.undoStack) == 0 {
		return current
	}

	lastIndex := len(h.undoStack) - 1
	prev := h.undoStack[lastIndex]
	h.undoStack[lastIndex] = nil
	h.undoStack = h.undoStack[:lastIndex]

	h.redoStack = append(h.redoStack, current.Clone())
	return prev
}

// Redo mirrors Undo using the redo stack.
func (h *History) Redo(current *Grid) *Grid {
	if len(h.redoStack) == 0 {
		return current
	}

	lastIndex := len(h.redoStack) - 1
	next := h.redoStack[lastIndex]
	h.redoStack[lastIndex] = nil
	h.redoStack = h.redoStack[:lastIndex]

	h.undoStack = append(h.undoStack, current.Clone())
	return next
}

// Reset drops both stacks. Snapshots never span grids of different sizes.
func (h *History) Reset() {
	h.undoStack = nil
	h.redoStack = nil
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Depth returns the number of undo and redo entries held.
func (h *History) Depth() (int, int) {
	return len(h.undoStack), len(h.redoStack)
}
