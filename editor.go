package main

// Editor is the whole live document: the grid, its history and the tool
// state that commands act on. It is only touched from the update loop.
type Editor struct {
	grid     *Grid
	history  *History
	tool     Tool
	color    Color
	recent   []Color
	showGrid bool
	drawing  bool
}

func NewEditor(size int, active Color) (*Editor, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Editor{
		grid:     g,
		history:  NewHistory(maxHistory),
		tool:     ToolDraw,
		color:    active,
		recent:   []Color{active},
		showGrid: true,
	}, nil
}

func (e *Editor) Grid() *Grid       { return e.grid }
func (e *Editor) Tool() Tool        { return e.tool }
func (e *Editor) Color() Color      { return e.color }
func (e *Editor) Recent() []Color   { return e.recent }
func (e *Editor) ShowGrid() bool    { return e.showGrid }
func (e *Editor) Drawing() bool     { return e.drawing }
func (e *Editor) History() *History { return e.history }

func (e *Editor) SelectTool(t Tool) {
	e.tool = t
}

// SetColor makes c the active color and moves it to the front of the
// recent colors.
func (e *Editor) SetColor(c Color) {
	e.color = c
	e.recent = pushRecent(e.recent, c)
}

// BeginGesture snapshots the grid. Call it once per gesture, never per
// pointer move.
func (e *Editor) BeginGesture() {
	e.history.Record(e.grid)
}

// ApplyAt runs the active tool on one cell. A pick updates the active color.
func (e *Editor) ApplyAt(x, y int) {
	if picked, ok := ApplyTool(e.grid, e.tool, x, y, e.color); ok {
		e.SetColor(picked)
	}
}

// PointerDown starts a gesture at (x, y). Picking does not mutate, so it
// leaves no undo entry.
func (e *Editor) PointerDown(x, y int) {
	e.drawing = true
	if e.tool.mutates() {
		e.BeginGesture()
	}
	e.ApplyAt(x, y)
}

// PointerMove continues a drag. Only Draw and Erase paint along the way.
func (e *Editor) PointerMove(x, y int) {
	if !e.drawing || !e.tool.continuous() {
		return
	}
	e.ApplyAt(x, y)
}

func (e *Editor) PointerUp() {
	e.drawing = false
}

// Tap applies the tool at (x, y) as a complete one-cell gesture.
func (e *Editor) Tap(x, y int) {
	e.PointerDown(x, y)
	e.PointerUp()
}

func (e *Editor) Undo() {
	e.drawing = false
	e.grid = e.history.Undo(e.grid)
}

func (e *Editor) Redo() {
	e.drawing = false
	e.grid = e.history.Redo(e.grid)
}

// Resize replaces the grid with an empty one of the new size. History is
// dropped. On error the current grid is kept.
func (e *Editor) Resize(size int) error {
	g, err := NewGrid(size)
	if err != nil {
		return err
	}
	e.LoadGrid(g)
	return nil
}

// Clear empties every cell as one undoable gesture.
func (e *Editor) Clear() {
	e.BeginGesture()
	e.grid.Clear()
}

func (e *Editor) ToggleGrid() {
	e.showGrid = !e.showGrid
}

// LoadGrid swaps in a new document and resets history.
func (e *Editor) LoadGrid(g *Grid) {
	e.grid = g
	e.drawing = false
	e.history.Reset()
}
