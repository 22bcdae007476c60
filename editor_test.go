package main

import (
	"errors"
	"testing"
)

func newTestEditor(t *testing.T, size int) *Editor {
	t.Helper()
	e, err := NewEditor(size, red)
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	return e
}

func TestEditorDrawThenUndo(t *testing.T) {
	e := newTestEditor(t, 32)
	fresh := e.Grid().Clone()

	e.SetColor(mustParseColor("#ff0000"))
	e.SelectTool(ToolDraw)
	e.BeginGesture()
	e.ApplyAt(3, 3)
	if c, _ := e.Grid().Get(3, 3); c != Paint(red) {
		t.Fatalf("expected red at 3,3, got %v", c)
	}

	e.Undo()
	if !e.Grid().Equal(fresh) {
		t.Fatal("undo did not restore the fresh grid")
	}
}

func TestEditorDragIsOneGesture(t *testing.T) {
	e := newTestEditor(t, 8)
	e.PointerDown(0, 0)
	e.PointerMove(1, 0)
	e.PointerMove(2, 0)
	e.PointerMove(3, 0)
	e.PointerUp()

	if n := e.Grid().PaintedCount(); n != 4 {
		t.Fatalf("expected 4 painted cells, got %d", n)
	}
	if undo, _ := e.History().Depth(); undo != 1 {
		t.Fatalf("expected one undo entry for the drag, got %d", undo)
	}

	e.Undo()
	if e.Grid().PaintedCount() != 0 {
		t.Fatal("undo should revert the whole drag")
	}
}

func TestEditorMoveWithoutPointerDown(t *testing.T) {
	e := newTestEditor(t, 8)
	e.PointerMove(2, 2)
	if e.Grid().PaintedCount() != 0 {
		t.Fatal("move without a pressed pointer painted")
	}
}

func TestEditorFillDoesNotFollowDrag(t *testing.T) {
	e := newTestEditor(t, 4)
	e.Grid().Set(0, 1, Paint(blue))
	e.Grid().Set(1, 1, Paint(blue))
	e.Grid().Set(2, 1, Paint(blue))
	e.Grid().Set(3, 1, Paint(blue))

	e.SelectTool(ToolFill)
	e.PointerDown(0, 0)
	e.PointerMove(0, 3)
	e.PointerUp()

	if c, _ := e.Grid().Get(0, 3); c != Empty {
		t.Fatalf("fill ran on a drag move: %v", c)
	}
	if c, _ := e.Grid().Get(3, 0); c != Paint(red) {
		t.Fatalf("expected top region filled, got %v", c)
	}
}

func TestEditorPick(t *testing.T) {
	e := newTestEditor(t, 4)
	e.Grid().Set(2, 2, Paint(green))
	e.SelectTool(ToolPick)
	e.Tap(2, 2)

	if e.Color() != green {
		t.Fatalf("expected active color green, got %v", e.Color())
	}
	if e.Recent()[0] != green {
		t.Fatalf("expected green at the front of recent colors, got %v", e.Recent())
	}
	if e.History().CanUndo() {
		t.Fatal("pick should not leave an undo entry")
	}

	e.Tap(0, 0)
	if e.Color() != green {
		t.Fatal("picking an empty cell changed the active color")
	}
}

func TestEditorResizeClearsHistory(t *testing.T) {
	e := newTestEditor(t, 32)
	e.Tap(1, 1)
	e.Tap(2, 2)
	e.Undo()
	if !e.History().CanUndo() || !e.History().CanRedo() {
		t.Fatal("expected both stacks populated before resize")
	}

	if err := e.Resize(16); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if e.Grid().Size() != 16 || e.Grid().PaintedCount() != 0 {
		t.Fatalf("expected empty 16x16 grid, got size %d with %d painted", e.Grid().Size(), e.Grid().PaintedCount())
	}
	if e.History().CanUndo() || e.History().CanRedo() {
		t.Fatal("resize should clear both stacks")
	}

	before := e.Grid()
	e.Undo()
	if e.Grid() != before {
		t.Fatal("undo right after resize should be a no-op")
	}
}

func TestEditorResizeInvalidKeepsGrid(t *testing.T) {
	e := newTestEditor(t, 8)
	e.Tap(0, 0)
	g := e.Grid()

	err := e.Resize(0)
	var sizeErr *InvalidSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected InvalidSizeError, got %v", err)
	}
	if e.Grid() != g || !e.History().CanUndo() {
		t.Fatal("failed resize touched the document")
	}
}

func TestEditorClearIsUndoable(t *testing.T) {
	e := newTestEditor(t, 8)
	e.Tap(4, 4)
	painted := e.Grid().Clone()

	e.Clear()
	if e.Grid().PaintedCount() != 0 {
		t.Fatal("clear left painted cells")
	}
	e.Undo()
	if !e.Grid().Equal(painted) {
		t.Fatal("undo after clear did not restore the drawing")
	}
	e.Redo()
	if e.Grid().PaintedCount() != 0 {
		t.Fatal("redo did not clear again")
	}
}

func TestEditorToggleGridLeavesBuffer(t *testing.T) {
	e := newTestEditor(t, 8)
	e.Tap(1, 1)
	before := e.Grid().Clone()
	e.ToggleGrid()
	if e.ShowGrid() {
		t.Fatal("expected grid lines hidden")
	}
	e.SelectTool(ToolErase)
	if !e.Grid().Equal(before) {
		t.Fatal("toggling grid or selecting a tool changed the buffer")
	}
}

func TestEditorLoadGridResetsHistory(t *testing.T) {
	e := newTestEditor(t, 8)
	e.Tap(0, 0)
	loaded := patternGrid(t, 16)
	e.LoadGrid(loaded)
	if e.Grid() != loaded {
		t.Fatal("LoadGrid did not install the grid")
	}
	if e.History().CanUndo() {
		t.Fatal("LoadGrid should reset history")
	}
}

func TestPushRecent(t *testing.T) {
	var recent []Color
	for i := 0; i < maxRecentColors+3; i++ {
		recent = pushRecent(recent, Color{R: uint8(i)})
	}
	if len(recent) != maxRecentColors {
		t.Fatalf("expected %d recent colors, got %d", maxRecentColors, len(recent))
	}
	recent = pushRecent(recent, Color{R: 5})
	if recent[0] != (Color{R: 5}) {
		t.Fatalf("expected re-used color moved to the front, got %v", recent[0])
	}
	seen := make(map[Color]bool)
	for _, c := range recent {
		if seen[c] {
			t.Fatalf("duplicate recent color %v", c)
		}
		seen[c] = true
	}
}
