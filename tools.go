package main

// Tool is the active editing tool. Exactly one is selected at a time.
type Tool int

const (
	ToolDraw Tool = iota
	ToolErase
	ToolFill
	ToolPick
)

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "DRAW"
	case ToolErase:
		return "ERASE"
	case ToolFill:
		return "FILL"
	case ToolPick:
		return "PICK"
	default:
		return "UNKNOWN"
	}
}

// mutates reports whether the tool can change the grid.
func (t Tool) mutates() bool {
	return t != ToolPick
}

// continuous reports whether the tool keeps applying while the pointer drags.
func (t Tool) continuous() bool {
	return t == ToolDraw || t == ToolErase
}

// ApplyTool runs tool at (x, y). For ToolPick on a painted cell it returns
// that cell's color with ok set; every other case returns ok == false.
// Targets outside the grid leave it untouched.
func ApplyTool(g *Grid, tool Tool, x, y int, active Color) (Color, bool) {
	if !g.InBounds(x, y) {
		return Color{}, false
	}

	switch tool {
	case ToolDraw:
		g.Set(x, y, Paint(active))
	case ToolErase:
		g.Set(x, y, Empty)
	case ToolFill:
		FloodFill(g, x, y, Paint(active))
	case ToolPick:
		cell, err := g.Get(x, y)
		if err == nil && cell.Painted {
			return cell.Color, true
		}
	}
	return Color{}, false
}
