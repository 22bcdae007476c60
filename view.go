package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas origin in terminal cells. The title bar sits on row 0.
const (
	canvasLeft = 0
	canvasTop  = 1
)

var (
	checkerDark  = lipgloss.Color("#2a2a3a")
	checkerLight = lipgloss.Color("#222233")
	gridLine     = lipgloss.Color("#3c3c50")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e8e8e8")).Background(lipgloss.Color("#444466")).Padding(0, 1)
	panelStyle   = lipgloss.NewStyle().PaddingLeft(2)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	activeStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#44ff44"))
)

func swatch(c Color, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(contrastColor(c).Hex())).
		Render(text)
}

// renderGrid draws g two columns per cell. It only reads the grid. Empty
// cells show a checkerboard; with showGrid each cell carries its right and
// bottom edge.
func renderGrid(g *Grid, showGrid bool, cursorX, cursorY int, showCursor bool) string {
	styles := make(map[Cell]lipgloss.Style)
	styleFor := func(cell Cell, x, y int) lipgloss.Style {
		key := cell
		if !cell.Painted {
			// Empty cells share one key per checker square colour.
			key = Cell{Color: Color{R: uint8((x + y) % 2)}}
		}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(gridLine)
		if cell.Painted {
			s = s.Background(lipgloss.Color(cell.Color.Hex()))
		} else if (x+y)%2 == 0 {
			s = s.Background(checkerDark)
		} else {
			s = s.Background(checkerLight)
		}
		styles[key] = s
		return s
	}

	text := strings.Repeat(" ", cellColumns)
	if showGrid {
		text = "▁▏"
	}

	size := g.Size()
	rows := make([]string, size)
	var row strings.Builder
	for y := 0; y < size; y++ {
		row.Reset()
		for x := 0; x < size; x++ {
			cell, _ := g.Get(x, y)
			s := styleFor(cell, x, y)
			if showCursor && x == cursorX && y == cursorY {
				row.WriteString(s.Copy().Reverse(true).Render("[]"))
				continue
			}
			row.WriteString(s.Render(text))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	g := m.editor.Grid()
	title := titleStyle.Render(fmt.Sprintf("pixeldraw %dx%d", g.Size(), g.Size()))
	canvas := renderGrid(g, m.editor.ShowGrid(), m.cursorX, m.cursorY, m.mode == ModeNormal)
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle.Render(m.sidePanel()))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.statusLine())
}

func (m model) sidePanel() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Tools"))
	b.WriteString("\n")
	for _, t := range []Tool{ToolDraw, ToolErase, ToolFill, ToolPick} {
		label := fmt.Sprintf(" %c %s ", toolKey(t), t)
		if t == m.editor.Tool() {
			label = activeStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	active := m.editor.Color()
	b.WriteString(swatch(active, "    "))
	b.WriteString(" " + active.Hex() + "\n\n")

	b.WriteString(headingStyle.Render("Palette"))
	b.WriteString("\n")
	for i, c := range paletteColors {
		cell := "  "
		if i == m.paletteIndex && c == active {
			cell = "<>"
		}
		b.WriteString(swatch(c, cell))
		if (i+1)%paletteColumns == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Recent"))
	b.WriteString("\n")
	for _, c := range m.editor.Recent() {
		b.WriteString(swatch(c, "  "))
	}
	b.WriteString("\n\n")

	undo, redo := m.editor.History().Depth()
	b.WriteString(faintStyle.Render(fmt.Sprintf("undo %d  redo %d", undo, redo)))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Gallery"))
	b.WriteString("\n")
	if len(m.gallery) == 0 {
		b.WriteString(faintStyle.Render("(empty, s to save)"))
		b.WriteString("\n")
	}
	for i, e := range m.gallery {
		line := fmt.Sprintf("%2d %dx%d %s", i+1, e.Size, e.Size, e.Date.Format("01-02 15:04"))
		if i == m.galleryIndex {
			line = activeStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func toolKey(t Tool) rune {
	switch t {
	case ToolErase:
		return 'e'
	case ToolFill:
		return 'f'
	case ToolPick:
		return 'p'
	default:
		return 'd'
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.loading {
			return "LOADING"
		}
		return m.editor.Tool().String()
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusLine() string {
	status := fmt.Sprintf("-- %s -- (%d,%d)", m.modeString(), m.cursorX, m.cursorY)

	if m.mode == ModeConfirm {
		var message string
		switch m.confirmAction {
		case ConfirmClear:
			message = "Clear the canvas? (y/n)"
		case ConfirmResize:
			message = fmt.Sprintf("Resize to %dx%d? This clears the canvas and history. (y/n)", m.pendingSize, m.pendingSize)
		case ConfirmQuit:
			message = "Quit? Unsaved work is lost. (y/n)"
		}
		return status + " " + message
	}

	switch {
	case m.errorMessage != "":
		return status + " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		return status + " " + successStyle.Render(m.successMessage)
	default:
		return status + faintStyle.Render("  ? for help")
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"pixeldraw Help",
		"==============",
		"",
		"Drawing:",
		"--------",
		"  mouse drag        Apply the tool (draw and erase follow the drag)",
		"  h/j/k/l, arrows   Move the cursor (Shift for 2x)",
		"  space/enter       Apply the tool at the cursor",
		"",
		"Tools:",
		"------",
		"  d  Draw    e  Erase    f  Fill    p  Pick color",
		"",
		"Colors:",
		"-------",
		"  [ / ]             Previous / next palette color",
		"  y                 Copy active color to clipboard",
		"  P                 Set active color from clipboard",
		"",
		"Canvas:",
		"-------",
		"  u, ctrl+z         Undo",
		"  U, ctrl+y         Redo",
		"  c                 Clear canvas",
		"  r / R             Next / previous canvas size (clears history)",
		"  g                 Toggle grid lines",
		"",
		"Files:",
		"------",
		fmt.Sprintf("  x                 Export as %s", strings.ToUpper(m.config.ExportFormat)),
		"  s                 Save to gallery",
		"  tab / shift+tab   Select gallery entry",
		"  o                 Open selected gallery entry",
		"  X                 Export gallery contact sheet",
		"",
		"  ?                 Toggle help",
		"  q                 Quit",
	}
	return strings.Join(helpLines, "\n")
}
