package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if os.Getenv("PIXELDRAW_DEBUG") != "" {
		f, err := tea.LogToFile("pixeldraw.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	config := loadConfig()
	m, err := initialModel(config, newFileGalleryStore(config.GalleryPath))
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) > 1 {
		g, err := loadImageFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		m.editor.LoadGrid(g)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, store GalleryStore) (model, error) {
	editor, err := NewEditor(config.GridSize, config.Color)
	if err != nil {
		return model{}, fmt.Errorf("start editor: %w", err)
	}
	if !config.ShowGrid {
		editor.ToggleGrid()
	}
	return model{
		editor:       editor,
		config:       config,
		store:        store,
		paletteIndex: paletteIndexOf(config.Color),
		mode:         ModeNormal,
		now:          time.Now,
	}, nil
}

func paletteIndexOf(c Color) int {
	for i, p := range paletteColors {
		if p == c {
			return i
		}
	}
	return 0
}

func (m model) Init() tea.Cmd {
	return loadGalleryListCmd(m.store)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case galleryListMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Gallery unavailable: %v", msg.err)
			return m, nil
		}
		m.setGallery(msg.entries)
		return m, nil

	case gallerySavedMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.setGallery(msg.entries)
		m.galleryIndex = 0
		m.successMessage = "Saved to gallery"
		return m, nil

	case galleryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Could not load: %v", msg.err)
			return m, nil
		}
		m.editor.LoadGrid(msg.grid)
		m.ensureCursorInBounds()
		m.successMessage = fmt.Sprintf("Loaded %dx%d from gallery", msg.entry.Size, msg.entry.Size)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", msg.path)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		if m.mode == ModeConfirm {
			return m.handleConfirm(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) setGallery(entries []GalleryEntry) {
	m.gallery = entries
	if m.galleryIndex >= len(entries) {
		m.galleryIndex = len(entries) - 1
	}
	if m.galleryIndex < 0 {
		m.galleryIndex = 0
	}
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.help || m.loading {
		return m, nil
	}

	switch msg.Type {
	case tea.MouseLeft:
		x, y, inside, err := m.canvasCell(msg.X, msg.Y)
		if err != nil || !inside {
			return m, nil
		}
		m.clearMessages()
		m.cursorX, m.cursorY = x, y
		m.editor.PointerDown(x, y)
		m.syncPalette()
	case tea.MouseMotion:
		if !m.editor.Drawing() {
			return m, nil
		}
		x, y, _, err := m.canvasCell(msg.X, msg.Y)
		if err != nil {
			return m, nil
		}
		m.cursorX, m.cursorY = x, y
		m.editor.PointerMove(x, y)
	case tea.MouseRelease:
		m.editor.PointerUp()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		if m.editor.Grid().PaintedCount() == 0 {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	case "?":
		m.help = true
		return m, nil
	}
	if m.moveCursor(key) {
		return m, nil
	}

	m.clearMessages()
	switch key {
	case "d":
		m.editor.SelectTool(ToolDraw)
	case "e":
		m.editor.SelectTool(ToolErase)
	case "f":
		m.editor.SelectTool(ToolFill)
	case "p":
		m.editor.SelectTool(ToolPick)
	case "g":
		m.editor.ToggleGrid()
	case " ", "space", "enter":
		if m.loading {
			return m, nil
		}
		m.editor.Tap(m.cursorX, m.cursorY)
		m.syncPalette()
	case "u", "ctrl+z":
		m.editor.Undo()
		m.ensureCursorInBounds()
	case "U", "ctrl+y":
		m.editor.Redo()
		m.ensureCursorInBounds()
	case "[":
		m.paletteIndex = (m.paletteIndex + len(paletteColors) - 1) % len(paletteColors)
		m.editor.SetColor(paletteColors[m.paletteIndex])
	case "]":
		m.paletteIndex = (m.paletteIndex + 1) % len(paletteColors)
		m.editor.SetColor(paletteColors[m.paletteIndex])
	case "c":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
	case "r", "R":
		m.pendingSize = nextGridSize(m.editor.Grid().Size(), key == "R")
		m.mode = ModeConfirm
		m.confirmAction = ConfirmResize
	case "x":
		exp, err := m.editor.ExportImage(m.config.ExportFormat)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		return m, exportCmd(m.config, exp)
	case "X":
		return m, exportSheetCmd(m.store, m.config)
	case "s":
		entry, err := m.editor.GallerySnapshot(m.now())
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		return m, saveGalleryCmd(m.store, entry)
	case "tab":
		if len(m.gallery) > 0 {
			m.galleryIndex = (m.galleryIndex + 1) % len(m.gallery)
		}
	case "shift+tab":
		if len(m.gallery) > 0 {
			m.galleryIndex = (m.galleryIndex + len(m.gallery) - 1) % len(m.gallery)
		}
	case "o":
		if len(m.gallery) == 0 {
			m.errorMessage = errEmptyGallery.Error()
			return m, nil
		}
		m.loading = true
		return m, loadGalleryCmd(m.store, m.galleryIndex)
	case "y":
		if err := m.editor.copyColor(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Copied %s", m.editor.Color().Hex())
	case "P":
		c, err := m.editor.pasteColor()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
			return m, nil
		}
		m.syncPalette()
		m.successMessage = fmt.Sprintf("Color %s", c.Hex())
	}
	return m, nil
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClear:
			m.editor.Clear()
		case ConfirmResize:
			if err := m.editor.Resize(m.pendingSize); err != nil {
				m.errorMessage = err.Error()
				return m, nil
			}
			m.ensureCursorInBounds()
			m.successMessage = fmt.Sprintf("Canvas is now %dx%d", m.pendingSize, m.pendingSize)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

// syncPalette points the palette selection at the active color when it is a
// palette color, so [ and ] continue from there.
func (m *model) syncPalette() {
	c := m.editor.Color()
	for i, p := range paletteColors {
		if p == c {
			m.paletteIndex = i
			return
		}
	}
}

// nextGridSize steps through gridSizes, wrapping around. Sizes outside the
// cycle restart it at the nearest end.
func nextGridSize(current int, backwards bool) int {
	idx := -1
	for i, s := range gridSizes {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if backwards {
			return gridSizes[len(gridSizes)-1]
		}
		return gridSizes[0]
	}
	if backwards {
		return gridSizes[(idx+len(gridSizes)-1)%len(gridSizes)]
	}
	return gridSizes[(idx+1)%len(gridSizes)]
}
