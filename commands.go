package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func loadGalleryListCmd(store GalleryStore) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.Load()
		return galleryListMsg{entries: entries, err: err}
	}
}

// loadGalleryCmd decodes entry index off the update loop. The live grid is
// only replaced when the resulting galleryLoadedMsg is handled.
func loadGalleryCmd(store GalleryStore, index int) tea.Cmd {
	return func() tea.Msg {
		g, entry, err := loadGalleryEntry(store, index)
		if err != nil {
			log.Printf("gallery load %d: %v", index, err)
		}
		return galleryLoadedMsg{grid: g, entry: entry, index: index, err: err}
	}
}

func saveGalleryCmd(store GalleryStore, entry GalleryEntry) tea.Cmd {
	return func() tea.Msg {
		entries, err := saveToGallery(store, entry)
		if err != nil {
			log.Printf("gallery save: %v", err)
		}
		return gallerySavedMsg{entries: entries, err: err}
	}
}

// exportCmd writes an already encoded export so the grid itself never
// leaves the update loop.
func exportCmd(config *Config, exp Export) tea.Cmd {
	return func() tea.Msg {
		path, err := writeExport(config, exp)
		if err != nil {
			log.Printf("export: %v", err)
		} else {
			log.Printf("exported %s (%d bytes)", path, len(exp.Data))
		}
		return exportedMsg{path: path, err: err}
	}
}

func exportSheetCmd(store GalleryStore, config *Config) tea.Cmd {
	return func() tea.Msg {
		path, err := exportGallerySheet(store, config)
		if err != nil {
			log.Printf("gallery sheet: %v", err)
		}
		return exportedMsg{path: path, err: err}
	}
}
