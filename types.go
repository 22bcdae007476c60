package main

import "time"

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	editor         *Editor
	config         *Config
	store          GalleryStore
	gallery        []GalleryEntry
	galleryIndex   int
	loading        bool
	paletteIndex   int
	mode           Mode
	confirmAction  ConfirmAction
	pendingSize    int
	help           bool
	errorMessage   string
	successMessage string
	now            func() time.Time
}

type point struct {
	X, Y int
}

// galleryLoadedMsg carries a decoded gallery entry back to the update loop.
type galleryLoadedMsg struct {
	grid  *Grid
	entry GalleryEntry
	index int
	err   error
}

type galleryListMsg struct {
	entries []GalleryEntry
	err     error
}

type gallerySavedMsg struct {
	entries []GalleryEntry
	err     error
}

// exportedMsg reports where an export or contact sheet was written.
type exportedMsg struct {
	path string
	err  error
}
