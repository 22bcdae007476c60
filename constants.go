package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmResize
	ConfirmQuit
)

const (
	defaultGridSize = 32
	maxGridSize     = 256
	maxHistory      = 50 // undo snapshots kept per document
	maxGallery      = 10
	maxRecentColors = 12
	exportTarget    = 512 // exported images are scaled up toward this many pixels
	cellColumns     = 2   // terminal columns per grid cell
	paletteColumns  = 6
)

// gridSizes is the cycle offered by the resize key.
var gridSizes = []int{8, 16, 32, 64}
