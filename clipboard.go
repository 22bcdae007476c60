package main

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Indirection so tests can run without a system clipboard.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = readClipboardText
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// copyColor puts the active color's hex string on the clipboard.
func (e *Editor) copyColor() error {
	return writeClipboard(e.color.Hex())
}

// pasteColor sets the active color from hex text on the clipboard.
func (e *Editor) pasteColor() (Color, error) {
	text, err := readClipboard()
	if err != nil {
		return Color{}, err
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Color{}, errors.New("clipboard is empty")
	}
	c, err := ParseColor(fields[0])
	if err != nil {
		return Color{}, err
	}
	e.SetColor(c)
	return c, nil
}
