package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
)

// Export is an encoded image ready for the export sink.
type Export struct {
	Filename string
	Data     []byte
}

func exportFilename(size int, ext string) string {
	return fmt.Sprintf("pixeldraw-%dx%d.%s", size, size, ext)
}

// exportScale is the integer upscale factor used for exported files.
func exportScale(size int) int {
	if size <= 0 {
		return 1
	}
	scale := exportTarget / size
	if scale < 1 {
		return 1
	}
	return scale
}

// renderScaled draws every painted cell as a scale x scale block on a
// transparent context.
func renderScaled(g *Grid, scale int) *gg.Context {
	n := g.Size() * scale
	dc := gg.NewContext(n, n)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			cell := g.cells[y][x]
			if !cell.Painted {
				continue
			}
			dc.SetRGB255(int(cell.Color.R), int(cell.Color.G), int(cell.Color.B))
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return dc
}

// ExportImage encodes the current grid in format ("png", "bmp" or "pdf").
func (e *Editor) ExportImage(format string) (Export, error) {
	return encodeExport(e.grid, format)
}

func encodeExport(g *Grid, format string) (Export, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := renderScaled(g, exportScale(g.Size())).EncodePNG(&buf); err != nil {
			return Export{}, fmt.Errorf("export png: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(&buf, renderScaled(g, exportScale(g.Size())).Image()); err != nil {
			return Export{}, fmt.Errorf("export bmp: %w", err)
		}
	case "pdf":
		if err := writePDF(&buf, g); err != nil {
			return Export{}, fmt.Errorf("export pdf: %w", err)
		}
	default:
		return Export{}, fmt.Errorf("unsupported export format %q", format)
	}
	return Export{Filename: exportFilename(g.Size(), format), Data: buf.Bytes()}, nil
}

// writePDF lays the grid out as a square of filled cells across the page
// width.
func writePDF(w io.Writer, g *Grid) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("pixeldraw %dx%d", g.Size(), g.Size()), true)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, top, _, _ := pdf.GetMargins()
	side := pageW - 2*left
	cell := side / float64(g.Size())

	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := g.cells[y][x]
			if !c.Painted {
				continue
			}
			pdf.SetFillColor(int(c.Color.R), int(c.Color.G), int(c.Color.B))
			pdf.Rect(left+float64(x)*cell, top+float64(y)*cell, cell, cell, "F")
		}
	}

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.Rect(left, top, side, side, "D")

	return pdf.Output(w)
}

// writeExport hands an export to the file sink and returns where it went.
func writeExport(config *Config, exp Export) (string, error) {
	path, err := config.SavePath(exp.Filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, exp.Data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
