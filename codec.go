package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// gridImage renders g at one pixel per cell. Empty cells are fully
// transparent and painted cells fully opaque.
func gridImage(g *Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.size, g.size))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if cell := g.cells[y][x]; cell.Painted {
				img.SetNRGBA(x, y, cell.Color.NRGBA())
			}
		}
	}
	return img
}

// Encode serializes g as a lossless size x size PNG.
func Encode(g *Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gridImage(g)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads a png, gif or bmp into a new grid. Pixels with any alpha
// become opaque cells of their unpremultiplied RGB; alpha 0 is Empty.
// expectedSize <= 0 accepts any square image up to maxGridSize.
func Decode(data []byte, expectedSize int) (*Grid, error) {
	// Check dimensions from the header so a crafted file cannot force a
	// huge raster allocation.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "not a valid image", Err: err}
	}
	if err := checkDimensions(cfg.Width, cfg.Height, expectedSize); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "not a valid image", Err: err}
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkDimensions(w, h, expectedSize); err != nil {
		return nil, err
	}

	g, err := NewGrid(w)
	if err != nil {
		return nil, &DecodeError{Reason: "unsupported dimensions", Err: err}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if px.A > 0 {
				g.cells[y][x] = Paint(Color{R: px.R, G: px.G, B: px.B})
			}
		}
	}
	return g, nil
}

func checkDimensions(w, h, expectedSize int) error {
	if w != h {
		return &DecodeError{Reason: fmt.Sprintf("image is %dx%d, not square", w, h)}
	}
	if expectedSize > 0 && w != expectedSize {
		return &DecodeError{Reason: fmt.Sprintf("image is %dx%d, expected %dx%d", w, h, expectedSize, expectedSize)}
	}
	if w <= 0 || w > maxGridSize {
		return &DecodeError{Reason: "unsupported dimensions", Err: &InvalidSizeError{Size: w}}
	}
	return nil
}

// loadImageFile decodes an image file from disk into a grid.
func loadImageFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := Decode(data, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return g, nil
}
