package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/image/bmp"
)

func patternGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g := newTestGrid(t, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch (x + 2*y) % 4 {
			case 0:
				g.Set(x, y, Paint(Color{R: uint8(x * 7), G: uint8(y * 13), B: 200}))
			case 1:
				g.Set(x, y, Paint(Color{}))
			case 2:
				g.Set(x, y, Paint(Color{R: 255, G: 255, B: 255}))
			}
		}
	}
	return g
}

func TestCodecRoundTrip(t *testing.T) {
	for _, size := range []int{1, 8, 16, 33} {
		g := patternGrid(t, size)
		data, err := Encode(g)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, err := Decode(data, size)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.Equal(g) {
			t.Fatalf("size %d: round trip changed the grid", size)
		}

		got, err = Decode(data, 0)
		if err != nil {
			t.Fatalf("Decode without size: %v", err)
		}
		if !got.Equal(g) {
			t.Fatalf("size %d: round trip without expected size changed the grid", size)
		}
	}
}

func TestEncodeProducesNativeSizeAlpha(t *testing.T) {
	g := newTestGrid(t, 4)
	g.Set(1, 2, Paint(red))

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("expected 4x4 image, got %v", b)
	}
	got := color.NRGBAModel.Convert(img.At(1, 2)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("expected opaque red, got %v", got)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("expected transparent empty cell, got alpha %d", a)
	}
}

func TestDecodePartialAlphaBecomesOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 0})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	g, err := Decode(buf.Bytes(), 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c, _ := g.Get(0, 0); c != Paint(Color{R: 10, G: 20, B: 30}) {
		t.Fatalf("expected opaque rgb(10,20,30), got %v", c)
	}
	if c, _ := g.Get(1, 1); c != Empty {
		t.Fatalf("expected alpha 0 pixel to be empty, got %v", c)
	}
}

func TestDecodeErrors(t *testing.T) {
	square, err := Encode(newTestGrid(t, 8))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var wide bytes.Buffer
	if err := png.Encode(&wide, image.NewNRGBA(image.Rect(0, 0, 8, 4))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	tests := []struct {
		name     string
		data     []byte
		expected int
	}{
		{"garbage", []byte("definitely not an image"), 0},
		{"empty", nil, 0},
		{"size mismatch", square, 16},
		{"not square", wide.Bytes(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(tt.data, tt.expected)
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if g != nil {
				t.Fatal("expected no grid on error")
			}
		})
	}
}

// pngWithHeaderSize encodes a 1x1 png and rewrites its IHDR to claim
// width x height, fixing up the chunk checksum.
func pngWithHeaderSize(t *testing.T, width, height uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	data := buf.Bytes()
	// signature(8) length(4) "IHDR"(4) then width and height.
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		expected      int
	}{
		{"too large", 12000, 12000, 0},
		{"not square", 12000, 6000, 0},
		{"size mismatch", 12000, 12000, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := pngWithHeaderSize(t, tt.width, tt.height)

			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			g, err := Decode(data, tt.expected)
			runtime.ReadMemStats(&after)

			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if g != nil {
				t.Fatal("expected no grid on error")
			}
			if grew := after.TotalAlloc - before.TotalAlloc; grew > 8<<20 {
				t.Fatalf("rejecting the header allocated %d bytes", grew)
			}
		})
	}
}

func TestDecodeBMP(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(2, 0, color.NRGBA{R: 0, G: 200, B: 100, A: 255})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	g, err := Decode(buf.Bytes(), 3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c, _ := g.Get(2, 0); c != Paint(Color{G: 200, B: 100}) {
		t.Fatalf("expected green-teal cell, got %v", c)
	}
}

func TestLoadImageFile(t *testing.T) {
	g := patternGrid(t, 16)
	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "art.png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := loadImageFile(path)
	if err != nil {
		t.Fatalf("loadImageFile: %v", err)
	}
	if !got.Equal(g) {
		t.Fatal("loaded grid differs from saved grid")
	}

	if _, err := loadImageFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
