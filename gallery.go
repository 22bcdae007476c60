package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// GalleryEntry is one saved drawing: the native-size PNG plus when it was
// saved.
type GalleryEntry struct {
	ID    string    `json:"id"`
	Image []byte    `json:"img"`
	Size  int       `json:"size"`
	Date  time.Time `json:"date"`
}

// GalleryStore persists the gallery as a whole ordered list,
// most recent first. Update runs load, fn and save under one lock, so
// concurrent callers never overwrite each other's entries.
type GalleryStore interface {
	Load() ([]GalleryEntry, error)
	Save(entries []GalleryEntry) error
	Update(fn func([]GalleryEntry) []GalleryEntry) ([]GalleryEntry, error)
}

var errEmptyGallery = errors.New("gallery is empty")

// AddGalleryEntry puts entry at the front and drops the oldest entries past
// maxGallery. The input slice is not modified.
func AddGalleryEntry(entries []GalleryEntry, entry GalleryEntry) []GalleryEntry {
	out := make([]GalleryEntry, 0, maxGallery)
	out = append(out, entry)
	for _, e := range entries {
		if len(out) == maxGallery {
			break
		}
		out = append(out, e)
	}
	return out
}

// GallerySnapshot encodes the current grid as a new gallery entry.
func (e *Editor) GallerySnapshot(now time.Time) (GalleryEntry, error) {
	data, err := Encode(e.grid)
	if err != nil {
		return GalleryEntry{}, err
	}
	return GalleryEntry{
		ID:    uuid.NewString(),
		Image: data,
		Size:  e.grid.Size(),
		Date:  now,
	}, nil
}

func saveToGallery(store GalleryStore, entry GalleryEntry) ([]GalleryEntry, error) {
	return store.Update(func(entries []GalleryEntry) []GalleryEntry {
		return AddGalleryEntry(entries, entry)
	})
}

// loadGalleryEntry decodes entry index into a fresh grid. The entry's
// recorded size must match the image.
func loadGalleryEntry(store GalleryStore, index int) (*Grid, GalleryEntry, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, GalleryEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return nil, GalleryEntry{}, fmt.Errorf("no gallery entry %d", index+1)
	}
	entry := entries[index]
	g, err := Decode(entry.Image, entry.Size)
	if err != nil {
		return nil, entry, err
	}
	return g, entry, nil
}

type fileGalleryStore struct {
	mu   sync.Mutex
	path string
}

func newFileGalleryStore(path string) *fileGalleryStore {
	return &fileGalleryStore{path: path}
}

func (s *fileGalleryStore) Load() ([]GalleryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileGalleryStore) Save(entries []GalleryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(entries)
}

func (s *fileGalleryStore) Update(fn func([]GalleryEntry) []GalleryEntry) ([]GalleryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	entries = fn(entries)
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *fileGalleryStore) load() ([]GalleryEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read gallery: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var entries []GalleryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse gallery %s: %w", s.path, err)
	}
	return entries, nil
}

// save writes to a temp file first so a crash never leaves a torn gallery.
func (s *fileGalleryStore) save(entries []GalleryEntry) error {
	if entries == nil {
		entries = []GalleryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode gallery: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create gallery dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write gallery: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write gallery: %w", err)
	}
	return nil
}

type memoryGalleryStore struct {
	mu      sync.Mutex
	entries []GalleryEntry
}

func (s *memoryGalleryStore) Load() ([]GalleryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GalleryEntry(nil), s.entries...), nil
}

func (s *memoryGalleryStore) Save(entries []GalleryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]GalleryEntry(nil), entries...)
	return nil
}

func (s *memoryGalleryStore) Update(fn func([]GalleryEntry) []GalleryEntry) ([]GalleryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = fn(append([]GalleryEntry(nil), s.entries...))
	return append([]GalleryEntry(nil), s.entries...), nil
}

const (
	sheetThumb   = 128
	sheetPadding = 16
	sheetCaption = 20
	sheetColumns = 5
	sheetFile    = "pixeldraw-gallery.png"
)

// renderGallerySheet lays every entry out as a captioned thumbnail.
// Entries that fail to decode are logged and left blank.
func renderGallerySheet(entries []GalleryEntry) (*gg.Context, error) {
	if len(entries) == 0 {
		return nil, errEmptyGallery
	}

	cols := sheetColumns
	if len(entries) < cols {
		cols = len(entries)
	}
	rows := (len(entries) + cols - 1) / cols
	width := cols*(sheetThumb+sheetPadding) + sheetPadding
	height := rows*(sheetThumb+sheetPadding+sheetCaption) + sheetPadding

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    11,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for i, entry := range entries {
		x := sheetPadding + (i%cols)*(sheetThumb+sheetPadding)
		y := sheetPadding + (i/cols)*(sheetThumb+sheetPadding+sheetCaption)

		dc.SetRGB(0.8, 0.8, 0.8)
		dc.DrawRectangle(float64(x)-0.5, float64(y)-0.5, sheetThumb+1, sheetThumb+1)
		dc.Stroke()

		g, err := Decode(entry.Image, entry.Size)
		if err != nil {
			log.Printf("gallery sheet: skipping entry %s: %v", entry.ID, err)
			continue
		}
		src := gridImage(g)
		thumb := image.NewNRGBA(image.Rect(0, 0, sheetThumb, sheetThumb))
		xdraw.NearestNeighbor.Scale(thumb, thumb.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		dc.DrawImage(thumb, x, y)

		dc.SetColor(color.Black)
		caption := fmt.Sprintf("%dx%d %s", entry.Size, entry.Size, entry.Date.Format("2006-01-02"))
		dc.DrawStringAnchored(caption, float64(x)+sheetThumb/2, float64(y+sheetThumb)+sheetCaption/2, 0.5, 0.5)
	}

	return dc, nil
}

func exportGallerySheet(store GalleryStore, config *Config) (string, error) {
	entries, err := store.Load()
	if err != nil {
		return "", err
	}
	dc, err := renderGallerySheet(entries)
	if err != nil {
		return "", err
	}
	path, err := config.SavePath(sheetFile)
	if err != nil {
		return "", err
	}
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
