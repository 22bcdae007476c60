package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	GalleryPath   string
	GridSize      int
	ShowGrid      bool
	Color         Color
	ExportFormat  string
}

func defaultConfig(homeDir string) *Config {
	config := &Config{
		GridSize:     defaultGridSize,
		ShowGrid:     true,
		Color:        defaultColor,
		ExportFormat: "png",
	}
	if homeDir != "" {
		config.GalleryPath = filepath.Join(homeDir, ".pixeldraw_gallery.json")
	} else {
		config.GalleryPath = ".pixeldraw_gallery.json"
	}
	return config
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig("")
	}

	file, err := os.Open(filepath.Join(homeDir, ".pixeldrawrc"))
	if err != nil {
		return defaultConfig(homeDir)
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

// parseConfig reads key = value lines. Unknown keys and bad values are
// ignored so a broken rc file never stops the editor from starting.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig(homeDir)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if value != "" {
				config.SaveDirectory = expandPath(value, homeDir)
			}
		case "gallery", "gallery_path", "galleryfile":
			if value != "" {
				config.GalleryPath = expandPath(value, homeDir)
			}
		case "gridsize", "grid_size", "size":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= maxGridSize {
				config.GridSize = n
			}
		case "showgrid", "show_grid", "grid":
			if b, err := strconv.ParseBool(value); err == nil {
				config.ShowGrid = b
			}
		case "color", "colour":
			if c, err := ParseColor(value); err == nil {
				config.Color = c
			}
		case "exportformat", "export_format", "format":
			switch f := strings.ToLower(strings.TrimPrefix(value, ".")); f {
			case "png", "bmp", "pdf":
				config.ExportFormat = f
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// SavePath returns where filename goes in the save directory, creating the
// directory when it does not exist yet.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
