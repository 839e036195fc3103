package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the formats we ship.
	_ "image/jpeg"
	_ "image/png"

	"charm.land/lipgloss/v2"
)

// IndustrialImage is the optional picture shown on the industrial sector view.
const IndustrialImage = "industrial_apps.jpg"

// ErrAssetMissing is returned when an optional asset is not on disk.
var ErrAssetMissing = errors.New("asset missing")

// LoadImage opens and decodes dir/name.
func LoadImage(dir, name string) (image.Image, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, ErrAssetMissing)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// RenderHalfBlocks draws img width cells wide using "▀" cells, each showing
// two vertically stacked pixels (foreground on top, background below).
func RenderHalfBlocks(img image.Image, width int) string {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	if width > b.Dx() {
		width = b.Dx()
	}

	// Terminal cells are roughly twice as tall as wide; one cell covers
	// two sampled rows, so sample rows at the same step as columns.
	step := float64(b.Dx()) / float64(width)
	rows := int(float64(b.Dy()) / step)
	if rows%2 == 1 {
		rows--
	}
	if rows < 2 {
		rows = 2
	}

	sample := func(col, row int) color.Color {
		x := b.Min.X + min(int(float64(col)*step), b.Dx()-1)
		y := b.Min.Y + min(int(float64(row)*step), b.Dy()-1)
		return img.At(x, y)
	}

	var sb strings.Builder
	for r := 0; r < rows; r += 2 {
		for c := 0; c < width; c++ {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(sample(c, r)).
				Background(sample(c, r+1)).
				Render("▀"))
		}
		if r+2 < rows {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
