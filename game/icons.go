package game

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var iconAssets embed.FS

// loadIcons rasterizes every embedded SVG to a size x size image, keyed by
// file name without extension
func loadIcons(size int) (map[string]*ebiten.Image, error) {
	entries, err := fs.ReadDir(iconAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to list icon assets: %w", err)
	}

	icons := make(map[string]*ebiten.Image, len(entries))
	for _, entry := range entries {
		data, err := iconAssets.ReadFile(path.Join("assets", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read icon %s: %w", entry.Name(), err)
		}
		img, err := svgToImage(data, size, size)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize icon %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		icons[name] = ebiten.NewImageFromImage(img)
	}
	return icons, nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
