package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGridColor is semi-transparent red.
const DefaultGridColor = "#FF000080"

// GridOverlay returns a copy of img with the box-count grid for boxSize
// drawn over it.
//
// Grid lines are drawn on the first row and column of every whole box, and
// the trailing partial column and row that box counting ignores are tinted
// with the grid color. An unparsable gridColorHex falls back to
// DefaultGridColor.
func GridOverlay(img image.Image, boxSize int, gridColorHex string) (*image.RGBA, error) {
	if boxSize < 1 {
		return nil, fmt.Errorf("grid spacing must be positive, got %d", boxSize)
	}

	gridColor, err := parseGridColor(gridColorHex)
	if err != nil {
		gridColor, _ = parseGridColor(DefaultGridColor)
	}

	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	width := result.Bounds().Dx()
	height := result.Bounds().Dy()
	coveredX := width / boxSize * boxSize
	coveredY := height / boxSize * boxSize
	tint := &image.Uniform{C: gridColor}

	// Vertical lines
	for x := 0; x < coveredX; x += boxSize {
		draw.Draw(result, image.Rect(x, 0, x+1, coveredY), tint, image.Point{}, draw.Over)
	}

	// Horizontal lines
	for y := 0; y < coveredY; y += boxSize {
		draw.Draw(result, image.Rect(0, y, coveredX, y+1), tint, image.Point{}, draw.Over)
	}

	// Ignored margins
	draw.Draw(result, image.Rect(coveredX, 0, width, height), tint, image.Point{}, draw.Over)
	draw.Draw(result, image.Rect(0, coveredY, coveredX, height), tint, image.Point{}, draw.Over)

	return result, nil
}

// parseGridColor reads "#RRGGBB", "#RGB" or "#RRGGBBAA"; the # is optional.
func parseGridColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}
	if len(hex) != 6 && len(hex) != 3 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
