package boxcount

import (
	"context"
	"image"
)

// Count is the occupancy of one box size.
type Count struct {
	BoxSize  int `json:"box_size"`
	BoxesX   int `json:"boxes_x"`
	BoxesY   int `json:"boxes_y"`
	Occupied int `json:"occupied"`
}

// Cells returns the number of whole grid cells examined for this box size.
func (c Count) Cells() int {
	return c.BoxesX * c.BoxesY
}

// CountBoxes partitions img into size×size cells and counts those holding
// at least one pixel accepted by pred.
//
// Only whole cells are examined: the grid has floor(width/size) columns and
// floor(height/size) rows, and pixels in a trailing partial column or row
// are never tested. A size larger than either dimension yields an empty
// grid. Each cell is scanned in row-major order and abandoned at the first
// accepted pixel. size must be positive.
func CountBoxes(img image.Image, size int, pred Predicate) Count {
	c, _ := CountBoxesContext(context.Background(), img, size, pred)
	return c
}

// CountBoxesContext is CountBoxes with cancellation, checked before every
// row of cells.
func CountBoxesContext(ctx context.Context, img image.Image, size int, pred Predicate) (Count, error) {
	bounds := img.Bounds()
	c := Count{
		BoxSize: size,
		BoxesX:  bounds.Dx() / size,
		BoxesY:  bounds.Dy() / size,
	}

	at := pixelReader(img)
	for by := 0; by < c.BoxesY; by++ {
		if err := ctx.Err(); err != nil {
			return Count{}, err
		}
		for bx := 0; bx < c.BoxesX; bx++ {
			if cellOccupied(at, bounds.Min.X+bx*size, bounds.Min.Y+by*size, size, pred) {
				c.Occupied++
			}
		}
	}
	return c, nil
}

func cellOccupied(at func(x, y int) Pixel, x0, y0, size int, pred Predicate) bool {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			if pred(at(x, y)) {
				return true
			}
		}
	}
	return false
}

// pixelReader returns a random-access pixel getter for img. Rendered
// canvases are *image.RGBA and are read straight from the pixel buffer;
// every other type goes through At.
func pixelReader(img image.Image) func(x, y int) Pixel {
	switch m := img.(type) {
	case *image.RGBA:
		return func(x, y int) Pixel {
			i := m.PixOffset(x, y)
			return Pixel{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}
		}
	case *image.Gray:
		return func(x, y int) Pixel {
			v := m.Pix[m.PixOffset(x, y)]
			return Pixel{R: v, G: v, B: v}
		}
	default:
		return func(x, y int) Pixel {
			return PixelOf(img.At(x, y))
		}
	}
}
