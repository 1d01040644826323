package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// Threshold binarises img: pixels whose luminance is at least level become
// white, all others black. A level of 0 disables the pass and returns img
// unchanged.
func Threshold(img image.Image, level uint8) image.Image {
	if level == 0 {
		return img
	}
	return segment.Threshold(img, level)
}
