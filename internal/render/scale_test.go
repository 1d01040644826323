package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The truncating division is part of the output format and is pinned here.
func TestScale_Truncates(t *testing.T) {
	tests := []struct {
		n, rangeMax, canvasMax int
		want                   int
	}{
		{0, 10, 1024, 0},
		{10, 10, 1024, 1024},
		{2, 3, 10, 6},     // 6.67
		{1, 3, 1024, 341}, // 341.33
		{2, 3, 1024, 682}, // 682.67
		{1, 7, 600, 85},   // 85.71
		{6, 7, 600, 514},  // 514.29
		{1, 2, 5, 2},      // 2.5
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Scale(tt.n, tt.rangeMax, tt.canvasMax),
			"Scale(%d, %d, %d)", tt.n, tt.rangeMax, tt.canvasMax)
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(Samples([]int{64, 60, 72, 67}))
	assert.Equal(t, Sample{Index: 0, Pitch: 60}, lo)
	assert.Equal(t, Sample{Index: 4, Pitch: 72}, hi)
}

func TestScalePoint(t *testing.T) {
	samples := Samples([]int{60, 61, 67, 64})
	lo, hi := Bounds(samples)

	assert.Equal(t, image.Point{X: 0, Y: 0}, ScalePoint(samples[0], lo, hi, 1024, 600))
	assert.Equal(t, image.Point{X: 256, Y: 85}, ScalePoint(samples[1], lo, hi, 1024, 600))
	assert.Equal(t, image.Point{X: 512, Y: 600}, ScalePoint(samples[2], lo, hi, 1024, 600))
	assert.Equal(t, image.Point{X: 768, Y: 342}, ScalePoint(samples[3], lo, hi, 1024, 600))
}

func TestScalePoint_ConstantPitch(t *testing.T) {
	samples := []Sample{{0, 60}, {1, 60}, {2, 60}}
	lo, hi := Bounds(samples)

	for i, want := range []image.Point{{0, 300}, {341, 300}, {682, 300}} {
		assert.Equal(t, want, ScalePoint(samples[i], lo, hi, 1024, 600))
	}
}
