package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestThreshold(t *testing.T) {
	img := createInMemoryImage(10, 1, color.RGBA{0, 0, 0, 255})
	img.Set(2, 0, color.RGBA{40, 40, 40, 255})
	img.Set(5, 0, color.RGBA{200, 200, 200, 255})
	img.Set(8, 0, color.RGBA{255, 255, 255, 255})

	out := Threshold(img, 128)
	gray, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("Threshold returned %T, want *image.Gray", out)
	}

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},
		{2, 0},
		{5, 255},
		{8, 255},
	}
	for _, tt := range tests {
		if got := gray.GrayAt(tt.x, 0).Y; got != tt.want {
			t.Errorf("x=%d: got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestThreshold_Disabled(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{40, 40, 40, 255})
	if out := Threshold(img, 0); out != image.Image(img) {
		t.Error("Threshold(img, 0) should return img unchanged")
	}
}
