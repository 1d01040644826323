package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGridOverlay(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{128, 128, 128, 255})

	result, err := GridOverlay(img, 25, "#FF0000")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	if result.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Errorf("bounds: got %v, want 100x100", result.Bounds())
	}
}

func TestGridOverlay_GridLines(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 0, 0, 255})

	result, err := GridOverlay(img, 25, "#FF0000FF")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	// Check that grid line at x=25 is red
	if c := result.RGBAAt(25, 50); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("grid line color at (25,50): got (%d,%d,%d), want (255,0,0)", c.R, c.G, c.B)
	}

	// Check that non-grid position is still black (background)
	if c := result.RGBAAt(15, 15); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("non-grid position at (15,15): got (%d,%d,%d), want (0,0,0)", c.R, c.G, c.B)
	}
}

func TestGridOverlay_IgnoredMargin(t *testing.T) {
	img := createInMemoryImage(110, 60, color.RGBA{0, 0, 0, 255})

	result, err := GridOverlay(img, 50, "#00FF00")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	tests := []struct {
		name  string
		x, y  int
		green bool
	}{
		{"inside box", 20, 20, false},
		{"right margin", 105, 20, true},
		{"bottom margin", 20, 55, true},
		{"corner", 105, 55, true},
		{"second column line", 50, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := result.RGBAAt(tt.x, tt.y).G == 255
			if got != tt.green {
				t.Errorf("(%d,%d) tinted: got %v, want %v", tt.x, tt.y, got, tt.green)
			}
		})
	}
}

func TestGridOverlay_TranslucentDefault(t *testing.T) {
	img := createInMemoryImage(40, 40, color.RGBA{0, 0, 0, 255})

	result, err := GridOverlay(img, 10, "not a color")
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	c := result.RGBAAt(10, 5)
	if c.R < 120 || c.R > 135 || c.G != 0 || c.B != 0 {
		t.Errorf("half-transparent red over black: got (%d,%d,%d)", c.R, c.G, c.B)
	}
}

func TestGridOverlay_InvalidSpacing(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)
	if _, err := GridOverlay(img, 0, DefaultGridColor); err == nil {
		t.Error("GridOverlay should fail for zero spacing")
	}
}

func TestParseGridColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"#0000FF80", color.NRGBA{0, 0, 255, 128}, false},
		{"", color.NRGBA{}, true},
		{"#FFF", color.NRGBA{255, 255, 255, 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#FF0000ZZ", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := parseGridColor(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
