package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		want      string
	}{
		{"plot.png", 1.5, "plot.png"},
		{"plot-FD.png", 1.5, "plot-1.5.png"},
		{"FD/FD.png", 2, "2/2.png"},
		{"tune_FD.png", 1.2618595071429148, "tune_1.2618595071429148.png"},
		{"fd.png", 1.5, "fd.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputName(tt.name, tt.dimension); got != tt.want {
				t.Errorf("OutputName(%q, %v): got %q, want %q", tt.name, tt.dimension, got, tt.want)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	src := createInMemoryImage(30, 20, color.RGBA{10, 200, 30, 255})

	if err := SavePNG(src, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	img, info, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.Width != 30 || info.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", info.Width, info.Height)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if uint8(r>>8) != 10 || uint8(g>>8) != 200 || uint8(b>>8) != 30 {
		t.Errorf("pixel: got (%d,%d,%d), want (10,200,30)", r>>8, g>>8, b>>8)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestSavePNG_PNGRegardlessOfExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := SavePNG(image.NewRGBA(image.Rect(0, 0, 4, 4)), path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG file")
	}
}

func TestSavePNG_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := SavePNG(image.NewRGBA(image.Rect(0, 0, 4, 4)), path); err == nil {
		t.Error("SavePNG should fail when the directory does not exist")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no output file should exist after a failed save")
	}
}
