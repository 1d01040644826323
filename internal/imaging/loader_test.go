package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createTestImage writes a single-color PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, name string, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := createTestImage(t, "red.png", 120, 80, color.RGBA{255, 0, 0, 255})

	img, info, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 120x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if info.Width != 120 || info.Height != 80 {
		t.Errorf("info dimensions: got %dx%d, want 120x80", info.Width, info.Height)
	}
	if info.Format != "PNG" {
		t.Errorf("Format: got %s, want PNG", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}

	r, g, b, _ := img.At(60, 40).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 {
		t.Errorf("pixel: got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := createTestImage(t, "picture.data", 10, 10, color.White)

	_, info, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.Format != "unknown" {
		t.Errorf("Format: got %s, want unknown", info.Format)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, _, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image file")
	}
}
