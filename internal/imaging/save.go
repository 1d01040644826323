package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// DimensionToken is replaced by the measured dimension in output names.
const DimensionToken = "FD"

// OutputName replaces every DimensionToken in name with the shortest decimal
// representation of dimension. Names without the token are returned as is.
func OutputName(name string, dimension float64) string {
	if !strings.Contains(name, DimensionToken) {
		return name
	}
	return strings.ReplaceAll(name, DimensionToken, strconv.FormatFloat(dimension, 'g', -1, 64))
}

// SavePNG encodes img as PNG at path regardless of the file extension.
//
// The image is written to a temporary file next to path and renamed into
// place once encoding has succeeded, so a failed save leaves no partial file.
func SavePNG(img image.Image, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
