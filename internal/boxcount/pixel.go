package boxcount

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/midi-fractal/internal/errdefs"
)

// Pixel is an 8-bit RGB sample. Alpha is ignored.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// PixelOf converts any color to 8-bit components by keeping the high byte of
// each 16-bit channel.
func PixelOf(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Predicate reports whether a pixel counts as occupied.
type Predicate func(Pixel) bool

// IsNotBlack compares the pixel lexicographically against (1,0,0), so pure
// black and (1,0,0) itself are the only values rejected.
func IsNotBlack(p Pixel) bool {
	if p.R != 1 {
		return p.R > 1
	}
	return p.G > 0 || p.B > 0
}

// IsWhite accepts only (255,255,255).
func IsWhite(p Pixel) bool {
	return p.R == 255 && p.G == 255 && p.B == 255
}

// IsBright accepts pixels whose CIE-Lab lightness exceeds 0.5.
func IsBright(p Pixel) bool {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	l, _, _ := c.Lab()
	return l > 0.5
}

// DefaultPredicate is the name of the predicate used when none is configured.
const DefaultPredicate = "is_not_black"

var predicates = map[string]Predicate{
	"is_not_black": IsNotBlack,
	"is_white":     IsWhite,
	"is_bright":    IsBright,
}

// Lookup returns the predicate registered under name. A module prefix such
// as "box_count.is_white" is accepted and ignored.
func Lookup(name string) (Predicate, error) {
	key := strings.TrimSpace(name)
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	if p, ok := predicates[key]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown interesting pixel function %q (known: %s)",
		errdefs.ErrInvalidInput, name, strings.Join(Names(), ", "))
}

// Names lists the registered predicate names in sorted order.
func Names() []string {
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
