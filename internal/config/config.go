// Package config holds the options of the box counter and the MIDI plotter.
//
// The two option sets are independent structs. Options composes them for
// the plot command, which needs both; the count command only uses BoxCount.
// Values come from Default, may be overlaid by a YAML file and are finally
// overridden by explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/midi-fractal/internal/boxcount"
	"github.com/ironsheep/midi-fractal/internal/errdefs"
	"github.com/ironsheep/midi-fractal/internal/render"
)

// BoxCount configures the dimension estimate.
type BoxCount struct {
	// ImageFile is the image to measure (count command).
	ImageFile string `yaml:"image_file"`

	// InterestingPixelFunction names a predicate registered in boxcount.
	InterestingPixelFunction string `yaml:"interesting_pixel_function"`

	// BoxSizes are the box side lengths in pixels, conventionally descending.
	BoxSizes BoxSizes `yaml:"box_sizes"`

	// Workers bounds concurrent box sizes; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Threshold binarises the image before counting; 0 disables it.
	Threshold uint8 `yaml:"threshold"`

	// GridOverlay, when set, receives a copy of the measured image with the
	// smallest box grid drawn over it.
	GridOverlay string `yaml:"grid_overlay"`
}

// Plot configures the MIDI rendering.
type Plot struct {
	MIDIFileName string `yaml:"midi_file_name"`

	// ImageFile is the output PNG; "FD" is replaced by the dimension.
	ImageFile string `yaml:"image_file"`

	ImageMaxX    int    `yaml:"image_max_x"`
	ImageMaxY    int    `yaml:"image_max_y"`
	LineWidth    int    `yaml:"line_width"`
	PlotType     string `yaml:"plot_type"`
	CircleRadius int    `yaml:"circle_radius"`
}

// Options is the merged configuration of both programs.
type Options struct {
	BoxCount BoxCount `yaml:"box_count"`
	Plot     Plot     `yaml:"plot"`
}

// DefaultBoxSizes is the box size list used when none is configured.
const DefaultBoxSizes = "100,50,25,10"

// Default returns the built-in defaults.
func Default() *Options {
	return &Options{
		BoxCount: DefaultBoxCount(),
		Plot:     DefaultPlot(),
	}
}

// DefaultBoxCount returns the box counter defaults.
func DefaultBoxCount() BoxCount {
	return BoxCount{
		InterestingPixelFunction: boxcount.DefaultPredicate,
		BoxSizes:                 BoxSizes{100, 50, 25, 10},
		Workers:                  runtime.NumCPU(),
	}
}

// DefaultPlot returns the plotter defaults.
func DefaultPlot() Plot {
	d := render.DefaultOptions()
	return Plot{
		MIDIFileName: "temp.mid",
		ImageMaxX:    d.Width,
		ImageMaxY:    d.Height,
		LineWidth:    d.LineWidth,
		PlotType:     string(d.Style),
		CircleRadius: d.CircleRadius,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// A missing file is not an error.
func Load(path string) (*Options, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// BoxSizes is a list of box side lengths. In YAML it is either a sequence
// of integers or a comma-separated string such as "100, 50, 25, 10".
type BoxSizes []int

// UnmarshalYAML accepts both forms of a box size list.
func (s *BoxSizes) UnmarshalYAML(value *yaml.Node) error {
	var sizes []int
	if value.Kind == yaml.ScalarNode {
		parsed, err := ParseBoxSizes(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		sizes = parsed
	} else if err := value.Decode(&sizes); err != nil {
		return err
	}
	*s = sizes
	return nil
}

// ParseBoxSizes converts a comma-separated list such as "100, 50, 25" into
// box sizes. Every entry must be a positive integer.
func ParseBoxSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty box size list", errdefs.ErrInvalidInput)
	}

	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: box size %q is not an integer", errdefs.ErrInvalidInput, f)
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: box size %d is not positive", errdefs.ErrInvalidInput, n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// FormatBoxSizes is the inverse of ParseBoxSizes.
func FormatBoxSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// Predicate resolves InterestingPixelFunction.
func (b BoxCount) Predicate() (boxcount.Predicate, error) {
	return boxcount.Lookup(b.InterestingPixelFunction)
}

// Validate checks the options that can be checked without an image.
func (b BoxCount) Validate() error {
	if _, err := b.Predicate(); err != nil {
		return err
	}
	if len(b.BoxSizes) < 2 {
		return fmt.Errorf("%w: need at least 2 box sizes, got %d", errdefs.ErrInsufficientData, len(b.BoxSizes))
	}
	for _, s := range b.BoxSizes {
		if s < 1 {
			return fmt.Errorf("%w: box size %d is not positive", errdefs.ErrInvalidInput, s)
		}
	}
	if b.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", errdefs.ErrInvalidInput, b.Workers)
	}
	return nil
}

// RenderOptions converts the plot options for the renderer.
func (p Plot) RenderOptions() render.Options {
	return render.Options{
		Width:        p.ImageMaxX,
		Height:       p.ImageMaxY,
		Style:        render.ParseStyle(p.PlotType),
		LineWidth:    p.LineWidth,
		CircleRadius: p.CircleRadius,
	}
}

// Validate checks the canvas and style parameters.
func (p Plot) Validate() error {
	if p.ImageMaxX <= 0 || p.ImageMaxY <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", errdefs.ErrInvalidInput, p.ImageMaxX, p.ImageMaxY)
	}
	if p.LineWidth < 1 {
		return fmt.Errorf("%w: line width must be at least 1, got %d", errdefs.ErrInvalidInput, p.LineWidth)
	}
	if p.CircleRadius < 0 {
		return fmt.Errorf("%w: circle radius must not be negative, got %d", errdefs.ErrInvalidInput, p.CircleRadius)
	}
	return nil
}

// Validate checks both option sets.
func (o *Options) Validate() error {
	if err := o.BoxCount.Validate(); err != nil {
		return err
	}
	return o.Plot.Validate()
}
