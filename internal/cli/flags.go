package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ironsheep/midi-fractal/internal/boxcount"
	"github.com/ironsheep/midi-fractal/internal/config"
)

// boxCountFlags are the estimator flags shared by count and plot.
type boxCountFlags struct {
	predicate   string
	boxSizes    string
	workers     int
	threshold   uint8
	gridOverlay string
}

func (f *boxCountFlags) register(fs *pflag.FlagSet) {
	d := config.DefaultBoxCount()
	fs.StringVar(&f.predicate, "interesting-pixel-function", d.InterestingPixelFunction,
		"pixel predicate: "+strings.Join(boxcount.Names(), ", "))
	fs.StringVar(&f.boxSizes, "box-sizes", config.DefaultBoxSizes, "comma-separated box sizes in pixels")
	fs.IntVar(&f.workers, "workers", d.Workers, "box sizes counted concurrently")
	fs.Uint8Var(&f.threshold, "threshold", 0, "binarise at this luminance before counting (0 = off)")
	fs.StringVar(&f.gridOverlay, "grid-overlay", "", "write the image with the smallest box grid drawn to this file")
}

// apply copies explicitly set flags over b.
func (f *boxCountFlags) apply(fs *pflag.FlagSet, b *config.BoxCount) error {
	if fs.Changed("interesting-pixel-function") {
		b.InterestingPixelFunction = f.predicate
	}
	if fs.Changed("box-sizes") {
		sizes, err := config.ParseBoxSizes(f.boxSizes)
		if err != nil {
			return err
		}
		b.BoxSizes = sizes
	}
	if fs.Changed("workers") {
		b.Workers = f.workers
	}
	if fs.Changed("threshold") {
		b.Threshold = f.threshold
	}
	if fs.Changed("grid-overlay") {
		b.GridOverlay = f.gridOverlay
	}
	return nil
}

// plotFlags are the rendering flags of the plot command.
type plotFlags struct {
	imageMaxX    int
	imageMaxY    int
	lineWidth    int
	plotType     string
	circleRadius int
}

func (f *plotFlags) register(fs *pflag.FlagSet) {
	d := config.DefaultPlot()
	fs.IntVar(&f.imageMaxX, "image-max-x", d.ImageMaxX, "the width of image in pixels")
	fs.IntVar(&f.imageMaxY, "image-max-y", d.ImageMaxY, "the height of image in pixels")
	fs.IntVar(&f.lineWidth, "line-width", d.LineWidth, "the stroke width of lines")
	fs.StringVar(&f.plotType, "plot-type", d.PlotType, "line, circle or point")
	fs.IntVar(&f.circleRadius, "circle-radius", d.CircleRadius, "the radius of a circle in pixels")
}

func (f *plotFlags) apply(fs *pflag.FlagSet, p *config.Plot) {
	if fs.Changed("image-max-x") {
		p.ImageMaxX = f.imageMaxX
	}
	if fs.Changed("image-max-y") {
		p.ImageMaxY = f.imageMaxY
	}
	if fs.Changed("line-width") {
		p.LineWidth = f.lineWidth
	}
	if fs.Changed("plot-type") {
		p.PlotType = f.plotType
	}
	if fs.Changed("circle-radius") {
		p.CircleRadius = f.circleRadius
	}
}
