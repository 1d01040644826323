package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"slices"
	"strconv"

	"github.com/ironsheep/midi-fractal/internal/boxcount"
	"github.com/ironsheep/midi-fractal/internal/config"
	"github.com/ironsheep/midi-fractal/internal/imaging"
)

// measure runs the estimator configured by opts on img, logging one line
// per box size, and writes the optional grid overlay.
func measure(ctx context.Context, img image.Image, opts config.BoxCount) (*boxcount.Result, error) {
	logger := loggerFromContext(ctx)

	pred, err := opts.Predicate()
	if err != nil {
		return nil, err
	}

	if opts.Threshold > 0 {
		logger.Debugf("Thresholding at luminance %d", opts.Threshold)
		img = imaging.Threshold(img, opts.Threshold)
	}

	est := &boxcount.Estimator{
		Predicate: pred,
		Workers:   opts.Workers,
		Observer: func(c boxcount.Count) {
			logger.Info("boxes", "size", c.BoxSize, "x", c.BoxesX, "y", c.BoxesY, "occupied", c.Occupied)
		},
	}

	prog := newProgress(logger)
	res, err := est.Estimate(ctx, img, opts.BoxSizes)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Counted %d box sizes", len(res.Counts)))

	for _, p := range res.Points {
		logger.Debug("graph point", "x", p.X, "y", p.Y)
	}
	logger.Debug("fit", "slope", res.Fit.Slope, "intercept", res.Fit.Intercept, "r", res.Fit.R, "stderr", res.Fit.StdErr)

	if opts.GridOverlay != "" {
		if err := writeGridOverlay(ctx, img, slices.Min(opts.BoxSizes), opts.GridOverlay); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func writeGridOverlay(ctx context.Context, img image.Image, boxSize int, path string) error {
	overlay, err := imaging.GridOverlay(img, boxSize, imaging.DefaultGridColor)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(overlay, path); err != nil {
		return err
	}
	loggerFromContext(ctx).Infof("Wrote %d pixel grid overlay to %s", boxSize, path)
	return nil
}

func formatDimension(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func printDimension(w io.Writer, d float64) error {
	_, err := fmt.Fprintln(w, formatDimension(d))
	return err
}
