package boxcount

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/midi-fractal/internal/errdefs"
)

// DegenerateBoxCountError reports a box size with no occupied box.
type DegenerateBoxCountError struct {
	BoxSize int
	BoxesX  int
	BoxesY  int
}

func (e *DegenerateBoxCountError) Error() string {
	if e.BoxesX == 0 || e.BoxesY == 0 {
		return fmt.Sprintf("%v: box size %d does not fit the image (%dx%d grid)",
			errdefs.ErrDegenerateBoxCount, e.BoxSize, e.BoxesX, e.BoxesY)
	}
	return fmt.Sprintf("%v: no interesting pixel in any of the %dx%d boxes of size %d",
		errdefs.ErrDegenerateBoxCount, e.BoxesX, e.BoxesY, e.BoxSize)
}

func (e *DegenerateBoxCountError) Unwrap() error {
	return errdefs.ErrDegenerateBoxCount
}

// Result is the outcome of a dimension estimate.
type Result struct {
	Dimension float64      `json:"dimension"`
	Counts    []Count      `json:"counts"`
	Points    []GraphPoint `json:"points"`
	Fit       Fit          `json:"fit"`
}

// Estimator computes box-counting dimensions.
//
// The zero value is not usable; Predicate must be set. Workers bounds the
// number of box sizes counted concurrently: zero means runtime.NumCPU and
// one counts sequentially. Observer, when set, is called once per box size
// in the order the sizes were given, after counting and before the fit.
type Estimator struct {
	Predicate Predicate
	Workers   int
	Observer  func(Count)
}

// NewEstimator returns an Estimator using pred and all available CPUs.
func NewEstimator(pred Predicate) *Estimator {
	return &Estimator{Predicate: pred}
}

func (e *Estimator) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.NumCPU()
}

// CountAll counts the occupied boxes of img for every size. Counts are
// returned in the order of sizes regardless of the worker count.
func (e *Estimator) CountAll(ctx context.Context, img image.Image, sizes []int) ([]Count, error) {
	if err := validate(img, sizes, e.Predicate); err != nil {
		return nil, err
	}

	counts := make([]Count, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, size := range sizes {
		g.Go(func() error {
			c, err := CountBoxesContext(ctx, img, size, e.Predicate)
			if err != nil {
				return err
			}
			counts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Estimate counts occupied boxes for every size and returns the slope of
// ln(count) against ln(1/size) as the dimension.
func (e *Estimator) Estimate(ctx context.Context, img image.Image, sizes []int) (*Result, error) {
	counts, err := e.CountAll(ctx, img, sizes)
	if err != nil {
		return nil, err
	}

	points := make([]GraphPoint, 0, len(counts))
	for _, c := range counts {
		if e.Observer != nil {
			e.Observer(c)
		}
		if c.Occupied == 0 {
			return nil, &DegenerateBoxCountError{BoxSize: c.BoxSize, BoxesX: c.BoxesX, BoxesY: c.BoxesY}
		}
		points = append(points, GraphPoint{
			X: math.Log(1.0 / float64(c.BoxSize)),
			Y: math.Log(float64(c.Occupied)),
		})
	}

	fit, err := Regress(points)
	if err != nil {
		return nil, err
	}

	return &Result{
		Dimension: fit.Slope,
		Counts:    counts,
		Points:    points,
		Fit:       fit,
	}, nil
}

// Estimate is a sequential one-shot estimate of img's dimension.
func Estimate(img image.Image, sizes []int, pred Predicate) (float64, error) {
	e := &Estimator{Predicate: pred, Workers: 1}
	res, err := e.Estimate(context.Background(), img, sizes)
	if err != nil {
		return 0, err
	}
	return res.Dimension, nil
}

func validate(img image.Image, sizes []int, pred Predicate) error {
	if img == nil {
		return fmt.Errorf("%w: no image", errdefs.ErrInvalidInput)
	}
	if pred == nil {
		return fmt.Errorf("%w: no interesting pixel function", errdefs.ErrInvalidInput)
	}
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least 2 box sizes, got %d", errdefs.ErrInsufficientData, len(sizes))
	}

	distinct := make(map[int]struct{}, len(sizes))
	var errs []error
	for _, s := range sizes {
		if s < 1 {
			errs = append(errs, fmt.Errorf("%w: box size %d is not positive", errdefs.ErrInvalidInput, s))
			continue
		}
		distinct[s] = struct{}{}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if len(distinct) < 2 {
		return fmt.Errorf("%w: need at least 2 distinct box sizes, got %v", errdefs.ErrInsufficientData, sizes)
	}
	return nil
}
