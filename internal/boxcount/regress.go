package boxcount

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/midi-fractal/internal/errdefs"
)

// GraphPoint is one (ln(1/box size), ln(occupied count)) pair.
type GraphPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Fit is an ordinary least-squares line y = Intercept + Slope*x.
type Fit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	// R is the Pearson correlation of x and y; 0 when y is constant.
	R float64 `json:"r"`
	// StdErr is the standard error of the slope; 0 for two points.
	StdErr float64 `json:"std_err"`
}

// Regress fits a line through points by simple linear regression.
//
// At least two points with distinct X values are required; otherwise the
// error wraps errdefs.ErrInsufficientData.
func Regress(points []GraphPoint) (Fit, error) {
	n := len(points)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: regression needs at least 2 points, got %d",
			errdefs.ErrInsufficientData, n)
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	if stat.Variance(xs, nil) == 0 {
		return Fit{}, fmt.Errorf("%w: all graph points share x = %g",
			errdefs.ErrInsufficientData, xs[0])
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	fit := Fit{Slope: slope, Intercept: intercept}
	if stat.Variance(ys, nil) != 0 {
		fit.R = stat.Correlation(xs, ys, nil)
	}

	if n > 2 {
		meanX := stat.Mean(xs, nil)
		var ssRes, sxx float64
		for i := range xs {
			r := ys[i] - (intercept + slope*xs[i])
			ssRes += r * r
			d := xs[i] - meanX
			sxx += d * d
		}
		fit.StdErr = math.Sqrt(ssRes / float64(n-2) / sxx)
	}

	return fit, nil
}
