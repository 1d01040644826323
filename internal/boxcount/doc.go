// Package boxcount estimates the box-counting (Minkowski–Bouligand)
// dimension of a raster image.
//
// For every requested box size s the image is partitioned into a grid of
// floor(width/s) × floor(height/s) square cells and the cells containing at
// least one interesting pixel are counted. The dimension is the slope of the
// least-squares line through the points (ln(1/s), ln(count)).
//
// # Grid Alignment
//
// The grid is anchored at the image's top-left corner (img.Bounds().Min).
// Pixels in a trailing partial column or row, those beyond the last whole
// cell, are never examined. A box size larger than either image dimension
// therefore yields an empty grid and a zero count.
//
// # Interesting Pixels
//
// Whether a pixel counts as occupied is decided by a Predicate. A fixed set
// of named predicates is available through Lookup:
//
//   - is_not_black: anything lexicographically above (1,0,0) (the default)
//   - is_white: exactly (255,255,255)
//   - is_bright: CIE-Lab lightness above one half
//
// Any other func(Pixel) bool may be passed to an Estimator directly.
//
// # Errors
//
// Errors wrap the sentinels of package errdefs:
//   - ErrInsufficientData when fewer than two distinct box sizes are given
//   - ErrInvalidInput for a nil image or predicate and box sizes below one
//   - ErrDegenerateBoxCount, as *DegenerateBoxCountError, when a box size
//     has no occupied box
//
// # Thread Safety
//
// Counting only reads the image. An Estimator may count several box sizes
// concurrently; the caller must not modify the image while Estimate runs.
package boxcount
