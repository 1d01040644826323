// Package imaging loads, prepares and saves the raster images that the
// box-count estimator measures.
//
// It is the image source and image sink of the system: decoding any PNG,
// JPEG, GIF, BMP or TIFF file, an optional binarising pre-pass, a diagnostic
// box-grid overlay and PNG output that never leaves a partial file behind.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Output Names
//
// An output file name may carry the token "FD"; OutputName replaces every
// occurrence with the measured dimension so a batch of renderings can be
// compared by file name alone.
//
// # Thread Safety
//
// All functions are stateless. Images returned by Load and Threshold are
// not shared and may be read concurrently.
package imaging
