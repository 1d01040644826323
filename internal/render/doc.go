// Package render draws an ordered sequence of note pitches as a raster trace.
//
// Sample i with pitch p is placed at
//
//	x = i * width / n
//	y = (p - minPitch) * height / (maxPitch - minPitch)
//
// where n is the number of samples and every division truncates toward zero.
// The truncation is part of the output format: changing it to rounding or
// floating-point scaling moves pixels and therefore changes the measured
// dimension. Y grows downward, so higher pitches are drawn lower on the
// canvas. When every sample has the same pitch the pitch range is empty and
// all samples are placed on the middle row, height/2.
//
// The canvas is black and the trace is white. Drawing uses fogleman/gg; its
// anti-aliased edges are snapped back to black or white, so every pixel of a
// rendering is either background or ink.
package render
