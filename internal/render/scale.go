package render

import "image"

// Scale maps n from [0, rangeMax] onto [0, canvasMax] with truncating
// integer division. rangeMax must not be zero.
func Scale(n, rangeMax, canvasMax int) int {
	return n * canvasMax / rangeMax
}

// Bounds returns the origin and extent of the sample space: index runs from
// 0 to len(samples), pitch from the lowest to the highest pitch.
func Bounds(samples []Sample) (lo, hi Sample) {
	if len(samples) == 0 {
		return Sample{}, Sample{}
	}
	lo = Sample{Index: 0, Pitch: samples[0].Pitch}
	hi = Sample{Index: len(samples), Pitch: samples[0].Pitch}
	for _, s := range samples[1:] {
		if s.Pitch < lo.Pitch {
			lo.Pitch = s.Pitch
		}
		if s.Pitch > hi.Pitch {
			hi.Pitch = s.Pitch
		}
	}
	return lo, hi
}

// ScalePoint translates s relative to lo and scales it onto a width x height
// canvas. An axis whose range is empty maps to the middle of the canvas.
func ScalePoint(s, lo, hi Sample, width, height int) image.Point {
	return image.Point{
		X: scaleAxis(s.Index-lo.Index, hi.Index-lo.Index, width),
		Y: scaleAxis(s.Pitch-lo.Pitch, hi.Pitch-lo.Pitch, height),
	}
}

func scaleAxis(n, rangeMax, canvasMax int) int {
	if rangeMax == 0 {
		return canvasMax / 2
	}
	return Scale(n, rangeMax, canvasMax)
}
