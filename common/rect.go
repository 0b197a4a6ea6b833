package common

import "math"

// Rect is an axis-aligned rectangle in render-target pixel space, used for
// both scissor rectangles and viewport extents.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// ScaledBy returns r with all four components multiplied by factor, rounding
// width/height up to the nearest pixel. This is the render-target-scale
// application every Viewport and Scissor updater performs.
//
// Parameters:
//   - factor: the render-target upscaling factor (1.0 = no scaling)
//
// Returns:
//   - Rect: the scaled rectangle
func (r Rect) ScaledBy(factor float32) Rect {
	return Rect{
		X:      r.X * factor,
		Y:      r.Y * factor,
		Width:  float32(math.Ceil(float64(r.Width * factor))),
		Height: float32(math.Ceil(float64(r.Height * factor))),
	}
}
