// Package geom holds the scalar and 2-vector primitives the stroke
// modeler builds on: clamp-based normalization, linear interpolation,
// nearest-point-on-segment, and the usual Euclidean operations.
package geom

import "math"

// Vec2 is a 2D point or vector, unit-agnostic. Stored in float32 to
// match the reference golden vectors; time stays float64 everywhere
// else in this module.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize01 maps v into [0, 1] relative to [start, end]: 0 at or
// below start, 1 at or above end, linear between. When start == end,
// returns 1 if v > start, else 0 (there is no interval to interpolate
// over).
func Normalize01(start, end, v float32) float32 {
	if start == end {
		if v > start {
			return 1
		}
		return 0
	}
	return Clamp((v-start)/(end-start), 0, 1)
}

// Interp linearly interpolates from a to b, clamping t to [0, 1].
func Interp(a, b, t float32) float32 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Interp2 is the componentwise Vec2 form of Interp.
func Interp2(a, b Vec2, t float32) Vec2 {
	return Vec2{Interp(a.X, b.X, t), Interp(a.Y, b.Y, t)}
}

// Dot is the Euclidean dot product.
func Dot(a, b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec2) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// NearestOnSegment returns the segment parameter in [0, 1] of the
// point on the segment s->e closest to p. Degenerate (s == e)
// segments report 0.
func NearestOnSegment(s, e, p Vec2) float32 {
	if s == e {
		return 0
	}
	u := e.Sub(s)
	v := p.Sub(s)
	return Clamp(Dot(v, u)/Dot(u, u), 0, 1)
}
