// Package stylus implements the stylus state modeler: a bounded history
// of raw input samples queried by position to interpolate pressure (and
// any other per-sample stylus state) at an arbitrary output point.
package stylus

import "strokemodel/internal/geom"

// Sample is one raw input observation: its position and the pressure
// reported at that position. A missing pressure reading is represented
// by the caller as 1.0, the modeler's "unknown" default.
type Sample struct {
	Pos      geom.Vec2
	Pressure float32
}

// Modeler holds the trailing window of raw samples used to interpolate
// stylus state at query time.
type Modeler struct {
	maxSamples int
	samples    []Sample
}

// New creates a stylus state modeler retaining at most maxSamples raw
// inputs.
func New(maxSamples int) *Modeler {
	if maxSamples < 1 {
		maxSamples = 1
	}
	return &Modeler{maxSamples: maxSamples, samples: make([]Sample, 0, maxSamples+1)}
}

// Update records a new raw input sample, evicting the oldest sample
// once the window exceeds maxSamples.
func (m *Modeler) Update(s Sample) {
	m.samples = append(m.samples, s)
	if len(m.samples) > m.maxSamples {
		m.samples = m.samples[1:]
	}
}

// Reset discards all recorded samples and reconfigures the window
// size for subsequent updates.
func (m *Modeler) Reset(maxSamples int) {
	if maxSamples < 1 {
		maxSamples = 1
	}
	m.maxSamples = maxSamples
	m.samples = m.samples[:0]
}

// Query interpolates the pressure at pos from the recorded samples.
// With no samples it reports the unknown default of 1.0; with one
// sample it reports that sample's pressure regardless of pos; with two
// or more it finds the segment whose nearest point to pos is closest
// overall (ties broken by the earliest-indexed segment, since distance
// must strictly improve to replace the running best) and linearly
// interpolates pressure along that segment's parameter.
func (m *Modeler) Query(pos geom.Vec2) float32 {
	switch len(m.samples) {
	case 0:
		return 1.0
	case 1:
		return m.samples[0].Pressure
	}

	best := float32(-1)
	bestDist := float32(-1)
	startPressure, endPressure := float32(1), float32(1)

	for i := 0; i < len(m.samples)-1; i++ {
		start := m.samples[i]
		end := m.samples[i+1]

		r := geom.NearestOnSegment(start.Pos, end.Pos, pos)
		closest := geom.Interp2(start.Pos, end.Pos, r)
		d := geom.Dist(pos, closest)

		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = r
			startPressure = start.Pressure
			endPressure = end.Pressure
		}
	}

	return geom.Interp(startPressure, endPressure, best)
}
