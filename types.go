// Package strokemodel turns a stream of raw pointer/stylus events into
// a smoothed, upsampled sequence of modeled stroke samples suitable
// for rendering ink, plus a short forward prediction for latency
// compensation.
package strokemodel

import "strokemodel/internal/geom"

// EventKind identifies the phase of a raw input event within a stroke.
type EventKind int

const (
	// Down begins a new stroke. Exactly one Down starts each stroke.
	Down EventKind = iota
	// Move extends a stroke in progress.
	Move
	// Up ends a stroke in progress.
	Up
)

func (k EventKind) String() string {
	switch k {
	case Down:
		return "Down"
	case Move:
		return "Move"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// InputEvent is a single raw pointer/stylus observation.
type InputEvent struct {
	Kind     EventKind
	Pos      geom.Vec2
	Time     float64
	Pressure float32
}

// Result is a single modeled output sample.
type Result struct {
	Pos      geom.Vec2
	Velocity geom.Vec2
	Accel    geom.Vec2
	Time     float64
	Pressure float32
}
