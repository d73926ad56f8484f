// Package position implements the spring-mass-damper position modeler:
// the core integrator that turns a wobble-smoothed anchor position into
// a trail of physically-damped output positions, plus the end-of-stroke
// catch-up iterator that walks the output toward the final anchor until
// it is within a stopping distance or an iteration cap is reached.
package position

import "strokemodel/internal/geom"

// State is the integrator's full state at a point in time: the output
// position, its velocity and acceleration, and the time it was reached.
type State struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Accel geom.Vec2
	Time  float64
}

// Modeler advances a mass on a spring anchored at the (wobble-smoothed)
// raw input position, damped by drag. K is the spring-mass constant,
// D is the drag constant; both are strictly positive. The spring term
// is divided by K (a stiffer, i.e. smaller, K pulls harder), matching
// the reference model's units.
type Modeler struct {
	k, d  float32
	state State
}

// New creates a position modeler seeded at pos, time with zero velocity
// and acceleration.
func New(k, d float32, pos geom.Vec2, time float64) *Modeler {
	return &Modeler{k: k, d: d, state: State{Pos: pos, Time: time}}
}

// State returns the modeler's current state.
func (m *Modeler) State() State { return m.state }

// Reset reseeds the modeler at pos, time with zero velocity and
// acceleration, discarding all history.
func (m *Modeler) Reset(pos geom.Vec2, time float64) {
	m.state = State{Pos: pos, Time: time}
}

// Update advances the modeler by one semi-implicit Euler step toward
// anchor, reaching newTime. The update order is normative:
// acceleration (from the current position and velocity), then velocity
// (from the acceleration just computed), then position (from the
// velocity just computed).
func (m *Modeler) Update(anchor geom.Vec2, newTime float64) State {
	dt := float32(newTime - m.state.Time)

	toAnchor := anchor.Sub(m.state.Pos)
	spring := geom.Vec2{X: toAnchor.X / m.k, Y: toAnchor.Y / m.k}
	drag := m.state.Vel.Scale(m.d)
	accel := spring.Sub(drag)

	vel := m.state.Vel.Add(accel.Scale(dt))
	pos := m.state.Pos.Add(vel.Scale(dt))

	m.state = State{Pos: pos, Vel: vel, Accel: accel, Time: newTime}
	return m.state
}

// UpdateAlongLinearPath upsamples the straight-line segment from
// startPos/startTime to endPos/endTime into nSteps equal sub-steps and
// feeds each one through Update in turn, returning every intermediate
// state including the final one. Used to raise a coarse input rate up
// to the configured minimum output rate.
func (m *Modeler) UpdateAlongLinearPath(startPos geom.Vec2, startTime float64, endPos geom.Vec2, endTime float64, nSteps int) []State {
	if nSteps < 1 {
		return nil
	}
	out := make([]State, 0, nSteps)
	for i := 1; i <= nSteps; i++ {
		frac := float32(i) / float32(nSteps)
		anchor := geom.Vec2{
			X: startPos.X + frac*(endPos.X-startPos.X),
			Y: startPos.Y + frac*(endPos.Y-startPos.Y),
		}
		t := startTime + float64(frac)*(endTime-startTime)
		out = append(out, m.Update(anchor, t))
	}
	return out
}

// ModelEndOfStroke models the catch-up phase at the end of a stroke
// without permanently mutating the modeler: its state is saved up
// front and restored on every exit path. It repeatedly steps toward
// anchor by delta, halving delta whenever a step overshoots anchor
// (detected when anchor's nearest point on the segment from the
// previous position to the candidate falls strictly before the
// candidate), for at most
// maxIterations steps, stopping early once consecutive positions or
// the candidate-to-anchor distance fall below stopDistance.
func (m *Modeler) ModelEndOfStroke(anchor geom.Vec2, delta float64, maxIterations int, stopDistance float32) []State {
	initial := m.state
	out := make([]State, 0, maxIterations)

	for i := 0; i < maxIterations; i++ {
		previous := m.state
		candidate := m.Update(anchor, previous.Time+delta)

		if geom.Dist(previous.Pos, candidate.Pos) < stopDistance {
			m.state = initial
			return out
		}

		if geom.NearestOnSegment(previous.Pos, candidate.Pos, anchor) < 1.0 {
			delta *= 0.5
			m.state = previous
			continue
		}

		out = append(out, candidate)

		if geom.Dist(candidate.Pos, anchor) < stopDistance {
			m.state = initial
			return out
		}
	}

	m.state = initial
	return out
}
