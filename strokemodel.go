package strokemodel

import (
	"math"

	"strokemodel/internal/geom"
	"strokemodel/internal/position"
	"strokemodel/internal/smoother"
	"strokemodel/internal/stylus"
)

// inStrokeState bundles the triplet that only ever exists together:
// once a Down event starts a stroke, all three fields are populated;
// once Up ends it, all three go away at once. A nil *inStrokeState
// means Idle; non-nil means InStroke.
type inStrokeState struct {
	lastRawEvent        InputEvent
	lastCorrectedAnchor geom.Vec2
	positionModeler     *position.Modeler
}

// StrokeModeler is the orchestrator: an event-driven state machine
// wired to the wobble smoother, position modeler, and stylus state
// modeler. It is single-owner and non-blocking: no instance is safe for
// concurrent use.
type StrokeModeler struct {
	params   Params
	smoother *smoother.Smoother
	stylus   *stylus.Modeler
	stroke   *inStrokeState
}

// NewStrokeModeler validates params and constructs an idle modeler.
func NewStrokeModeler(params Params) (*StrokeModeler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &StrokeModeler{
		params:   params,
		smoother: newSmootherFor(params),
		stylus:   stylus.New(params.StylusStateModelerMaxInputSamples),
	}, nil
}

func newSmootherFor(params Params) *smoother.Smoother {
	capacity := int(math.Ceil(2 * params.SamplingMinOutputRate * params.WobbleSmootherTimeout))
	return smoother.New(capacity, params.WobbleSmootherTimeout, params.WobbleSmootherSpeedFloor, params.WobbleSmootherSpeedCeiling)
}

// Reset clears any in-progress stroke, keeping the current parameters.
func (m *StrokeModeler) Reset() {
	m.smoother = newSmootherFor(m.params)
	m.stylus.Reset(m.params.StylusStateModelerMaxInputSamples)
	m.stroke = nil
}

// ResetWithParams validates params, then resets with them in effect.
func (m *StrokeModeler) ResetWithParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	m.params = params
	m.Reset()
	return nil
}

// Update feeds one raw input event through the state machine, emitting
// the batch of modeled results it produces. On error the modeler's
// state is unchanged.
func (m *StrokeModeler) Update(event InputEvent) ([]Result, error) {
	if m.stroke == nil {
		switch event.Kind {
		case Down:
			return m.beginStroke(event), nil
		case Move:
			return nil, ErrUnexpectedMove
		default:
			return nil, ErrUnexpectedUp
		}
	}

	switch event.Kind {
	case Down:
		return nil, ErrUnexpectedDown
	case Up:
		return m.endStroke(event), nil
	default:
		return m.extendStroke(event), nil
	}
}

func (m *StrokeModeler) beginStroke(event InputEvent) []Result {
	anchor := m.smoother.Update(event.Pos, event.Time)
	pm := position.New(m.params.PositionModelerSpringMassConstant, m.params.PositionModelerDragConstant, anchor, event.Time)
	m.stylus.Reset(m.params.StylusStateModelerMaxInputSamples)
	m.stylus.Update(stylus.Sample{Pos: event.Pos, Pressure: event.Pressure})

	m.stroke = &inStrokeState{
		lastRawEvent:        event,
		lastCorrectedAnchor: anchor,
		positionModeler:     pm,
	}

	return []Result{{
		Pos:      anchor,
		Velocity: geom.Vec2{},
		Accel:    geom.Vec2{},
		Time:     event.Time,
		Pressure: event.Pressure,
	}}
}

// upsampleSteps returns the upsampled position states for the segment
// from the previous anchor to this event's corrected position, and the
// corrected position itself.
func (m *StrokeModeler) upsampleSteps(event InputEvent) (geom.Vec2, []position.State) {
	m.stylus.Update(stylus.Sample{Pos: event.Pos, Pressure: event.Pressure})

	tLast := m.stroke.lastRawEvent.Time
	tNew := event.Time
	// n is the upsampling step count; ceil(0) == 0 when the caller
	// feeds a duplicate timestamp, which is exactly the condition the
	// end-of-stroke handler's synthetic-result fallback exists for.
	n := int(math.Ceil((tNew - tLast) * m.params.SamplingMinOutputRate))

	pStart := m.stroke.lastCorrectedAnchor
	pEnd := m.smoother.Update(event.Pos, event.Time)

	steps := m.stroke.positionModeler.UpdateAlongLinearPath(pStart, tLast, pEnd, tNew, n)
	return pEnd, steps
}

func (m *StrokeModeler) attachPressure(states []position.State) []Result {
	out := make([]Result, len(states))
	for i, s := range states {
		out[i] = Result{
			Pos:      s.Pos,
			Velocity: s.Vel,
			Accel:    s.Accel,
			Time:     s.Time,
			Pressure: m.stylus.Query(s.Pos),
		}
	}
	return out
}

func (m *StrokeModeler) extendStroke(event InputEvent) []Result {
	pEnd, steps := m.upsampleSteps(event)
	results := m.attachPressure(steps)

	m.stroke.lastRawEvent = event
	m.stroke.lastCorrectedAnchor = pEnd
	return results
}

func (m *StrokeModeler) endStroke(event InputEvent) []Result {
	pEnd, steps := m.upsampleSteps(event)
	results := m.attachPressure(steps)

	delta := 1 / m.params.SamplingMinOutputRate
	catchup := m.stroke.positionModeler.ModelEndOfStroke(pEnd, delta, m.params.SamplingEndOfStrokeMaxIterations, m.params.SamplingEndOfStrokeStoppingDistance)
	results = append(results, m.attachPressure(catchup)...)

	if len(results) == 0 {
		final := m.stroke.positionModeler.State()
		results = []Result{{
			Pos:      final.Pos,
			Velocity: final.Vel,
			Accel:    final.Accel,
			Time:     final.Time + 1/m.params.SamplingMinOutputRate,
			Pressure: m.stylus.Query(final.Pos),
		}}
	}

	m.stroke = nil
	return results
}

// Predict extrapolates from the current in-progress state toward the
// last raw input's position without mutating the modeler, failing if
// no stroke is in progress.
func (m *StrokeModeler) Predict() ([]Result, error) {
	if m.stroke == nil {
		return nil, ErrNoStrokeInProgress
	}
	delta := 1 / m.params.SamplingMinOutputRate
	catchup := m.stroke.positionModeler.ModelEndOfStroke(m.stroke.lastRawEvent.Pos, delta, m.params.SamplingEndOfStrokeMaxIterations, m.params.SamplingEndOfStrokeStoppingDistance)
	return m.attachPressure(catchup), nil
}
