// Package smoother implements the wobble smoother: a sliding-window,
// time-keyed moving average that damps quantization noise at low
// stroke speeds without blurring fast strokes.
package smoother

import "strokemodel/internal/geom"

// sample is a single entry in the wobble ring: the raw position, its
// time-weighted contribution, and the distance/duration since the
// previous sample.
type sample struct {
	pos         geom.Vec2
	weightedPos geom.Vec2
	distance    float32
	duration    float64
	time        float64
}

// Smoother holds the trailing window of samples and the running sums
// over it. It is a circular buffer: samples are only ever appended at
// the back and evicted from the front, so a ring indexed by
// (start, count) gives O(1) push/evict; the storage is reallocated
// (doubled) only when a push finds the ring full.
type Smoother struct {
	timeout float64
	floor   float32
	ceiling float32

	ring  []sample
	start int
	count int

	weightedPosSum geom.Vec2
	durationSum    float64
	distanceSum    float32
}

// New creates a wobble smoother. capacity should be
// ceil(2 * min_output_rate * timeout) per the stroke modeler's memory
// bound; the ring grows past it only if that bound is ever exceeded.
func New(capacity int, timeout float64, floor, ceiling float32) *Smoother {
	if capacity < 1 {
		capacity = 1
	}
	return &Smoother{
		timeout: timeout,
		floor:   floor,
		ceiling: ceiling,
		ring:    make([]sample, capacity),
	}
}

func (s *Smoother) at(i int) sample {
	return s.ring[(s.start+i)%len(s.ring)]
}

func (s *Smoother) pushBack(v sample) {
	if s.count == len(s.ring) {
		// Grow rather than drop: the caller-supplied capacity is a
		// sizing hint, not a hard cap (spec's bound assumes events
		// arrive no faster than the ring was sized for).
		grown := make([]sample, len(s.ring)*2)
		for i := 0; i < s.count; i++ {
			grown[i] = s.at(i)
		}
		s.ring = grown
		s.start = 0
	}
	s.ring[(s.start+s.count)%len(s.ring)] = v
	s.count++
}

func (s *Smoother) popFront() sample {
	v := s.ring[s.start]
	s.start = (s.start + 1) % len(s.ring)
	s.count--
	return v
}

func (s *Smoother) front() sample { return s.ring[s.start] }
func (s *Smoother) back() sample  { return s.at(s.count - 1) }

// Update feeds a raw event position at the given time and returns the
// smoothed anchor position to use downstream.
func (s *Smoother) Update(pos geom.Vec2, time float64) geom.Vec2 {
	if s.count == 0 {
		s.pushBack(sample{pos: pos, time: time})
		return pos
	}

	prev := s.back()
	duration := time - prev.time
	weighted := pos.Scale(float32(duration))
	distance := geom.Dist(pos, prev.pos)

	s.pushBack(sample{
		pos:         pos,
		weightedPos: weighted,
		distance:    distance,
		duration:    duration,
		time:        time,
	})
	s.weightedPosSum = s.weightedPosSum.Add(weighted)
	s.distanceSum += distance
	s.durationSum += duration

	for s.count > 0 && s.front().time < time-s.timeout {
		front := s.popFront()
		s.weightedPosSum = s.weightedPosSum.Sub(front.weightedPos)
		s.distanceSum -= front.distance
		s.durationSum -= front.duration
	}

	if s.durationSum < 1e-12 {
		return pos
	}

	avgPos := s.weightedPosSum.Scale(float32(1 / s.durationSum))
	avgSpeed := s.distanceSum / float32(s.durationSum)
	t := geom.Normalize01(s.floor, s.ceiling, avgSpeed)
	return geom.Interp2(avgPos, pos, t)
}
