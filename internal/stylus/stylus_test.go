package stylus

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"strokemodel/internal/geom"
)

const tol = 1e-5

func closeTo(a, b float32) bool {
	d := a - b
	return d > -tol && d < tol
}

func TestQueryEmptyReportsUnknownDefault(t *testing.T) {
	Convey("An empty modeler reports the unknown-pressure default of 1.0 everywhere", t, func() {
		m := New(10)
		So(m.Query(geom.Vec2{X: 0, Y: 0}), ShouldEqual, float32(1.0))
		So(m.Query(geom.Vec2{X: -5, Y: 3}), ShouldEqual, float32(1.0))
	})
}

func TestQuerySingleSample(t *testing.T) {
	Convey("A single recorded sample's pressure answers every query regardless of position", t, func() {
		m := New(10)
		m.Update(Sample{Pos: geom.Vec2{X: 0, Y: 0}, Pressure: 0.75})
		So(m.Query(geom.Vec2{X: 0, Y: 0}), ShouldEqual, float32(0.75))
		So(m.Query(geom.Vec2{X: 1, Y: 1}), ShouldEqual, float32(0.75))
	})
}

func TestQueryMultipleSamplesInterpolates(t *testing.T) {
	Convey("With several samples, pressure is interpolated along the nearest segment", t, func() {
		m := New(10)
		m.Update(Sample{Pos: geom.Vec2{X: 0.5, Y: 1.5}, Pressure: 0.3})
		m.Update(Sample{Pos: geom.Vec2{X: 2.0, Y: 1.5}, Pressure: 0.6})
		m.Update(Sample{Pos: geom.Vec2{X: 3.0, Y: 3.5}, Pressure: 0.8})
		m.Update(Sample{Pos: geom.Vec2{X: 3.5, Y: 4.0}, Pressure: 0.2})

		So(closeTo(m.Query(geom.Vec2{X: 0.0, Y: 2.0}), 0.3), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 1.0, Y: 2.0}), 0.4), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 2.0, Y: 1.5}), 0.6), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 2.5, Y: 1.875}), 0.65), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 2.5, Y: 3.125}), 0.75), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 2.5, Y: 4.0}), 0.8), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 3.0, Y: 4.0}), 0.5), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 4.0, Y: 4.0}), 0.2), ShouldBeTrue)
	})
}

func TestQueryStaleSamplesAreEvicted(t *testing.T) {
	Convey("Samples older than the window size no longer influence queries", t, func() {
		m := New(10)
		for _, s := range []Sample{
			{geom.Vec2{X: 1, Y: 1}, 0.6},
			{geom.Vec2{X: -1, Y: 2}, 0.3},
			{geom.Vec2{X: -4, Y: 0}, 0.9},
			{geom.Vec2{X: -6, Y: -3}, 0.4},
			{geom.Vec2{X: -5, Y: -5}, 0.3},
			{geom.Vec2{X: -3, Y: -4}, 0.6},
			{geom.Vec2{X: -6, Y: -7}, 0.9},
			{geom.Vec2{X: -9, Y: -8}, 0.8},
			{geom.Vec2{X: -11, Y: -5}, 0.2},
			{geom.Vec2{X: -10, Y: -2}, 0.7},
		} {
			m.Update(s)
		}

		So(closeTo(m.Query(geom.Vec2{X: 2, Y: 0}), 0.6), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 1, Y: 3.5}), 0.45), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: -3, Y: 17.0 / 6.0}), 0.5), ShouldBeTrue)

		// an 11th sample pushes the window past capacity and evicts the
		// first (1,1)/0.6 sample.
		m.Update(Sample{Pos: geom.Vec2{X: -8, Y: 0}, Pressure: 0.6})

		So(closeTo(m.Query(geom.Vec2{X: 2, Y: 0}), 0.3), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 1, Y: 3.5}), 0.3), ShouldBeTrue)

		m.Update(Sample{Pos: geom.Vec2{X: -8, Y: 0}, Pressure: 0.6})

		So(closeTo(m.Query(geom.Vec2{X: 2, Y: 0}), 0.9), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 1, Y: 3.5}), 0.9), ShouldBeTrue)
	})
}

func TestQueryAfterReset(t *testing.T) {
	Convey("Reset discards history and reverts to the unknown default", t, func() {
		m := New(10)
		m.Update(Sample{Pos: geom.Vec2{X: 4, Y: 5}, Pressure: 0.4})
		m.Update(Sample{Pos: geom.Vec2{X: 7, Y: 8}, Pressure: 0.1})
		So(closeTo(m.Query(geom.Vec2{X: 10, Y: 12}), 0.1), ShouldBeTrue)

		m.Reset(10)
		So(m.Query(geom.Vec2{X: 10, Y: 12}), ShouldEqual, float32(1.0))

		m.Update(Sample{Pos: geom.Vec2{X: -1, Y: 4}, Pressure: 0.4})
		So(closeTo(m.Query(geom.Vec2{X: 6, Y: 7}), 0.4), ShouldBeTrue)

		m.Update(Sample{Pos: geom.Vec2{X: -3, Y: 0}, Pressure: 0.7})
		So(closeTo(m.Query(geom.Vec2{X: -2, Y: 2}), 0.55), ShouldBeTrue)
		So(closeTo(m.Query(geom.Vec2{X: 0, Y: 5}), 0.4), ShouldBeTrue)
	})
}
