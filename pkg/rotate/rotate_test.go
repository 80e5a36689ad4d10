package rotate

import (
	"math"
	"testing"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointQuarterTurn(t *testing.T) {
	r := New(math.Pi / 2)
	plane := geom.Plane{Low: 0, High: 1}

	// (0, 1) has angle 0 measured from the high axis; +90 degrees moves it to (1, 0).
	got := r.Point(geom.Point{0, 1}, plane, geom.Center{}, Forward)
	assert.InDelta(t, 1, got[0], 1e-12)
	assert.InDelta(t, 0, got[1], 1e-12)

	got = r.Point(geom.Point{0, 1}, plane, geom.Center{}, Backward)
	assert.InDelta(t, -1, got[0], 1e-12)
	assert.InDelta(t, 0, got[1], 1e-12)
}

func TestPointLeavesOtherAxesAlone(t *testing.T) {
	r := New(DefaultTheta)
	p := geom.Point{1, 2, 3, 4, 5}
	got := r.Point(p, geom.Plane{Low: 1, High: 3}, geom.Center{}, Forward)

	assert.Equal(t, 1.0, got[0])
	assert.Equal(t, 3.0, got[2])
	assert.Equal(t, 5.0, got[4])
	assert.Equal(t, geom.Point{1, 2, 3, 4, 5}, p, "input must not change")
}

func TestPointAboutCenter(t *testing.T) {
	r := New(math.Pi)
	c := geom.Center{X: 10, Y: 10}
	got := r.Point(geom.Point{10, 20, 7}, geom.Plane{Low: 0, High: 1}, c, Forward)
	assert.InDelta(t, 10, got[0], 1e-9)
	assert.InDelta(t, 0, got[1], 1e-9)
	assert.Equal(t, 7.0, got[2])

	// The center itself is a fixed point.
	fixed := r.Point(geom.Point{10, 10, 0}, geom.Plane{Low: 0, High: 1}, c, Forward)
	assert.InDelta(t, 10, fixed[0], 1e-12)
	assert.InDelta(t, 10, fixed[1], 1e-12)
}

func TestRoundTrip(t *testing.T) {
	r := New(DefaultTheta)
	plane := geom.Plane{Low: 0, High: 2}
	c := geom.Center{X: 12.5, Y: -40}
	orig := []geom.Line{
		geom.NewLine(geom.Point{100, 100, 100, -100}, geom.Point{-100, 100, 100, -100}),
		geom.NewLine(geom.Point{3, -7, 11, 0}, geom.Point{0, 0, 0, 0}),
	}

	lines := orig
	for i := 0; i < 37; i++ {
		lines = r.Lines(lines, plane, c, Forward)
	}
	for i := 0; i < 37; i++ {
		lines = r.Lines(lines, plane, c, Backward)
	}

	require.Len(t, lines, len(orig))
	for i := range orig {
		assert.True(t, lines[i].A.Equal(orig[i].A, 1e-9), "line %d A: got %v want %v", i, lines[i].A, orig[i].A)
		assert.True(t, lines[i].B.Equal(orig[i].B, 1e-9), "line %d B: got %v want %v", i, lines[i].B, orig[i].B)
	}
}

func TestNormPreserved(t *testing.T) {
	r := New(DefaultTheta)
	plane := geom.Plane{Low: 1, High: 2}
	p := geom.Point{5, 30, -40}
	for i := 0; i < 100; i++ {
		p = r.Point(p, plane, geom.Center{}, Forward)
		assert.InDelta(t, 50, math.Hypot(p[1], p[2]), 1e-9)
	}
}

func TestLinesDoesNotMutateInput(t *testing.T) {
	r := New(DefaultTheta)
	in := []geom.Line{geom.NewLine(geom.Point{1, 0}, geom.Point{0, 1})}
	out := r.Lines(in, geom.Plane{Low: 0, High: 1}, geom.Center{}, Forward)

	assert.Equal(t, geom.Point{1, 0}, in[0].A)
	assert.NotEqual(t, in[0].A, out[0].A)
}

func TestTracker(t *testing.T) {
	var tr Tracker
	tr.Add(Forward, 2.5)
	tr.Add(Forward, 2.5)
	assert.InDelta(t, 5, tr.Degrees(), 1e-12)

	// Changing direction restarts the total.
	tr.Add(Backward, 2.5)
	assert.InDelta(t, -2.5, tr.Degrees(), 1e-12)

	assert.InDelta(t, -2.5, tr.Release(), 1e-12)
	assert.Equal(t, 0.0, tr.Degrees())

	tr.Add(Backward, 2.5)
	assert.InDelta(t, -2.5, tr.Degrees(), 1e-12)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.InDelta(t, 2.5, New(DefaultTheta).Degrees(), 1e-12)
}
