package heart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curveXY(t, scale float64) (float64, float64) {
	s := math.Sin(t)
	x := 16 * s * s * s * scale
	y := (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) * scale
	return x, y
}

func TestPointLiesOnCurve(t *testing.T) {
	for _, tt := range []float64{0, 0.5, math.Pi / 2, math.Pi, 4.2, 2*math.Pi - 0.01} {
		p := Point(tt, 2.0)
		x, y := curveXY(tt, 2.0)
		assert.InDelta(t, x, float64(p.X()), 1e-3)
		assert.InDelta(t, y, float64(p.Y()), 1e-3)
		assert.LessOrEqual(t, math.Abs(float64(p.Z())), depthSpread)
	}
}

func TestOutlineTargetsSpacingAndJitter(t *testing.T) {
	const (
		n      = 24
		scale  = 1.5
		jitter = 0.4
	)
	targets := OutlineTargets(n, scale, jitter)
	require.Len(t, targets, n)

	for i, p := range targets {
		tt := float64(i) / n * 2 * math.Pi
		x, y := curveXY(tt, scale)
		assert.InDelta(t, x, float64(p.X()), jitter+1e-3, "x of target %d", i)
		assert.InDelta(t, y, float64(p.Y()), jitter+1e-3, "y of target %d", i)
		assert.LessOrEqual(t, math.Abs(float64(p.Z())), depthSpread)
	}
}

func TestHaloTargetsBounded(t *testing.T) {
	const (
		n      = 200
		scale  = 1.0
		spread = 8.0
	)
	targets := HaloTargets(n, scale, spread)
	require.Len(t, targets, n)

	// Loosest curve extent plus the spread bounds every sample.
	maxX := 16*scale*1.3 + spread
	maxY := 17*scale*1.3 + spread
	maxZ := depthSpread + spread
	for _, p := range targets {
		assert.LessOrEqual(t, math.Abs(float64(p.X())), maxX+1e-3)
		assert.LessOrEqual(t, math.Abs(float64(p.Y())), maxY+1e-3)
		assert.LessOrEqual(t, math.Abs(float64(p.Z())), maxZ+1e-3)
	}
}
