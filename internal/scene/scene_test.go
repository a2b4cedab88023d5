package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelarde/corazon/internal/particle"
)

func TestProjectOriginToScreenCenter(t *testing.T) {
	cam := NewCamera(800, 600)
	vp := cam.ViewProjection()

	x, y, depth, ok := cam.Project(vp, mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 400, float64(x), 0.5)
	assert.InDelta(t, 300, float64(y), 0.5)
	assert.Greater(t, float64(depth), 0.0)
}

func TestRayThroughCenterPassesOrigin(t *testing.T) {
	cam := NewCamera(800, 600)

	origin, dir := cam.Ray(mgl32.Vec2{0, 0})
	assert.InDelta(t, 1.0, float64(dir.Len()), 1e-4)

	// Perpendicular distance of the world origin to the ray.
	v := mgl32.Vec3{}.Sub(origin)
	perp := v.Sub(dir.Mul(v.Dot(dir)))
	assert.Less(t, float64(perp.Len()), 1e-2)
}

func TestNDCMapsCorners(t *testing.T) {
	cam := NewCamera(800, 600)

	assert.Equal(t, mgl32.Vec2{-1, 1}, cam.NDC(0, 0))
	assert.Equal(t, mgl32.Vec2{1, -1}, cam.NDC(800, 600))
	assert.Equal(t, mgl32.Vec2{0, 0}, cam.NDC(400, 300))
}

func TestResizeChangesAspect(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Resize(1200, 400)
	w, h := cam.Size()
	assert.Equal(t, 1200, w)
	assert.Equal(t, 400, h)

	// Degenerate sizes are ignored.
	cam.Resize(0, -5)
	w, h = cam.Size()
	assert.Equal(t, 1200, w)
	assert.Equal(t, 400, h)
}

func poolAt(positions ...mgl32.Vec3) *particle.Pool {
	pool := &particle.Pool{}
	for i, pos := range positions {
		pool.Interactive = append(pool.Interactive, particle.Interactive{
			Pos:     pos,
			Message: i,
		})
	}
	return pool
}

func TestResolveSingleParticle(t *testing.T) {
	cam := NewCamera(800, 600)
	pool := poolAt(mgl32.Vec3{0.3, 0, 0})

	hit, ok := Resolve(mgl32.Vec2{0, 0}, cam, pool)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Message)
	assert.Equal(t, pool.Interactive[0].Pos, hit.World)
}

func TestResolvePrefersSmallestRayDistance(t *testing.T) {
	cam := NewCamera(800, 600)
	// Both within threshold of the center ray; the second sits closer
	// to the ray axis and must win regardless of order.
	pool := poolAt(mgl32.Vec3{0.8, 0, 0}, mgl32.Vec3{0.2, 0, 0})

	hit, ok := Resolve(mgl32.Vec2{0, 0}, cam, pool)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Message)
}

func TestResolveMissOutsideThreshold(t *testing.T) {
	cam := NewCamera(800, 600)
	pool := poolAt(mgl32.Vec3{30, 0, 0})

	_, ok := Resolve(mgl32.Vec2{0, 0}, cam, pool)
	assert.False(t, ok)
}

func TestResolveIgnoresParticlesBehindCamera(t *testing.T) {
	cam := NewCamera(800, 600)
	origin, dir := cam.Ray(mgl32.Vec2{0, 0})

	// On the ray axis but behind its origin.
	pool := poolAt(origin.Sub(dir.Mul(5)))

	_, ok := Resolve(mgl32.Vec2{0, 0}, cam, pool)
	assert.False(t, ok)
}

func TestResolveNeverTestsBackground(t *testing.T) {
	cam := NewCamera(800, 600)
	pool := &particle.Pool{
		Background: []particle.Background{{Pos: mgl32.Vec3{0, 0, 0}}},
	}

	_, ok := Resolve(mgl32.Vec2{0, 0}, cam, pool)
	assert.False(t, ok)
}
