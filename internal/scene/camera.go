// Package scene owns the orbit camera and the pointer-to-particle hit
// resolver.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mvelarde/corazon/internal/config"
)

// Camera orbits the origin on a sphere: azimuth/elevation pick the
// direction, distance the radius. The heart sits at the origin.
type Camera struct {
	Azimuth   float64
	Elevation float64
	Distance  float64

	width  int
	height int
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Azimuth:   math.Pi / 2,
		Elevation: 0.12,
		Distance:  config.CameraDistance,
		width:     width,
		height:    height,
	}
}

// Resize updates the projection aspect after a viewport change.
func (c *Camera) Resize(width, height int) {
	if width > 0 && height > 0 {
		c.width = width
		c.height = height
	}
}

func (c *Camera) Size() (int, int) {
	return c.width, c.height
}

// Orbit rotates the camera by a mouse-drag delta. Elevation is clamped
// short of the poles to keep the up vector valid.
func (c *Camera) Orbit(dx, dy float64) {
	c.Azimuth -= dx * 0.005
	c.Elevation += dy * 0.005
	if c.Elevation > 1.4 {
		c.Elevation = 1.4
	}
	if c.Elevation < -1.4 {
		c.Elevation = -1.4
	}
}

// Eye is the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.Distance * math.Cos(c.Azimuth) * math.Cos(c.Elevation)),
		float32(c.Distance * math.Sin(c.Elevation)),
		float32(c.Distance * math.Sin(c.Azimuth) * math.Cos(c.Elevation)),
	}
}

// ViewProjection builds the combined perspective * look-at matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(
		mgl32.DegToRad(config.CameraFOV),
		float32(c.width)/float32(c.height),
		config.CameraNear,
		config.CameraFar,
	)
	view := mgl32.LookAtV(c.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a world point to pixel coordinates. depth is the
// distance-like clip w, usable for size attenuation; ok is false for
// points behind the camera.
func (c *Camera) Project(vp mgl32.Mat4, p mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float32(c.width)
	y = (1 - ndcY) / 2 * float32(c.height)
	return x, y, clip.W(), true
}

// Ray unprojects a pointer in normalized device coordinates into a
// world-space ray. dir is unit length.
func (c *Camera) Ray(ndc mgl32.Vec2) (origin, dir mgl32.Vec3) {
	inv := c.ViewProjection().Inv()

	near := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})
	nearW := near.Vec3().Mul(1 / near.W())
	farW := far.Vec3().Mul(1 / far.W())

	return nearW, farW.Sub(nearW).Normalize()
}

// NDC converts pixel coordinates to normalized device coordinates in
// [-1,1]² with y up.
func (c *Camera) NDC(px, py int) mgl32.Vec2 {
	return mgl32.Vec2{
		2*float32(px)/float32(c.width) - 1,
		1 - 2*float32(py)/float32(c.height),
	}
}
