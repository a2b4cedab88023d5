// Package heart generates 3D points on and around the classic heart
// parametric curve. The curve is flat; every sampled point gets an
// independent random depth so the outline reads as a volume.
package heart

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// depthSpread is the half-range of the random z component.
const depthSpread = 1.2

// Point returns a point on the heart curve for t in [0, 2π), scaled.
// x and y are deterministic in t; z is sampled uniformly from
// [-depthSpread, depthSpread] on every call, so repeated calls with the
// same t differ in depth. That is intentional.
func Point(t, scale float64) mgl32.Vec3 {
	s := math.Sin(t)
	x := 16 * s * s * s
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	z := (rand.Float64()*2 - 1) * depthSpread
	return mgl32.Vec3{
		float32(x * scale),
		float32(y * scale),
		float32(z),
	}
}

// OutlineTargets traces the outline once with n evenly spaced curve
// parameters, t = 2πi/n. Spacing is uniform in t, not in arc length;
// point density varies with curve speed. A small random jitter on x and
// y keeps the line from looking mathematically crisp; z already has its
// own spread.
func OutlineTargets(n int, scale, jitter float64) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * 2 * math.Pi
		p := Point(t, scale)
		p[0] += float32((rand.Float64()*2 - 1) * jitter)
		p[1] += float32((rand.Float64()*2 - 1) * jitter)
		out[i] = p
	}
	return out
}

// HaloTargets samples n points loosely around the curve: random t, a
// loosened scale, and large offsets on all three axes. The result is a
// diffuse cloud hugging the shape rather than sitting on it.
func HaloTargets(n int, scale, spread float64) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		t := rand.Float64() * 2 * math.Pi
		s := scale * (0.7 + rand.Float64()*0.6)
		p := Point(t, s)
		p[0] += float32((rand.Float64()*2 - 1) * spread)
		p[1] += float32((rand.Float64()*2 - 1) * spread)
		p[2] += float32((rand.Float64()*2 - 1) * spread)
		out[i] = p
	}
	return out
}
