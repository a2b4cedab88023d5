package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mvelarde/corazon/internal/config"
	"github.com/mvelarde/corazon/internal/particle"
)

// Hit identifies the interactive particle a pointer ray selected.
type Hit struct {
	Message int
	// World is the particle's position at hit time. It accompanies
	// the opened-message event; the on-screen marker tracks the live
	// particle position instead, so it follows Next/Previous.
	World mgl32.Vec3
}

// Resolve casts a ray through the pointer and finds the interactive
// particle closest to the ray axis, provided it is within the hit
// threshold and in front of the camera. Background particles are never
// tested, so decoration cannot intercept clicks. Among candidates the
// smallest perpendicular ray distance wins; strict comparison means
// exact ties fall to the earlier index. Returns false when nothing is
// in range, which is a normal result, not an error.
func Resolve(ndc mgl32.Vec2, cam *Camera, pool *particle.Pool) (Hit, bool) {
	origin, dir := cam.Ray(ndc)

	best := Hit{}
	bestDist := float32(config.HitThreshold)
	found := false

	for i := range pool.Interactive {
		p := &pool.Interactive[i]
		v := p.Pos.Sub(origin)
		along := v.Dot(dir)
		if along <= 0 {
			continue
		}
		perp := v.Sub(dir.Mul(along))
		d := perp.Len()
		if d < bestDist {
			bestDist = d
			best = Hit{Message: p.Message, World: p.Pos}
			found = true
		}
	}
	return best, found
}
