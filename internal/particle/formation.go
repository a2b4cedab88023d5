package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mvelarde/corazon/internal/config"
)

// movedEpsilon is the squared step length below which a particle is
// considered settled for dirty-flag purposes.
const movedEpsilon = 1e-10

// Engine advances every particle one smoothing step per tick. There is
// no velocity state: each particle moves a fraction of its remaining
// distance toward the frame target, so convergence is asymptotic and
// frame targets can change freely.
type Engine struct {
	noise opensimplex.Noise
}

func NewEngine(seed int64) *Engine {
	return &Engine{noise: opensimplex.New(seed)}
}

// Advance computes each particle's frame target and moves it. While
// idle the target is the start position plus a per-index oscillation so
// the cloud breathes without pulsing in unison. Once formed,
// interactive particles head for their fixed outline targets while
// background particles keep drifting on a slow noise orbit around
// theirs. Sets pool.Dirty when anything moved.
func (e *Engine) Advance(pool *Pool, formed bool, elapsed float64) {
	moved := false

	for i := range pool.Interactive {
		p := &pool.Interactive[i]
		var target mgl32.Vec3
		if formed {
			target = p.Target
		} else {
			target = driftTarget(p.Start, i, elapsed)
		}
		if step(&p.Pos, target, rate(formed, config.FormedRate, i)) {
			moved = true
		}
	}

	for i := range pool.Background {
		p := &pool.Background[i]
		var target mgl32.Vec3
		if formed {
			target = e.orbitTarget(p.Target, i, elapsed)
		} else {
			target = driftTarget(p.Start, i, elapsed)
		}
		if step(&p.Pos, target, rate(formed, config.FormedBackgroundRate, i)) {
			moved = true
		}
	}

	if moved {
		pool.Dirty = true
	}
}

// step moves pos a fraction k of the remaining distance toward target.
// Reports whether the move was large enough to matter.
func step(pos *mgl32.Vec3, target mgl32.Vec3, k float32) bool {
	delta := target.Sub(*pos).Mul(k)
	*pos = pos.Add(delta)
	return delta.LenSqr() > movedEpsilon
}

// rate picks the smoothing fraction: snappy while idle, calm once
// formed, with a deterministic per-index variation so the ensemble
// never moves as a rigid body.
func rate(formed bool, formedBase float64, i int) float32 {
	base := config.IdleRate
	if formed {
		base = formedBase
	}
	v := math.Sin(float64(i) * 12.9898)
	return float32(base * (1 + config.RateVariation*v))
}

// driftTarget is the idle wander center: the start position perturbed
// by phase-offset sine waves on each axis.
func driftTarget(start mgl32.Vec3, i int, elapsed float64) mgl32.Vec3 {
	phase := float64(i) * 0.37
	t := elapsed * config.DriftSpeed
	return mgl32.Vec3{
		start[0] + float32(math.Sin(t+phase)*config.DriftAmplitude),
		start[1] + float32(math.Cos(t*0.8+phase*1.31)*config.DriftAmplitude),
		start[2] + float32(math.Sin(t*0.6+phase*0.73)*config.DriftAmplitude),
	}
}

// orbitTarget keeps formed background particles in slow ambient motion
// around their halo targets using three decorrelated noise samples.
func (e *Engine) orbitTarget(target mgl32.Vec3, i int, elapsed float64) mgl32.Vec3 {
	t := elapsed * config.OrbitSpeed
	id := float64(i) * 0.113
	return mgl32.Vec3{
		target[0] + float32(e.noise.Eval3(id, 0, t)*config.OrbitAmplitude),
		target[1] + float32(e.noise.Eval3(id, 7.5, t)*config.OrbitAmplitude),
		target[2] + float32(e.noise.Eval3(id, 19.2, t)*config.OrbitAmplitude),
	}
}
