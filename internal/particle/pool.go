// Package particle holds the two particle populations and the
// formation engine that moves them every tick.
package particle

import (
	"errors"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	hsluv "github.com/hsluv/hsluv-go"

	"github.com/mvelarde/corazon/internal/config"
	"github.com/mvelarde/corazon/internal/heart"
	"github.com/mvelarde/corazon/internal/message"
)

// Interactive is a particle bound 1:1 to a message. Message is the
// index into the message list; Interactive[i].Message == i always
// holds, the populations are built in lock-step with the list.
type Interactive struct {
	Start   mgl32.Vec3
	Target  mgl32.Vec3
	Pos     mgl32.Vec3
	Color   color.RGBA
	Message int
}

// Background is a decorative particle; it is never hit-testable.
type Background struct {
	Start  mgl32.Vec3
	Target mgl32.Vec3
	Pos    mgl32.Vec3
	Color  color.RGBA
}

// Pool is built once at startup. Only Pos and Dirty mutate afterwards.
type Pool struct {
	Interactive []Interactive
	Background  []Background

	// Dirty is set by the engine when any position moved this tick
	// and cleared by the renderer.
	Dirty bool
}

// Background hue band: rose tones with randomized lightness.
const (
	backgroundHueMin = 320.0
	backgroundHueMax = 355.0
)

// NewPool builds the pool from the message list. The interactive
// population gets min(len(msgs), budget) particles in message order;
// the rest of the budget becomes the background halo. Every particle
// starts with Pos == Start.
func NewPool(msgs []message.Message, budget int) (*Pool, error) {
	if len(msgs) == 0 {
		return nil, errors.New("particle: empty message list")
	}

	interactive := len(msgs)
	if interactive > budget {
		interactive = budget
	}
	background := budget - interactive

	outline := heart.OutlineTargets(interactive, config.HeartScale, config.OutlineJitter)
	halo := heart.HaloTargets(background, config.HeartScale, config.HaloSpread)

	p := &Pool{
		Interactive: make([]Interactive, interactive),
		Background:  make([]Background, background),
	}
	for i := range p.Interactive {
		start := shellPoint()
		p.Interactive[i] = Interactive{
			Start:   start,
			Target:  outline[i],
			Pos:     start,
			Color:   msgs[i].Tone.Color(),
			Message: i,
		}
	}
	for i := range p.Background {
		start := shellPoint()
		p.Background[i] = Background{
			Start:  start,
			Target: halo[i],
			Pos:    start,
			Color:  backgroundColor(),
		}
	}
	return p, nil
}

// shellPoint samples a start position on a spherical shell with
// uniform surface-area distribution: φ comes from acos of a uniform
// value, not from a uniform angle.
func shellPoint() mgl32.Vec3 {
	r := config.ShellRadiusMin + rand.Float64()*config.ShellRadiusRange
	theta := rand.Float64() * 2 * math.Pi
	phi := math.Acos(2*rand.Float64() - 1)
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * sinPhi * math.Cos(theta)),
		float32(r * math.Cos(phi)),
		float32(r * sinPhi * math.Sin(theta)),
	}
}

func backgroundColor() color.RGBA {
	h := backgroundHueMin + rand.Float64()*(backgroundHueMax-backgroundHueMin)
	l := 45 + rand.Float64()*40
	r, g, b := hsluv.HsluvToRGB(h, 55, l)
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
