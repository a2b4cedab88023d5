package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// pulseSmoothing blends each new RMS reading into the running level.
const pulseSmoothing = 0.75

// pulseTap wraps a beep.Streamer and keeps a smoothed RMS level of the
// audio passing through, so the renderer can make the glow breathe with
// the music.
type pulseTap struct {
	Source beep.Streamer
	mu     sync.RWMutex
	level  float64
}

func newPulseTap(src beep.Streamer) *pulseTap {
	return &pulseTap{Source: src}
}

func (t *pulseTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		var sumSquares float64
		for i := 0; i < n; i++ {
			mono := (samples[i][0] + samples[i][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(n))
		mag := math.Pow(rms, 0.5)

		t.mu.Lock()
		t.level = pulseSmoothing*t.level + (1-pulseSmoothing)*mag
		t.mu.Unlock()
	}
	return n, ok
}

func (t *pulseTap) Err() error { return t.Source.Err() }

// Level returns the smoothed audio level clamped to [0,1].
func (t *pulseTap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return clamp01(t.level)
}
