package game

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// audioState holds the optional looping background track. Everything
// here degrades to silence; audio failures never stop the scene.
type audioState struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *pulseTap
	initDone bool
	paused   bool
}

// openMusicDialog lets the user pick a track; cancel is not an error.
func (g *Game) openMusicDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Elegir música de fondo"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.PlayMusic(filename)
}

// decodeTrack picks the decoder from the file extension.
func decodeTrack(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := filepath.Ext(path); ext {
	case ".wav", ".WAV":
		return wav.Decode(f)
	case ".mp3", ".MP3":
		return mp3.Decode(f)
	case ".flac", ".FLAC":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// PlayMusic starts (or replaces) the looping background track.
func (g *Game) PlayMusic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decodeTrack(f, path)
	if err != nil {
		_ = f.Close()
		return err
	}

	// Audio chain: looped streamer -> pulse tap -> pause control
	tap := newPulseTap(beep.Loop(-1, streamer))
	ctrl := &beep.Ctrl{Streamer: tap, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !g.audio.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		g.audio.initDone = true
	} else if g.audio.format.SampleRate != format.SampleRate {
		// Re-init when sample rate changes. Init and Clear take the
		// speaker mutex themselves; wrapping them in speaker.Lock
		// deadlocks on beep's non-reentrant mutex.
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
	} else {
		speaker.Clear()
	}

	if g.audio.streamer != nil {
		_ = g.audio.streamer.Close()
	}
	if g.audio.file != nil {
		_ = g.audio.file.Close()
	}

	g.audio.file = f
	g.audio.streamer = streamer
	g.audio.format = format
	g.audio.ctrl = ctrl
	g.audio.tap = tap
	g.audio.paused = false

	speaker.Play(ctrl)
	g.log.Info("music playing", zap.String("path", path))
	return nil
}

func (g *Game) toggleMusic() {
	if g.audio.ctrl == nil {
		return
	}
	speaker.Lock()
	g.audio.paused = !g.audio.paused
	g.audio.ctrl.Paused = g.audio.paused
	speaker.Unlock()
}

// pulse reports the current music level in [0,1]; 0 when no track is
// playing. Only the glow rendering reads it, particle positions are
// never audio-driven.
func (g *Game) pulse() float64 {
	if g.audio.tap == nil || g.audio.paused {
		return 0
	}
	return g.audio.tap.Level()
}
