// Package message loads the user-authored message document that binds
// text to the interactive particles. Loading never fails hard: any
// problem with the file degrades to a built-in fallback list.
package message

import (
	"encoding/json"
	"image/color"
	"os"

	"go.uber.org/zap"
)

// Tone is the mood category of a message; it picks the particle color.
type Tone string

const (
	ToneCarino Tone = "cariño"
	ToneFuerza Tone = "fuerza"
	ToneCalma  Tone = "calma"
	ToneHumor  Tone = "humor"
)

var toneColors = map[Tone]color.RGBA{
	ToneCarino: {R: 244, G: 114, B: 182, A: 255},
	ToneFuerza: {R: 251, G: 146, B: 60, A: 255},
	ToneCalma:  {R: 96, G: 165, B: 250, A: 255},
	ToneHumor:  {R: 250, G: 204, B: 21, A: 255},
}

// defaultToneColor is used when a message declares no tone or an
// unknown one.
var defaultToneColor = color.RGBA{R: 216, G: 180, B: 254, A: 255}

// Color maps a tone to its fixed display color. Unknown tones get the
// default color rather than an error.
func (t Tone) Color() color.RGBA {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return defaultToneColor
}

type Message struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// Document is the full input file: the message list plus the phrase
// revealed once enough distinct messages have been viewed.
type Document struct {
	Messages    []Message `json:"messages"`
	FinalPhrase string    `json:"finalPhrase"`
}

// Fallback returns the built-in document used whenever the real one
// cannot be loaded. It is never empty, so the interactive population
// always exists.
func Fallback() Document {
	return Document{
		Messages: []Message{
			{Name: "Siempre", Text: "Cada punto de luz es un momento contigo.", Tone: ToneCarino},
			{Name: "Adelante", Text: "Eres más fuerte de lo que crees.", Tone: ToneFuerza},
			{Name: "Respira", Text: "Todo llega a su tiempo.", Tone: ToneCalma},
		},
		FinalPhrase: "Gracias por estar aquí.",
	}
}

// LoadFile reads and decodes the message document at path. Any failure
// (missing file, malformed JSON, empty message list) is logged and
// answered with Fallback; the caller never sees an error.
func LoadFile(path string, log *zap.Logger) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("message file unavailable, using fallback", zap.String("path", path), zap.Error(err))
		return Fallback()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn("message file malformed, using fallback", zap.String("path", path), zap.Error(err))
		return Fallback()
	}
	if len(doc.Messages) == 0 {
		log.Warn("message file has no messages, using fallback", zap.String("path", path))
		return Fallback()
	}
	if doc.FinalPhrase == "" {
		doc.FinalPhrase = Fallback().FinalPhrase
	}

	log.Info("messages loaded", zap.String("path", path), zap.Int("count", len(doc.Messages)))
	return doc
}
