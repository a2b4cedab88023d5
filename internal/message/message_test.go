package message

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mensajes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileValid(t *testing.T) {
	path := writeTemp(t, `{
		"messages": [
			{"name": "Uno", "text": "Primer mensaje", "tone": "cariño"},
			{"name": "Dos", "text": "Segundo mensaje", "tone": "humor"}
		],
		"finalPhrase": "Te quiero"
	}`)

	doc := LoadFile(path, zap.NewNop())
	require.Len(t, doc.Messages, 2)
	assert.Equal(t, "Uno", doc.Messages[0].Name)
	assert.Equal(t, ToneCarino, doc.Messages[0].Tone)
	assert.Equal(t, "Te quiero", doc.FinalPhrase)
}

func TestLoadFileMissingFallsBack(t *testing.T) {
	doc := LoadFile(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	assert.NotEmpty(t, doc.Messages)
	assert.NotEmpty(t, doc.FinalPhrase)
}

func TestLoadFileMalformedFallsBack(t *testing.T) {
	path := writeTemp(t, `{"messages": [`)
	doc := LoadFile(path, zap.NewNop())
	assert.NotEmpty(t, doc.Messages)
}

func TestLoadFileEmptyListFallsBack(t *testing.T) {
	path := writeTemp(t, `{"messages": [], "finalPhrase": "x"}`)
	doc := LoadFile(path, zap.NewNop())
	assert.NotEmpty(t, doc.Messages)
}

func TestLoadFileMissingPhraseGetsDefault(t *testing.T) {
	path := writeTemp(t, `{"messages": [{"name": "a", "text": "b"}]}`)
	doc := LoadFile(path, zap.NewNop())
	require.Len(t, doc.Messages, 1)
	assert.NotEmpty(t, doc.FinalPhrase)
}

func TestToneColors(t *testing.T) {
	known := []Tone{ToneCarino, ToneFuerza, ToneCalma, ToneHumor}
	seen := map[[4]uint8]bool{}
	for _, tone := range known {
		c := tone.Color()
		key := [4]uint8{c.R, c.G, c.B, c.A}
		assert.False(t, seen[key], "tone %q shares a color", tone)
		seen[key] = true
	}

	// Unknown and empty tones fall back to the default color.
	assert.Equal(t, Tone("").Color(), Tone("desconocido").Color())
	for _, tone := range known {
		assert.NotEqual(t, Tone("").Color(), tone.Color())
	}
}
