package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBellChime(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := SoundState{chime: NewBellChime(&buf), muted: true}
	s.cue()
	s.toggleMute()
	s.cue()
	assert.Equal(t, "\a\a", buf.String())

	NewBellChime(nil).Play()
}
