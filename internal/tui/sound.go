package tui

import "io"

// Chime plays short audio cues. The terminal version rings the bell.
type Chime interface {
	Play()
}

type bellChime struct {
	w io.Writer
}

// NewBellChime returns a Chime that writes BEL to w. A nil writer is silent.
func NewBellChime(w io.Writer) Chime {
	return bellChime{w: w}
}

func (c bellChime) Play() {
	if c.w == nil {
		return
	}
	_, _ = c.w.Write([]byte{'\a'})
}

// SoundState tracks whether chimes are audible. Sound starts muted.
type SoundState struct {
	chime Chime
	muted bool
}

// toggleMute flips the mute flag and rings once when sound is switched on.
func (s *SoundState) toggleMute() {
	s.muted = !s.muted
	if !s.muted && s.chime != nil {
		s.chime.Play()
	}
}

// cue plays the chime unless muted.
func (s *SoundState) cue() {
	if s.muted || s.chime == nil {
		return
	}
	s.chime.Play()
}
