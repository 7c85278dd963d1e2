package palette

import "strings"

// KeyEvent is a single key-down from the keyboard source. Repeat is only
// meaningful for sources that report auto-repeat; ParseKey never sets it, so
// a held shortcut parsed from a chord string fires on every repeat.
type KeyEvent struct {
	Key    string // "k", "escape", ...
	Ctrl   bool
	Meta   bool
	Alt    bool
	Repeat bool // auto-repeat of a key that is still held down
}

// ParseKey converts a key chord such as "ctrl+k" or "alt+k" into a KeyEvent.
func ParseKey(chord string) KeyEvent {
	var ev KeyEvent
	parts := strings.Split(chord, "+")
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			ev.Ctrl = true
		case "meta", "cmd", "super":
			ev.Meta = true
		case "alt":
			ev.Alt = true
		}
	}
	ev.Key = parts[len(parts)-1]
	if ev.Key == "" && strings.HasSuffix(chord, "+") {
		ev.Key = "+"
	}
	if ev.Key == "esc" {
		ev.Key = "escape"
	}
	return ev
}

// HandleKey applies the palette's global shortcuts: ctrl/meta+k opens the
// palette and escape closes it. Auto-repeat events are ignored so a held key
// fires once. It reports whether the event was consumed.
func (p *Palette[T]) HandleKey(ev KeyEvent) bool {
	if ev.Repeat {
		return false
	}
	switch {
	case strings.EqualFold(ev.Key, "k") && (ev.Ctrl || ev.Meta):
		p.Open()
		return true
	case ev.Key == "escape" && p.state == Open:
		p.Close()
		return true
	}
	return false
}
