// Package palette implements a command palette: an overlay that is either
// open or closed, narrows a fixed list of entries by a typed query, and hands
// the chosen entry's target to a navigation collaborator.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrInvalidState is returned for operations that require an open palette.
	ErrInvalidState = errors.New("palette: invalid state")
	// ErrNoMatch is returned by SelectCurrent when no entry is visible.
	ErrNoMatch = errors.New("palette: no matching entry")
)

// State is the palette's open/closed state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// Entry is a navigable target shown in the palette.
type Entry[T any] struct {
	Label  string
	Target T
}

// Palette is not safe for concurrent use; the owning view serializes calls.
type Palette[T any] struct {
	state    State
	query    string
	cursor   int
	entries  []Entry[T]
	navigate func(T)
}

// New creates a closed palette. navigate receives the target of every
// selected entry and is the only place that knows how to move the view.
func New[T any](entries []Entry[T], navigate func(T)) *Palette[T] {
	if navigate == nil {
		navigate = func(T) {}
	}
	return &Palette[T]{
		entries:  append([]Entry[T](nil), entries...),
		navigate: navigate,
	}
}

// Open shows the palette with an empty query, whatever the prior state.
func (p *Palette[T]) Open() {
	p.state = Open
	p.query = ""
	p.cursor = 0
}

// Close hides the palette. Closing a closed palette is a no-op.
func (p *Palette[T]) Close() {
	p.state = Closed
}

// IsOpen reports whether the palette is open.
func (p *Palette[T]) IsOpen() bool { return p.state == Open }

// State returns the current state.
func (p *Palette[T]) State() State { return p.state }

// Query returns the current query.
func (p *Palette[T]) Query() string { return p.query }

// SetQuery replaces the query. A closed palette has no query to edit, so the
// call is rejected and nothing changes.
func (p *Palette[T]) SetQuery(q string) error {
	if p.state != Open {
		return fmt.Errorf("set query while %s: %w", p.state, ErrInvalidState)
	}
	p.query = q
	p.cursor = 0
	return nil
}

// Visible returns the entries whose label contains the query, ignoring case,
// in declared order. An empty query matches every entry.
func (p *Palette[T]) Visible() []Entry[T] {
	q := strings.ToLower(p.query)
	out := make([]Entry[T], 0, len(p.entries))
	for _, e := range p.entries {
		if strings.Contains(strings.ToLower(e.Label), q) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns every declared entry.
func (p *Palette[T]) Entries() []Entry[T] {
	return append([]Entry[T](nil), p.entries...)
}

// Cursor returns the highlighted position within Visible().
func (p *Palette[T]) Cursor() int {
	if n := len(p.Visible()); p.cursor >= n {
		return max(0, n-1)
	}
	return p.cursor
}

// MoveCursor moves the highlight by delta, wrapping around the visible list.
func (p *Palette[T]) MoveCursor(delta int) {
	n := len(p.Visible())
	if n == 0 {
		p.cursor = 0
		return
	}
	p.cursor = ((p.Cursor()+delta)%n + n) % n
}

// Select closes the palette and emits e.Target to the navigator once.
func (p *Palette[T]) Select(e Entry[T]) error {
	if p.state != Open {
		return fmt.Errorf("select %q while %s: %w", e.Label, p.state, ErrInvalidState)
	}
	p.state = Closed
	p.navigate(e.Target)
	return nil
}

// SelectCurrent selects the highlighted visible entry.
func (p *Palette[T]) SelectCurrent() error {
	if p.state != Open {
		return fmt.Errorf("select while %s: %w", p.state, ErrInvalidState)
	}
	visible := p.Visible()
	if len(visible) == 0 {
		return fmt.Errorf("query %q: %w", p.query, ErrNoMatch)
	}
	return p.Select(visible[p.Cursor()])
}

// Suggest returns the label closest to the query by edit distance when the
// query matches nothing, or "" when there is nothing to suggest.
func (p *Palette[T]) Suggest() string {
	if p.query == "" || len(p.entries) == 0 || len(p.Visible()) > 0 {
		return ""
	}
	q := strings.ToLower(p.query)
	best, bestDist := "", -1
	for _, e := range p.entries {
		d := levenshtein.ComputeDistance(q, strings.ToLower(e.Label))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Label, d
		}
	}
	return best
}
