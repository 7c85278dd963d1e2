package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sections() []Entry[string] {
	return []Entry[string]{
		{Label: "Home", Target: "home"},
		{Label: "About", Target: "about"},
		{Label: "Projects", Target: "projects"},
		{Label: "Services", Target: "services"},
		{Label: "Blog", Target: "blog"},
		{Label: "Contact", Target: "contact"},
	}
}

type recorder struct{ targets []string }

func (r *recorder) navigate(t string) { r.targets = append(r.targets, t) }

func TestOpen_EmptyQueryShowsAll(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Open()
	require.NoError(t, p.SetQuery(""))

	assert.Equal(t, sections(), p.Visible())
}

func TestSetQuery_CaseInsensitive(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Open()
	require.NoError(t, p.SetQuery("PROJ"))

	visible := p.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Projects", visible[0].Label)
}

func TestSetQuery_SubstringPreservesOrder(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Open()
	require.NoError(t, p.SetQuery("o"))

	var labels []string
	for _, e := range p.Visible() {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Home", "About", "Projects", "Blog", "Contact"}, labels)
}

func TestSetQuery_RejectedWhileClosed(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	err := p.SetQuery("blog")

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, "", p.Query())
	assert.False(t, p.IsOpen())
}

func TestOpen_ResetsQuery(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Open()
	require.NoError(t, p.SetQuery("blog"))
	p.Close()
	p.Open()

	assert.Equal(t, "", p.Query())
	assert.Len(t, p.Visible(), len(sections()))
}

func TestSelect_ClosesAndEmitsOnce(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	p := New(sections(), r.navigate)
	p.Open()

	require.NoError(t, p.Select(Entry[string]{Label: "Blog", Target: "blog"}))
	assert.Equal(t, Closed, p.State())
	assert.Equal(t, []string{"blog"}, r.targets)

	err := p.Select(Entry[string]{Label: "Blog", Target: "blog"})
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, []string{"blog"}, r.targets, "closed palette must not emit")
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Close()
	p.Close()
	assert.Equal(t, Closed, p.State())

	p.Open()
	p.Close()
	p.Close()
	assert.Equal(t, Closed, p.State())
}

func TestSelectCurrent_UsesCursor(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	p := New(sections(), r.navigate)
	p.Open()
	require.NoError(t, p.SetQuery("o"))
	p.MoveCursor(1)
	p.MoveCursor(-2) // wraps to the last of five visible entries

	require.NoError(t, p.SelectCurrent())
	assert.Equal(t, []string{"contact"}, r.targets)
}

func TestSelectCurrent_NoMatch(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	p := New(sections(), r.navigate)
	p.Open()
	require.NoError(t, p.SetQuery("zzz"))

	err := p.SelectCurrent()
	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.True(t, p.IsOpen())
	assert.Empty(t, r.targets)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	p.Open()
	assert.Equal(t, "", p.Suggest())

	require.NoError(t, p.SetQuery("blgo"))
	assert.Equal(t, "Blog", p.Suggest())

	require.NoError(t, p.SetQuery("bl"))
	assert.Equal(t, "", p.Suggest(), "no suggestion while something matches")
}

func TestHandleKey_ShortcutOpensRegardlessOfState(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	assert.True(t, p.HandleKey(ParseKey("ctrl+k")))
	assert.True(t, p.IsOpen())

	require.NoError(t, p.SetQuery("x"))
	assert.True(t, p.HandleKey(KeyEvent{Key: "k", Meta: true}))
	assert.True(t, p.IsOpen())
	assert.Equal(t, "", p.Query())
}

func TestHandleKey_EscapeClosesOnlyWhenOpen(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	assert.False(t, p.HandleKey(ParseKey("esc")))

	p.Open()
	assert.True(t, p.HandleKey(ParseKey("esc")))
	assert.False(t, p.IsOpen())
}

func TestHandleKey_IgnoresRepeat(t *testing.T) {
	t.Parallel()

	p := New(sections(), nil)
	assert.False(t, p.HandleKey(KeyEvent{Key: "k", Ctrl: true, Repeat: true}))
	assert.False(t, p.IsOpen())

	assert.False(t, p.HandleKey(KeyEvent{Key: "k"}), "plain k is not the shortcut")
}

func TestHandleKey_ParsedChordsAreNeverRepeats(t *testing.T) {
	t.Parallel()

	// A held ctrl+k arrives as the same chord string over and over; without
	// a repeat flag each one reopens the palette with an empty query.
	p := New(sections(), nil)
	require.True(t, p.HandleKey(ParseKey("ctrl+k")))
	require.NoError(t, p.SetQuery("blo"))

	ev := ParseKey("ctrl+k")
	assert.False(t, ev.Repeat)
	assert.True(t, p.HandleKey(ev))
	assert.Equal(t, "", p.Query())
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KeyEvent{Key: "k", Ctrl: true}, ParseKey("ctrl+k"))
	assert.Equal(t, KeyEvent{Key: "k", Alt: true}, ParseKey("alt+k"))
	assert.Equal(t, KeyEvent{Key: "escape"}, ParseKey("esc"))
	assert.Equal(t, KeyEvent{Key: "+"}, ParseKey("+"))
}
