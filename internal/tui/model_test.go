package tui

import (
	"math"
	"testing"
	"time"

	"github.com/tinytelemetry/folio/internal/content"
	"github.com/tinytelemetry/folio/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingChime struct{ plays int }

func (c *countingChime) Play() { c.plays++ }

func newTestModel(t *testing.T, opts ...func(*Config)) (*Model, *countingChime) {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)

	chime := &countingChime{}
	cfg := Config{
		Portfolio: p,
		Skin:      builtinSkins["dark"],
		Muted:     true,
		Reveal:    reveal.DefaultOptions(),
		Chime:     chime,
	}
	for _, o := range opts {
		o(&cfg)
	}
	m, err := NewModel(cfg)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, chime
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and feeds any resulting messages back into the model.
func press(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	drain(m, cmd)
}

func drain(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			drain(m, c)
		}
	default:
		_, next := m.Update(msg)
		drain(m, next)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, runes(string(r)))
	}
}

func TestNewModel_RevealsOnlyWhatIsOnScreen(t *testing.T) {
	m, _ := newTestModel(t)

	assert.True(t, m.tracker.IsVisible(m.handles[SectionHome]))
	assert.False(t, m.tracker.IsVisible(m.handles[SectionBlog]))
	assert.Equal(t, 1.0, m.revealProgress(SectionHome))
	assert.Equal(t, 0.0, m.revealProgress(SectionBlog))
	assert.Equal(t, SectionHome, m.activeSection())
}

func TestClose_ReleasesUnrevealedSections(t *testing.T) {
	m, _ := newTestModel(t)

	require.False(t, m.tracker.IsVisible(m.handles[SectionBlog]))
	require.Positive(t, m.source.Observed())

	m.Close()
	assert.Equal(t, 0, m.source.Observed())
	assert.True(t, m.handles[SectionBlog].Released())
	assert.False(t, m.tracker.IsVisible(m.handles[SectionBlog]))

	m.Close()
	assert.Equal(t, 0, m.source.Observed())
}

func TestNewModel_RejectsBadThreshold(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)

	_, err = NewModel(Config{Portfolio: p, Reveal: reveal.Options{Threshold: 2}})
	assert.ErrorIs(t, err, reveal.ErrInvalidThreshold)

	_, err = NewModel(Config{Portfolio: p, Reveal: reveal.Options{Threshold: math.NaN()}})
	assert.ErrorIs(t, err, reveal.ErrInvalidThreshold)
}

func TestNewModel_UnknownCategory(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)

	_, err = NewModel(Config{Portfolio: p, Category: "Games"})
	assert.Error(t, err)
}

func TestReveal_StaysRevealedAfterScrollingAway(t *testing.T) {
	m, _ := newTestModel(t)

	m.navigateTo(SectionBlog)
	m.refresh()
	require.True(t, m.handles[SectionBlog].Visible())

	press(m, runes("g"))
	assert.Equal(t, 0, m.viewport.YOffset)
	assert.True(t, m.handles[SectionBlog].Visible())
	assert.True(t, m.handles[SectionBlog].Released())
}

func TestReveal_AnimatesOverFrames(t *testing.T) {
	m, _ := newTestModel(t, func(c *Config) { c.AnimationInterval = 10 * time.Millisecond })

	assert.Equal(t, 1, m.frames[SectionHome])
	assert.True(t, m.animating)
	assert.Less(t, m.revealProgress(SectionHome), 1.0)

	for i := 0; i < revealFrames; i++ {
		m.Update(animTickMsg(time.Now()))
	}
	assert.Equal(t, 1.0, m.revealProgress(SectionHome))
	assert.False(t, m.animating)
}

func TestPalette_ShortcutOpensAndSelectNavigates(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	require.NotNil(t, m.TopModal())
	assert.Equal(t, "palette", m.TopModal().ID())
	assert.True(t, m.palette.IsOpen())

	typeText(m, "blo")
	assert.Equal(t, "blo", m.palette.Query())
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.HasModal())
	assert.False(t, m.palette.IsOpen())
	assert.Equal(t, SectionBlog, m.activeSection())
	assert.True(t, m.handles[SectionBlog].Visible())
}

func TestPalette_ColonOpensEscapeCloses(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes(":"))
	require.True(t, m.palette.IsOpen())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.palette.IsOpen())
	assert.False(t, m.HasModal())
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestPalette_ShortcutWhileOpenResetsQuery(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	typeText(m, "con")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.True(t, m.palette.IsOpen())
	assert.Equal(t, "", m.palette.Query())
	assert.Len(t, m.modalStack, 1)
}

func TestPalette_NoMatchSuggests(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	typeText(m, "abuot")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.palette.IsOpen())
	view := m.View()
	assert.Contains(t, view, "Did you mean")
	assert.Contains(t, view, "About")

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "About", m.palette.Query())
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SectionAbout, m.activeSection())
}

func TestPalette_TypingDoesNotTriggerPageKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes(":"))
	typeText(m, "q")
	assert.True(t, m.palette.IsOpen())
	assert.Equal(t, "q", m.palette.Query())
}

func TestTestimonials_KeysDriveCarousel(t *testing.T) {
	m, _ := newTestModel(t)
	ts := m.section(SectionTestimonials).(*TestimonialsSection)

	m.navigateTo(SectionTestimonials)
	m.refresh()

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, ts.Index())
	assert.Equal(t, DirectionForward, ts.Direction())

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, ts.Index())
	assert.Equal(t, DirectionBackward, ts.Direction())

	press(m, runes("2"))
	assert.Equal(t, 1, ts.Index())

	press(m, runes("7"))
	assert.Equal(t, 1, ts.Index())
	assert.Contains(t, m.lastError, "testimonial 7")
}

func TestProjects_TabsFilter(t *testing.T) {
	m, _ := newTestModel(t)
	ps := m.section(SectionProjects).(*ProjectsSection)

	m.navigateTo(SectionProjects)
	m.refresh()
	require.Equal(t, "All", ps.Active())
	require.Len(t, ps.Visible(), 3)

	press(m, runes("2"))
	assert.Equal(t, "AI", ps.Active())
	require.Len(t, ps.Visible(), 1)
	assert.Equal(t, "FinAI Advisor", ps.Visible()[0].Title)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Web", ps.Active())

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "All", ps.Active())
	assert.Len(t, ps.Visible(), 3)
}

func TestCertificates_EnterOpensDetail(t *testing.T) {
	m, _ := newTestModel(t)
	cs := m.section(SectionCertificates).(*CertificatesSection)

	m.navigateTo(SectionCertificates)
	m.refresh()
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, cs.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.TopModal())
	cm, ok := m.TopModal().(*CertificateModal)
	require.True(t, ok)
	assert.Equal(t, 1, cm.Index())
	assert.Contains(t, m.View(), "Angular Workshop")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.HasModal())
}

func TestContact_ValidatesThenAcknowledges(t *testing.T) {
	m, chime := newTestModel(t, func(c *Config) { c.Muted = false })

	press(m, runes("c"))
	require.NotNil(t, m.TopModal())
	cm := m.TopModal().(*ContactModal)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.HasModal())
	assert.Contains(t, m.View(), "name is required")

	typeText(m, "Ada")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "not-an-address")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Hello there")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.HasModal())
	assert.Contains(t, m.View(), "valid email")

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	for range len("not-an-address") {
		press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	typeText(m, "ada@example.com")
	assert.Equal(t, "ada@example.com", cm.Submission().Email)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.HasModal())
	assert.Contains(t, m.status, "Thanks for your message")
	assert.Equal(t, 1, chime.plays)

	// A new form starts empty.
	press(m, runes("c"))
	assert.Equal(t, ContactSubmission{}, m.TopModal().(*ContactModal).Submission())
}

func TestMute_RingsOnlyWhenUnmuting(t *testing.T) {
	m, chime := newTestModel(t)
	require.True(t, m.muted)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, chime.plays)

	press(m, runes("m"))
	assert.False(t, m.muted)
	assert.Equal(t, 1, chime.plays)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, chime.plays)

	press(m, runes("m"))
	assert.True(t, m.muted)
	assert.Equal(t, 2, chime.plays)
}

func TestTheme_Toggles(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("t"))
	assert.Equal(t, "light", m.skin.Name)
	assert.False(t, m.skin.Dark)
	press(m, runes("t"))
	assert.Equal(t, "dark", m.skin.Name)
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("?"))
	require.NotNil(t, m.TopModal())
	assert.Equal(t, "help", m.TopModal().ID())
	assert.Contains(t, m.View(), "command palette")

	press(m, runes("?"))
	assert.False(t, m.HasModal())
}

func TestSections_TabStepsAndScrollSpy(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, SectionAbout, m.activeSection())
	assert.Equal(t, m.spans[SectionAbout].Start, m.viewport.YOffset)
	assert.True(t, m.isScrolled())

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, SectionHome, m.activeSection())
	assert.False(t, m.isScrolled())

	press(m, runes("G"))
	assert.NotEqual(t, SectionHome, m.activeSection())
	assert.Empty(t, m.focus)

	press(m, runes("g"))
	assert.Equal(t, SectionHome, m.activeSection())
}

func TestMouse_WheelScrolls(t *testing.T) {
	m, _ := newTestModel(t, func(c *Config) { c.ReverseScrollWheel = true })

	press(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, wheelStep, m.viewport.YOffset)

	press(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestMouse_HeaderClickNavigates(t *testing.T) {
	m, _ := newTestModel(t)

	var projects navItem
	for _, it := range m.navItems() {
		if it.region == SectionProjects {
			projects = it
		}
	}
	press(m, tea.MouseMsg{X: projects.x0 + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, SectionProjects, m.activeSection())
}

func TestView_ShowsHeaderAndStatus(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Arien Khardiya")
	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "♪ off")
	assert.Contains(t, view, "?: help")
}

func TestPaletteEntries_NavSectionsOnly(t *testing.T) {
	m, _ := newTestModel(t)

	var labels []string
	for _, e := range PaletteEntries(m.sections) {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Home", "About", "Projects", "Services", "Blog", "Contact"}, labels)
}
