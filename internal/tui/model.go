package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/palette"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	headerHeight = 1
	statusHeight = 1

	// revealFrames is the length of a section fade-in, in animation frames.
	revealFrames = 5

	// scrolledThreshold is how far the page must scroll before the header
	// switches to its compact style.
	scrolledThreshold = 2

	statusTTL = 5 * time.Second
	errorTTL  = 10 * time.Second
)

// ErrUnknownSection is returned when navigating to a section not on the page.
var ErrUnknownSection = errors.New("unknown section")

// Config carries everything the page needs from the CLI.
type Config struct {
	Portfolio          *model.Portfolio
	Skin               Skin
	Muted              bool
	Reveal             reveal.Options
	ReverseScrollWheel bool
	AnimationInterval  time.Duration // zero disables animation
	Category           string        // initial projects tab
	Logger             *zap.Logger
	Chime              Chime
}

// PageState holds the scrolling page and its layout.
type PageState struct {
	viewport viewport.Model
	sections []Section
	order    []reveal.Region
	spans    map[reveal.Region]reveal.Span
	// focus pins the focused section after explicit navigation, for sections
	// that cannot scroll to the top of the screen. Manual scrolling clears it.
	focus reveal.Region
}

// RevealState holds the per-section fade-in state.
type RevealState struct {
	source      *reveal.SpanSource
	tracker     *reveal.Tracker
	handles     map[reveal.Region]*reveal.Handle
	frames      map[reveal.Region]int
	revealDirty bool
}

// StatusState holds the transient messages shown in the status line.
type StatusState struct {
	status      string
	statusAt    time.Time
	lastError   string
	lastErrorAt time.Time
}

// Model is the portfolio page.
// Sub-state is organized into embedded structs for readability.
type Model struct {
	ModalStackState
	PageState
	RevealState
	StatusState
	SoundState

	width  int
	height int

	keys     KeyMap
	skin     Skin
	palette  *palette.Palette[reveal.Region]
	markdown *markdownCache

	profileName        string
	reverseScrollWheel bool
	animationInterval  time.Duration
	animating          bool
	sectionsMoving     bool

	logger *zap.Logger
}

type animTickMsg time.Time

// NewModel builds the page and starts observing every section.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Portfolio == nil {
		return nil, errors.New("no portfolio")
	}
	sections, err := DefaultSections(cfg.Portfolio, cfg.Category)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	skin := cfg.Skin
	if skin.Name == "" {
		skin = builtinSkins["dark"]
	}

	m := &Model{
		PageState: PageState{
			viewport: viewport.New(0, 0),
			sections: sections,
			spans:    make(map[reveal.Region]reveal.Span),
		},
		RevealState: RevealState{
			source:  reveal.NewSpanSource(),
			handles: make(map[reveal.Region]*reveal.Handle),
			frames:  make(map[reveal.Region]int),
		},
		SoundState: SoundState{
			chime: cfg.Chime,
			muted: cfg.Muted,
		},
		keys:               DefaultKeyMap(),
		skin:               skin,
		markdown:           newMarkdownCache(),
		profileName:        cfg.Portfolio.Profile.Name,
		reverseScrollWheel: cfg.ReverseScrollWheel,
		animationInterval:  cfg.AnimationInterval,
		logger:             logger,
	}
	m.viewport.MouseWheelEnabled = false
	m.tracker = reveal.NewTracker(m.source)
	m.palette = palette.New(PaletteEntries(sections), m.navigateTo)

	for _, s := range sections {
		m.order = append(m.order, s.ID())
		h, err := m.tracker.Observe(s.ID(), cfg.Reveal, m.onReveal)
		if err != nil {
			m.closeHandles()
			return nil, fmt.Errorf("observing %s: %w", s.ID(), err)
		}
		m.handles[s.ID()] = h
	}
	return m, nil
}

// PaletteEntries lists the navigable sections as palette entries.
func PaletteEntries(sections []Section) []palette.Entry[reveal.Region] {
	var entries []palette.Entry[reveal.Region]
	for _, s := range NavSections(sections) {
		entries = append(entries, palette.Entry[reveal.Region]{Label: s.Title(), Target: s.ID()})
	}
	return entries
}

func (m *Model) closeHandles() {
	for _, h := range m.handles {
		h.Close()
	}
}

// Init sets the terminal title.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.profileName + " · portfolio")
}

// onReveal is the tracker callback; it fires at most once per section.
func (m *Model) onReveal(r reveal.Region) {
	if m.animationInterval <= 0 {
		m.frames[r] = revealFrames
	} else {
		m.frames[r] = 1
	}
	m.revealDirty = true
	m.logger.Debug("section revealed", zap.String("section", string(r)))
}

// revealProgress returns 0 before the section is seen, then ramps to 1.
func (m *Model) revealProgress(r reveal.Region) float64 {
	if !m.tracker.IsVisible(m.handles[r]) {
		return 0
	}
	return clamp01(float64(m.frames[r]) / revealFrames)
}

func (m *Model) contentWidth() int {
	return max(20, m.width-4)
}

// layout renders every section into the viewport and records their spans.
func (m *Model) layout() {
	if m.width <= 0 {
		return
	}
	active := m.activeSection()
	var (
		b    strings.Builder
		line int
	)
	pad := lipgloss.NewStyle().PaddingLeft(2)
	for i, s := range m.sections {
		ctx := ViewContext{
			Width:    m.contentWidth(),
			Skin:     m.skin,
			Reveal:   m.revealProgress(s.ID()),
			Focused:  s.ID() == active,
			Markdown: m.markdown,
		}
		body := pad.Render(s.Render(ctx))
		h := lipgloss.Height(body)
		m.spans[s.ID()] = reveal.Span{Start: line, End: line + h}
		line += h
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(body)
	}
	m.viewport.SetContent(b.String())
}

// syncReveal feeds the current layout and scroll position to the tracker.
func (m *Model) syncReveal() {
	m.source.SetLayout(m.spans)
	m.source.SetViewport(m.viewport.YOffset, m.viewport.Height)
}

// refresh re-renders the page, evaluates visibility, and starts animations
// for anything that was just revealed.
func (m *Model) refresh() tea.Cmd {
	if m.width <= 0 {
		return nil
	}
	m.layout()
	m.revealDirty = false
	m.syncReveal()
	if m.revealDirty {
		m.layout()
	}
	return m.startAnimation()
}

func (m *Model) needsAnimation() bool {
	if m.sectionsMoving {
		return true
	}
	for r, f := range m.frames {
		if f < revealFrames && m.tracker.IsVisible(m.handles[r]) {
			return true
		}
	}
	return false
}

func (m *Model) startAnimation() tea.Cmd {
	if m.animationInterval <= 0 {
		m.settleSections()
		return nil
	}
	if m.animating || !m.needsAnimation() {
		return nil
	}
	m.animating = true
	return tea.Tick(m.animationInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// settleSections runs section transitions to completion.
func (m *Model) settleSections() {
	if !m.sectionsMoving {
		return
	}
	for _, s := range m.sections {
		if a, ok := s.(AnimatedSection); ok {
			for a.Animate() {
			}
		}
	}
	m.sectionsMoving = false
	m.layout()
}

// advanceAnimation steps every running transition by one frame.
func (m *Model) advanceAnimation() {
	for r, f := range m.frames {
		if f < revealFrames {
			m.frames[r] = f + 1
		}
	}
	moving := false
	for _, s := range m.sections {
		if a, ok := s.(AnimatedSection); ok && a.Animate() {
			moving = true
		}
	}
	m.sectionsMoving = moving
}

// activeSection is the scroll-spy result: the last section starting at or
// above the viewport top, unless navigation pinned one.
func (m *Model) activeSection() reveal.Region {
	if m.focus != "" {
		return m.focus
	}
	if len(m.order) == 0 {
		return ""
	}
	active := m.order[0]
	for _, r := range m.order {
		if sp, ok := m.spans[r]; ok && sp.Start <= m.viewport.YOffset {
			active = r
		}
	}
	return active
}

// activeNav is the header entry to highlight for the active section.
func (m *Model) activeNav() reveal.Region {
	active := m.activeSection()
	var nav reveal.Region
	for _, s := range m.sections {
		if s.InNav() {
			nav = s.ID()
		}
		if s.ID() == active {
			break
		}
	}
	return nav
}

func (m *Model) isScrolled() bool {
	return m.viewport.YOffset > scrolledThreshold
}

func (m *Model) section(r reveal.Region) Section {
	for _, s := range m.sections {
		if s.ID() == r {
			return s
		}
	}
	return nil
}

// navigateTo scrolls so the section starts at the top of the viewport (or as
// close as the page allows) and focuses it.
func (m *Model) navigateTo(r reveal.Region) {
	sp, ok := m.spans[r]
	if !ok {
		m.reportError(fmt.Errorf("navigate to %q: %w", r, ErrUnknownSection))
		return
	}
	m.viewport.SetYOffset(sp.Start)
	m.focus = r
	m.logger.Debug("navigate", zap.String("section", string(r)))
}

func (m *Model) stepSection(delta int) {
	active := m.activeSection()
	idx := 0
	for i, r := range m.order {
		if r == active {
			idx = i
			break
		}
	}
	if delta < 0 && m.viewport.YOffset > m.spans[active].Start {
		m.navigateTo(active)
		return
	}
	next := idx + delta
	if next < 0 || next >= len(m.order) {
		return
	}
	m.navigateTo(m.order[next])
}

// scrolled is called after any manual scroll.
func (m *Model) scrolled() {
	m.focus = ""
}

func (m *Model) pushModal(modal Modal) {
	if s, ok := modal.(Skinnable); ok {
		s.SetSkin(m.skin)
	}
	m.PushModal(modal)
}

func (m *Model) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel, Skin: m.skin}
}

func (m *Model) toggleSkin() {
	m.skin = m.skin.Toggled()
	for _, modal := range m.modalStack {
		if s, ok := modal.(Skinnable); ok {
			s.SetSkin(m.skin)
		}
	}
	m.logger.Debug("skin", zap.String("name", m.skin.Name))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// reportError logs a recoverable error and shows it in the status line.
func (m *Model) reportError(err error) {
	m.logger.Warn("action failed", zap.Error(err))
	m.lastError = err.Error()
	m.lastErrorAt = time.Now()
}

// Close releases every visibility subscription.
func (m *Model) Close() {
	m.closeHandles()
}
