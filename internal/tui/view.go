package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/lipgloss"
)

// View renders the page
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading portfolio..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatusLine(),
	)
}

// navItem is one header entry and the columns it occupies.
type navItem struct {
	region reveal.Region
	label  string
	x0, x1 int
}

// brand is the left part of the header. Once the page is scrolled it shrinks
// to the initials.
func (m *Model) brand() string {
	if !m.isScrolled() {
		return m.profileName
	}
	var initials strings.Builder
	for _, w := range strings.Fields(m.profileName) {
		initials.WriteString(string([]rune(w)[0]))
	}
	return initials.String()
}

// navItems lays out the header entries after the brand.
func (m *Model) navItems() []navItem {
	x := lipgloss.Width(m.brand()) + 3
	var items []navItem
	for _, e := range m.palette.Entries() {
		w := lipgloss.Width(e.Label) + 2
		items = append(items, navItem{region: e.Target, label: e.Label, x0: x, x1: x + w})
		x += w
	}
	return items
}

// navAt resolves a header click to a section.
func (m *Model) navAt(x int) (reveal.Region, bool) {
	for _, it := range m.navItems() {
		if x >= it.x0 && x < it.x1 {
			return it.region, true
		}
	}
	return "", false
}

func (m *Model) renderHeader() string {
	skin := m.skin
	base := lipgloss.NewStyle().Foreground(skin.color(skin.Text))
	if m.isScrolled() {
		base = base.Background(skin.color(skin.Hidden))
	}

	brand := base.Foreground(skin.color(skin.Primary)).Bold(true).Render(" " + m.brand() + "  ")
	active := m.activeNav()
	var nav strings.Builder
	for _, it := range m.navItems() {
		st := base.Padding(0, 1)
		if it.region == active {
			st = st.Foreground(skin.color(skin.Accent)).Bold(true).Underline(true)
		}
		nav.WriteString(st.Render(it.label))
	}

	sound := "♪ off"
	if !m.muted {
		sound = "♪ on"
	}
	right := base.Foreground(skin.color(skin.Muted)).Render(fmt.Sprintf("%s · %s ", sound, skin.Name))

	left := brand + nav.String()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *Model) renderStatusLine() string {
	skin := m.skin
	now := time.Now()

	var left string
	switch {
	case m.lastError != "" && now.Sub(m.lastErrorAt) < errorTTL:
		left = skin.errorStyle().Render("✗ " + m.lastError)
	case m.status != "" && now.Sub(m.statusAt) < statusTTL:
		left = lipgloss.NewStyle().Foreground(skin.color(skin.Success)).Render("✓ " + m.status)
	default:
		left = skin.muted().Render("?: help · ctrl+k: go to · tab: next section · c: contact · q: quit")
	}

	right := skin.muted().Render(fmt.Sprintf("%s %3.0f%%", m.activeSection(), m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
