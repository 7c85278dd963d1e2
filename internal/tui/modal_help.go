package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists the key bindings in a scrollable viewport.
type HelpModal struct {
	ctx      ModalContext
	keys     KeyMap
	viewport viewport.Model
}

func NewHelpModal(ctx ModalContext, keys KeyMap) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		keys:     keys,
		viewport: viewport.New(60, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) SetSkin(s Skin) { h.ctx.Skin = s }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			h.viewport.ScrollUp(1)
			return false, nil
		case "down", "j":
			h.viewport.ScrollDown(1)
			return false, nil
		case "pgup":
			h.viewport.HalfPageUp()
			return false, nil
		case "pgdown":
			h.viewport.HalfPageDown()
			return false, nil
		case "?", "q", "esc":
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.ctx.ReverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.ScrollUp(1)
		case down:
			h.viewport.ScrollDown(1)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := min(72, width-4)
	h.viewport.Width = modalWidth - 4
	h.viewport.Height = max(3, min(height-10, 24))
	h.viewport.SetContent(h.content())

	return renderModalFrame(h.ctx.Skin, "Help", h.viewport.View(),
		renderModalStatusBar("↑/↓/Wheel: Scroll", "PgUp/PgDn: Page", "?/ESC: Close"),
		modalWidth, width, height)
}

func (h *HelpModal) content() string {
	keyStyle := lipgloss.NewStyle().Foreground(h.ctx.Skin.color(h.ctx.Skin.Accent)).Width(14)
	groupStyle := lipgloss.NewStyle().Foreground(h.ctx.Skin.color(h.ctx.Skin.Primary)).Bold(true)

	var b strings.Builder
	for i, g := range h.keys.helpGroups() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(groupStyle.Render(g.Title + ":"))
		b.WriteString("\n")
		for _, kb := range g.Bindings {
			hb := kb.Help()
			fmt.Fprintf(&b, "  %s %s\n", keyStyle.Render(hb.Key), hb.Desc)
		}
	}
	b.WriteString("\nFocused section: the one at the top of the screen.\n")
	b.WriteString("Projects: ←/→ or 1-9 switch category.\n")
	b.WriteString("Testimonials: ←/→ slide, 1-9 jump.\n")
	b.WriteString("Certificates: ←/→ select, enter opens details.\n")
	return b.String()
}
