package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewContext provides read-only context to sections for rendering,
// replacing direct access to *Model.
type ViewContext struct {
	Width    int
	Skin     Skin
	Reveal   float64 // fade-in progress, 0 until the section is first seen
	Focused  bool    // the section under the scroll spy
	Markdown *markdownCache
}

// Body is the text style for the current fade-in progress.
func (c ViewContext) Body() lipgloss.Style {
	switch {
	case c.Reveal <= 0:
		return lipgloss.NewStyle().Foreground(c.Skin.color(c.Skin.Hidden))
	case c.Reveal < 1:
		return lipgloss.NewStyle().Foreground(c.Skin.color(c.Skin.Muted)).Faint(true)
	default:
		return lipgloss.NewStyle().Foreground(c.Skin.color(c.Skin.Text))
	}
}

// Revealed reports whether the fade-in has finished.
func (c ViewContext) Revealed() bool { return c.Reveal >= 1 }

// Accent returns the accent style once revealed, Body otherwise.
func (c ViewContext) Accent() lipgloss.Style {
	if !c.Revealed() {
		return c.Body()
	}
	return c.Skin.accent()
}

// Heading renders a section title with its subtitle and rule.
func (c ViewContext) Heading(title, subtitle string) string {
	ts := c.Body().Bold(true)
	if c.Revealed() {
		ts = c.Skin.title()
	}
	if c.Focused {
		title = "▍" + title
	}
	rule := c.Accent().Render(strings.Repeat("─", min(12, c.Width)))
	lines := []string{ts.Render(title), rule}
	if subtitle != "" {
		lines = append(lines, c.Body().Width(c.Width).Render(subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderMarkdown renders md with glamour. Until the section is first seen the
// output is blanked line for line, so revealing it never shifts the layout.
func (c ViewContext) RenderMarkdown(width int, md string) string {
	out := c.Body().Width(width).Render(strings.TrimSpace(md))
	if c.Markdown != nil {
		out = c.Markdown.Render(c.Skin.Glamour, width, md)
	}
	if c.Reveal > 0 {
		return out
	}
	return strings.Repeat("\n", lipgloss.Height(out)-1)
}

// Action identifies what a section wants the page to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionStatus
	ActionError
	ActionCue
)

// ActionMsg is returned by section key handlers to communicate with the page
// without mutating it directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Msg.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
