package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/folio/internal/filter"
	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProjectsSection shows project cards behind category tabs.
type ProjectsSection struct {
	filter *filter.Filter[model.Project]
}

func NewProjectsSection(p *model.Portfolio) *ProjectsSection {
	f := filter.New(p.ProjectCategories, p.Projects, func(pr model.Project) string { return pr.Category })
	return &ProjectsSection{filter: f}
}

func (s *ProjectsSection) ID() reveal.Region { return SectionProjects }
func (s *ProjectsSection) Title() string     { return "Projects" }
func (s *ProjectsSection) InNav() bool       { return true }

// SetCategory activates a category tab by name.
func (s *ProjectsSection) SetCategory(c string) error {
	return s.filter.SetActive(c)
}

// Active returns the active category.
func (s *ProjectsSection) Active() string { return s.filter.Active() }

// Visible returns the project cards currently shown.
func (s *ProjectsSection) Visible() []model.Project { return s.filter.Filtered() }

func (s *ProjectsSection) step(delta int) error {
	cats := s.filter.Categories()
	idx := 0
	for i, c := range cats {
		if c == s.filter.Active() {
			idx = i
			break
		}
	}
	n := len(cats)
	return s.filter.SetActive(cats[((idx+delta)%n+n)%n])
}

func (s *ProjectsSection) HandleKey(msg tea.KeyMsg, keys KeyMap) (bool, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, keys.Left):
		err = s.step(-1)
	case key.Matches(msg, keys.Right):
		err = s.step(1)
	case key.Matches(msg, keys.Digits):
		i, _ := digitIndex(msg)
		cats := s.filter.Categories()
		if i >= len(cats) {
			return true, actionMsg(ActionMsg{Action: ActionStatus, Payload: fmt.Sprintf("no category tab %d", i+1)})
		}
		err = s.filter.SetActive(cats[i])
	default:
		return false, nil
	}
	if err != nil {
		return true, actionMsg(ActionMsg{Action: ActionError, Payload: err})
	}
	return true, actionMsg(ActionMsg{Action: ActionCue})
}

func (s *ProjectsSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("My Projects", "A showcase of my recent work")}

	var tabs []string
	for i, c := range s.filter.Categories() {
		label := fmt.Sprintf("%d %s (%d)", i+1, c, s.filter.Count(c))
		style := ctx.Body().Padding(0, 1)
		if c == s.filter.Active() && ctx.Revealed() {
			style = style.Reverse(true).Foreground(ctx.Skin.color(ctx.Skin.Primary))
		}
		tabs = append(tabs, style.Render(label))
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "")

	visible := s.filter.Filtered()
	if len(visible) == 0 {
		parts = append(parts, ctx.Skin.muted().Render("No projects in this category yet."))
	}
	for _, pr := range visible {
		parts = append(parts, s.renderCard(ctx, pr))
	}
	parts = append(parts, "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *ProjectsSection) renderCard(ctx ViewContext, pr model.Project) string {
	title := pr.Title
	if pr.Featured {
		title = "★ " + title
	}
	badge := ctx.Skin.muted().Render("[" + pr.Category + "]")
	lines := []string{
		ctx.Accent().Bold(true).Render(title) + " " + badge,
		ctx.Body().Width(ctx.Width - 4).Render(pr.Description),
	}
	if len(pr.Tags) > 0 {
		lines = append(lines, ctx.Skin.muted().Width(ctx.Width-4).Render(strings.Join(pr.Tags, " · ")))
	}
	var links []string
	if pr.DemoLink != "" {
		links = append(links, "demo "+pr.DemoLink)
	}
	if pr.CodeLink != "" {
		links = append(links, "code "+pr.CodeLink)
	}
	if len(links) > 0 {
		lines = append(lines, ctx.Accent().Width(ctx.Width-4).Render(strings.Join(links, "  ")))
	}
	return ctx.Skin.card(false).Width(ctx.Width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
