package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// staticSection is embedded by sections without keys of their own.
type staticSection struct{}

func (staticSection) HandleKey(tea.KeyMsg, KeyMap) (bool, tea.Cmd) { return false, nil }

// HeroSection is the landing block.
type HeroSection struct {
	staticSection
	profile model.Profile
}

func NewHeroSection(p model.Profile) *HeroSection { return &HeroSection{profile: p} }

func (s *HeroSection) ID() reveal.Region { return SectionHome }
func (s *HeroSection) Title() string     { return "Home" }
func (s *HeroSection) InNav() bool       { return true }

func (s *HeroSection) Render(ctx ViewContext) string {
	name := ctx.Body().Bold(true).Render(strings.ToUpper(s.profile.Name))
	if ctx.Revealed() {
		name = ctx.Skin.title().Render(strings.ToUpper(s.profile.Name))
	}
	lines := []string{
		"",
		ctx.Body().Render(s.profile.Greeting),
		name,
		ctx.Accent().Render(strings.Join(s.profile.Roles, " · ")),
		"",
		ctx.Body().Width(ctx.Width).Render(s.profile.Tagline),
		"",
		ctx.Skin.muted().Render("[c] Contact Me   [:] Explore   [?] Help"),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// AboutSection shows the bio, the skills chart and the timeline.
type AboutSection struct {
	staticSection
	profile  model.Profile
	skills   []model.Skill
	timeline []model.TimelineItem
}

func NewAboutSection(p model.Profile, skills []model.Skill, timeline []model.TimelineItem) *AboutSection {
	return &AboutSection{profile: p, skills: skills, timeline: timeline}
}

func (s *AboutSection) ID() reveal.Region { return SectionAbout }
func (s *AboutSection) Title() string     { return "About" }
func (s *AboutSection) InNav() bool       { return true }

func (s *AboutSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("About Me", "Get to know me better")}

	if s.profile.Bio != "" {
		parts = append(parts, ctx.RenderMarkdown(ctx.Width, s.profile.Bio))
	}

	if len(s.skills) > 0 {
		parts = append(parts, "", ctx.Accent().Bold(true).Render("Skills"), s.renderSkills(ctx))
	}

	if len(s.timeline) > 0 {
		parts = append(parts, "", ctx.Accent().Bold(true).Render("Journey"))
		for _, item := range s.timeline {
			head := fmt.Sprintf("● %s  %s", item.Title, ctx.Skin.muted().Render(item.Duration))
			parts = append(parts,
				ctx.Body().Bold(true).Render(head),
				ctx.Body().Italic(true).Render("  "+item.Organization),
				ctx.Body().Width(ctx.Width).PaddingLeft(2).Render(item.Description),
			)
		}
	}
	parts = append(parts, "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSkills draws one horizontal bar per skill. Bars grow with the reveal
// progress, so they animate from empty to their percentage.
func (s *AboutSection) renderSkills(ctx ViewContext) string {
	labelW := 0
	for _, sk := range s.skills {
		labelW = max(labelW, lipgloss.Width(sk.Label))
	}
	chartW := ctx.Width - labelW - 7
	if chartW < 10 {
		chartW = 10
	}

	barStyle := lipgloss.NewStyle().Foreground(ctx.Skin.color(ctx.Skin.Bar))
	bc := barchart.New(chartW, len(s.skills),
		barchart.WithHorizontalBars(),
		barchart.WithNoAxis(),
		barchart.WithBarWidth(1),
		barchart.WithBarGap(0),
		barchart.WithMaxValue(100),
		barchart.WithNoAutoMaxValue(),
	)
	for _, sk := range s.skills {
		bc.Push(barchart.BarData{
			Label: sk.Label,
			Values: []barchart.BarValue{
				{Name: sk.Label, Value: float64(sk.Percentage) * clamp01(ctx.Reveal), Style: barStyle},
			},
		})
	}
	bc.Draw()

	labels := make([]string, len(s.skills))
	pcts := make([]string, len(s.skills))
	for i, sk := range s.skills {
		labels[i] = ctx.Body().Width(labelW + 1).Render(sk.Label)
		pcts[i] = ctx.Skin.muted().Render(fmt.Sprintf(" %3d%%", int(float64(sk.Percentage)*clamp01(ctx.Reveal))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(labels, "\n"),
		bc.View(),
		strings.Join(pcts, "\n"),
	)
}

func clamp01(f float64) float64 {
	return max(0, min(1, f))
}

// ServicesSection lists services in a two-column grid when wide enough.
type ServicesSection struct {
	staticSection
	services []model.Service
}

func NewServicesSection(services []model.Service) *ServicesSection {
	return &ServicesSection{services: services}
}

func (s *ServicesSection) ID() reveal.Region { return SectionServices }
func (s *ServicesSection) Title() string     { return "Services" }
func (s *ServicesSection) InNav() bool       { return true }

func (s *ServicesSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("Services", "What I can do for you")}

	cols := 1
	if ctx.Width >= 80 {
		cols = 2
	}
	cardW := ctx.Width/cols - 2

	var row []string
	for i, svc := range s.services {
		body := lipgloss.JoinVertical(lipgloss.Left,
			ctx.Accent().Bold(true).Render(svc.Title),
			ctx.Body().Width(cardW-4).Render(svc.Description),
		)
		row = append(row, ctx.Skin.card(false).Width(cardW).Render(body))
		if len(row) == cols || i == len(s.services)-1 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	parts = append(parts, "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// BlogSection lists post teasers; excerpts are markdown.
type BlogSection struct {
	staticSection
	posts []model.BlogPost
}

func NewBlogSection(posts []model.BlogPost) *BlogSection { return &BlogSection{posts: posts} }

func (s *BlogSection) ID() reveal.Region { return SectionBlog }
func (s *BlogSection) Title() string     { return "Blog" }
func (s *BlogSection) InNav() bool       { return true }

func (s *BlogSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("Latest Articles", "Thoughts, insights and tutorials")}
	for _, post := range s.posts {
		meta := ctx.Skin.muted().Render(fmt.Sprintf("%s · %s · %s", post.Date, post.ReadTime, post.Category))
		excerpt := ctx.RenderMarkdown(ctx.Width-4, post.Excerpt)
		card := lipgloss.JoinVertical(lipgloss.Left,
			ctx.Accent().Bold(true).Render(post.Title),
			meta,
			excerpt,
		)
		parts = append(parts, ctx.Skin.card(false).Width(ctx.Width-2).Render(card))
	}
	parts = append(parts, "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ContactSection shows contact details; the form itself is a modal.
type ContactSection struct {
	profile model.Profile
}

func NewContactSection(p model.Profile) *ContactSection { return &ContactSection{profile: p} }

func (s *ContactSection) ID() reveal.Region { return SectionContact }
func (s *ContactSection) Title() string     { return "Contact" }
func (s *ContactSection) InNav() bool       { return true }

func (s *ContactSection) Render(ctx ViewContext) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return ctx.Skin.muted().Width(10).Render(label) + ctx.Body().Render(value)
	}
	lines := []string{ctx.Heading("Get In Touch", "Have a project in mind? Let's talk.")}
	for _, l := range []string{
		row("Email", s.profile.Email),
		row("Phone", s.profile.Phone),
		row("Location", s.profile.Location),
	} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	lines = append(lines, "", ctx.Accent().Render("Press enter or c to send a message."), "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *ContactSection) HandleKey(msg tea.KeyMsg, keys KeyMap) (bool, tea.Cmd) {
	if key.Matches(msg, keys.Enter) {
		return true, actionMsg(ActionMsg{Action: ActionPushModal, Payload: NewContactModal()})
	}
	return false, nil
}

// FooterSection closes the page with social links and a copyright line.
type FooterSection struct {
	staticSection
	profile model.Profile
	social  []model.SocialLink
	clients []string
	year    int
}

func NewFooterSection(p model.Profile, social []model.SocialLink, clients []string) *FooterSection {
	return &FooterSection{profile: p, social: social, clients: clients, year: time.Now().Year()}
}

func (s *FooterSection) ID() reveal.Region { return SectionFooter }
func (s *FooterSection) Title() string     { return "Footer" }
func (s *FooterSection) InNav() bool       { return false }

func (s *FooterSection) Render(ctx ViewContext) string {
	rule := ctx.Skin.muted().Render(strings.Repeat("─", max(0, ctx.Width)))
	lines := []string{rule}
	if len(s.clients) > 0 {
		lines = append(lines, ctx.Skin.muted().Render("Trusted by: "+strings.Join(s.clients, " · ")))
	}
	for _, l := range s.social {
		lines = append(lines, ctx.Accent().Render(l.Label)+" "+ctx.Skin.muted().Render(l.URL))
	}
	lines = append(lines, ctx.Skin.muted().Render(fmt.Sprintf("© %d %s. All rights reserved.", s.year, s.profile.Name)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
