package tui

import (
	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
)

// Section identifiers. They double as palette targets and reveal regions.
const (
	SectionHome         reveal.Region = "home"
	SectionAbout        reveal.Region = "about"
	SectionProjects     reveal.Region = "projects"
	SectionServices     reveal.Region = "services"
	SectionCertificates reveal.Region = "certificates"
	SectionTestimonials reveal.Region = "testimonials"
	SectionBlog         reveal.Region = "blog"
	SectionContact      reveal.Region = "contact"
	SectionFooter       reveal.Region = "footer"
)

// Section is one block of the scrolling page.
type Section interface {
	ID() reveal.Region
	Title() string
	// InNav reports whether the section appears in the header and palette.
	InNav() bool
	Render(ctx ViewContext) string
	// HandleKey is offered keys while the section is focused. Return
	// handled=true if consumed.
	HandleKey(msg tea.KeyMsg, keys KeyMap) (handled bool, cmd tea.Cmd)
}

// AnimatedSection is implemented by sections with their own transitions.
// Animate advances one frame and reports whether more frames are needed.
type AnimatedSection interface {
	Section
	Animate() bool
}

// DefaultSections builds the page in display order.
func DefaultSections(p *model.Portfolio, category string) ([]Section, error) {
	projects := NewProjectsSection(p)
	if category != "" {
		if err := projects.SetCategory(category); err != nil {
			return nil, err
		}
	}
	testimonials, err := NewTestimonialsSection(p.Testimonials)
	if err != nil {
		return nil, err
	}
	return []Section{
		NewHeroSection(p.Profile),
		NewAboutSection(p.Profile, p.Skills, p.Timeline),
		projects,
		NewServicesSection(p.Services),
		NewCertificatesSection(p.Certificates),
		testimonials,
		NewBlogSection(p.Posts),
		NewContactSection(p.Profile),
		NewFooterSection(p.Profile, p.Social, p.Clients),
	}, nil
}

// NavSections filters sections to those shown in the header and palette.
func NavSections(sections []Section) []Section {
	var out []Section
	for _, s := range sections {
		if s.InNav() {
			out = append(out, s)
		}
	}
	return out
}

// digitIndex maps "1".."9" to 0..8.
func digitIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
