package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinytelemetry/folio/internal/filter"
)

// Profile is the hero and contact block of the portfolio.
type Profile struct {
	Name     string   `yaml:"name"`
	Greeting string   `yaml:"greeting"`
	Roles    []string `yaml:"roles"`
	Tagline  string   `yaml:"tagline"`
	Bio      string   `yaml:"bio"` // markdown
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Location string   `yaml:"location"`
}

// Skill is a labelled proficiency shown on the about section.
type Skill struct {
	Label      string `yaml:"label"`
	Percentage int    `yaml:"percentage"`
}

// TimelineItem is one education or experience entry.
type TimelineItem struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Duration     string `yaml:"duration"`
	Description  string `yaml:"description"`
}

// Project is a portfolio project, filterable by Category.
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	DemoLink    string   `yaml:"demo"`
	CodeLink    string   `yaml:"code"`
	Featured    bool     `yaml:"featured"`
}

// Service is an offered service card.
type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Certificate is an earned certificate.
type Certificate struct {
	ID     int    `yaml:"id"`
	Title  string `yaml:"title"`
	Date   string `yaml:"date"`
	Issuer string `yaml:"issuer"`
	URL    string `yaml:"url"`
}

// Testimonial is a client quote shown in the testimonials carousel.
type Testimonial struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Text     string `yaml:"text"`
	Rating   int    `yaml:"rating"`
}

// BlogPost is a post teaser; Excerpt is markdown.
type BlogPost struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"read_time"`
	Category string `yaml:"category"`
}

// SocialLink is an external profile link.
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Portfolio is the full static content rendered by the page.
type Portfolio struct {
	Profile           Profile        `yaml:"profile"`
	Skills            []Skill        `yaml:"skills"`
	Timeline          []TimelineItem `yaml:"timeline"`
	ProjectCategories []string       `yaml:"project_categories"`
	Projects          []Project      `yaml:"projects"`
	Services          []Service      `yaml:"services"`
	Certificates      []Certificate  `yaml:"certificates"`
	Testimonials      []Testimonial  `yaml:"testimonials"`
	Clients           []string       `yaml:"clients"`
	Posts             []BlogPost     `yaml:"posts"`
	Social            []SocialLink   `yaml:"social"`
}

// Validate reports every content problem found, joined into one error.
func (p *Portfolio) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	for i, s := range p.Skills {
		if s.Percentage < 0 || s.Percentage > 100 {
			errs = append(errs, fmt.Errorf("skills[%d] %q: percentage %d outside 0..100", i, s.Label, s.Percentage))
		}
	}

	declared := make(map[string]bool, len(p.ProjectCategories))
	for _, c := range p.ProjectCategories {
		// All is the filter's wildcard tab, never a category of its own.
		if c != filter.All {
			declared[c] = true
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if !declared[pr.Category] {
			errs = append(errs, fmt.Errorf("projects[%d] %q: category %q not in project_categories", i, pr.Title, pr.Category))
		}
	}

	if len(p.Testimonials) == 0 {
		errs = append(errs, errors.New("testimonials: at least one is required"))
	}
	for i, t := range p.Testimonials {
		if t.Rating < 0 || t.Rating > MaxRating {
			errs = append(errs, fmt.Errorf("testimonials[%d] %q: rating %d outside 0..%d", i, t.Name, t.Rating, MaxRating))
		}
	}

	return errors.Join(errs...)
}
