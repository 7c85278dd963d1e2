package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/folio/internal/carousel"
	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// slideFrames is the length of the card slide-in, in animation frames.
const slideFrames = 6

// Direction is the way a carousel moved.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

// directionOf infers travel direction from an index change. Single steps
// across the wrap point count as adjacent moves.
func directionOf(from, to, n int) Direction {
	switch {
	case from == to || n <= 1:
		return DirectionNone
	case to == (from+1)%n:
		return DirectionForward
	case to == (from-1+n)%n:
		return DirectionBackward
	case to > from:
		return DirectionForward
	default:
		return DirectionBackward
	}
}

// TestimonialsSection shows one testimonial at a time.
type TestimonialsSection struct {
	carousel  *carousel.Carousel[model.Testimonial]
	direction Direction
	frame     int
}

func NewTestimonialsSection(items []model.Testimonial) (*TestimonialsSection, error) {
	c, err := carousel.New(items)
	if err != nil {
		return nil, fmt.Errorf("testimonials: %w", err)
	}
	return &TestimonialsSection{carousel: c, frame: slideFrames}, nil
}

func (s *TestimonialsSection) ID() reveal.Region { return SectionTestimonials }
func (s *TestimonialsSection) Title() string     { return "Testimonials" }
func (s *TestimonialsSection) InNav() bool       { return false }

// Index returns the current slide index.
func (s *TestimonialsSection) Index() int { return s.carousel.Index() }

// Direction returns the direction of the last move.
func (s *TestimonialsSection) Direction() Direction { return s.direction }

func (s *TestimonialsSection) moved(from int) {
	s.direction = directionOf(from, s.carousel.Index(), s.carousel.Len())
	if s.direction != DirectionNone {
		s.frame = 0
	}
}

func (s *TestimonialsSection) HandleKey(msg tea.KeyMsg, keys KeyMap) (bool, tea.Cmd) {
	from := s.carousel.Index()
	switch {
	case key.Matches(msg, keys.Left):
		s.carousel.Previous()
	case key.Matches(msg, keys.Right):
		s.carousel.Next()
	case key.Matches(msg, keys.Digits):
		i, _ := digitIndex(msg)
		if err := s.carousel.GoTo(i); err != nil {
			return true, actionMsg(ActionMsg{Action: ActionError, Payload: fmt.Errorf("testimonial %d: %w", i+1, err)})
		}
	default:
		return false, nil
	}
	s.moved(from)
	return true, actionMsg(ActionMsg{Action: ActionCue})
}

// Animate advances the slide-in.
func (s *TestimonialsSection) Animate() bool {
	if s.frame < slideFrames {
		s.frame++
	}
	return s.frame < slideFrames
}

func (s *TestimonialsSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("Client Testimonials", "What people say about working with me")}

	t := s.carousel.Current()
	cardW := min(ctx.Width-2, 72)
	stars := strings.Repeat("★", t.Rating) + strings.Repeat("☆", max(0, model.MaxRating-t.Rating))
	card := ctx.Skin.card(true).Width(cardW).Render(lipgloss.JoinVertical(lipgloss.Left,
		ctx.Accent().Render(stars),
		ctx.Body().Italic(true).Width(cardW-4).Render("“"+strings.TrimSpace(t.Text)+"”"),
		"",
		ctx.Body().Bold(true).Render(t.Name),
		ctx.Skin.muted().Render(t.Position),
	))
	parts = append(parts, lipgloss.PlaceHorizontal(ctx.Width, s.position(), card))

	dots := make([]string, s.carousel.Len())
	for i := range dots {
		if i == s.carousel.Index() {
			dots[i] = ctx.Accent().Render("●")
		} else {
			dots[i] = ctx.Skin.muted().Render("○")
		}
	}
	nav := ctx.Skin.muted().Render("← ") + strings.Join(dots, " ") + ctx.Skin.muted().Render(" →")
	parts = append(parts, lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, nav), "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// position slides the card toward the center from the side it enters on.
func (s *TestimonialsSection) position() lipgloss.Position {
	rest := 1 - float64(s.frame)/slideFrames
	switch s.direction {
	case DirectionForward:
		return lipgloss.Position(0.5 + 0.5*rest)
	case DirectionBackward:
		return lipgloss.Position(0.5 - 0.5*rest)
	default:
		return lipgloss.Center
	}
}
