package tui

import (
	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CertificatesSection is a selectable row of certificate cards; enter opens
// the detail modal.
type CertificatesSection struct {
	certs    []model.Certificate
	selected int
}

func NewCertificatesSection(certs []model.Certificate) *CertificatesSection {
	return &CertificatesSection{certs: certs}
}

func (s *CertificatesSection) ID() reveal.Region { return SectionCertificates }
func (s *CertificatesSection) Title() string     { return "Certificates" }
func (s *CertificatesSection) InNav() bool       { return false }

// Selected returns the selected index.
func (s *CertificatesSection) Selected() int { return s.selected }

func (s *CertificatesSection) HandleKey(msg tea.KeyMsg, keys KeyMap) (bool, tea.Cmd) {
	if len(s.certs) == 0 {
		return false, nil
	}
	switch {
	case key.Matches(msg, keys.Left):
		s.selected = max(0, s.selected-1)
	case key.Matches(msg, keys.Right):
		s.selected = min(len(s.certs)-1, s.selected+1)
	case key.Matches(msg, keys.Digits):
		i, _ := digitIndex(msg)
		if i >= len(s.certs) {
			return false, nil
		}
		s.selected = i
	case key.Matches(msg, keys.Enter):
		return true, actionMsg(ActionMsg{Action: ActionPushModal, Payload: NewCertificateModal(s.certs, s.selected)})
	default:
		return false, nil
	}
	return true, nil
}

func (s *CertificatesSection) Render(ctx ViewContext) string {
	parts := []string{ctx.Heading("Certificates", "Courses and workshops I have completed")}

	cardW := 24
	perRow := max(1, ctx.Width/(cardW+2))
	var row []string
	for i, c := range s.certs {
		selected := ctx.Focused && i == s.selected
		body := lipgloss.JoinVertical(lipgloss.Left,
			ctx.Accent().Bold(true).Width(cardW-4).Render(c.Title),
			ctx.Body().Width(cardW-4).Render(c.Issuer),
			ctx.Skin.muted().Render(c.Date),
		)
		row = append(row, ctx.Skin.card(selected).Width(cardW).Render(body))
		if len(row) == perRow || i == len(s.certs)-1 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if ctx.Focused && len(s.certs) > 0 {
		parts = append(parts, ctx.Skin.muted().Render("←/→ select · enter details"))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
