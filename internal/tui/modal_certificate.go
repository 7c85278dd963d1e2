package tui

import (
	"fmt"

	"github.com/tinytelemetry/folio/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CertificateModal shows one certificate; left/right browse the rest.
type CertificateModal struct {
	ctx   ModalContext
	certs []model.Certificate
	index int
}

func NewCertificateModal(certs []model.Certificate, index int) *CertificateModal {
	return &CertificateModal{certs: certs, index: index}
}

func (c *CertificateModal) ID() string { return "certificate" }

func (c *CertificateModal) SetSkin(s Skin) { c.ctx.Skin = s }

// Index returns the certificate being shown.
func (c *CertificateModal) Index() int { return c.index }

func (c *CertificateModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch km.String() {
	case "esc", "enter", "q":
		return true, nil
	case "left", "h":
		c.index = max(0, c.index-1)
	case "right", "l":
		c.index = min(len(c.certs)-1, c.index+1)
	}
	return false, nil
}

func (c *CertificateModal) View(width, height int) string {
	skin := c.ctx.Skin
	if len(c.certs) == 0 {
		return ""
	}
	cert := c.certs[c.index]
	label := skin.muted().Width(8)
	rows := []string{
		skin.accent().Bold(true).Render(cert.Title),
		"",
		label.Render("Issuer") + cert.Issuer,
		label.Render("Date") + cert.Date,
	}
	if cert.URL != "" {
		rows = append(rows, label.Render("Link")+skin.accent().Render(cert.URL))
	}
	rows = append(rows, "", skin.muted().Render(fmt.Sprintf("%d of %d", c.index+1, len(c.certs))))

	return renderModalFrame(skin, "Certificate", lipgloss.JoinVertical(lipgloss.Left, rows...),
		renderModalStatusBar("←/→: Browse", "ESC: Close"),
		56, width, height)
}
