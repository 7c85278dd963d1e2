package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on Model; the topmost modal receives all
// input and is drawn over the page.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// Skinnable is optionally implemented by modals that restyle when the theme
// changes while they are open.
type Skinnable interface {
	SetSkin(Skin)
}

// ModalContext provides read-only context to modals, replacing direct access
// to *Model.
type ModalContext struct {
	ReverseScrollWheel bool
	Skin               Skin
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal unless one with the same ID is already open.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (s *ModalStackState) HasModal() bool {
	return len(s.modalStack) > 0
}

// removeModal drops the modal with id wherever it sits in the stack.
func (s *ModalStackState) removeModal(id string) {
	for i, existing := range s.modalStack {
		if existing.ID() == id {
			s.modalStack = append(s.modalStack[:i], s.modalStack[i+1:]...)
			return
		}
	}
}

// renderModalFrame wraps body in the rounded, titled frame shared by all
// modals and centers it on screen.
func renderModalFrame(skin Skin, title, body, status string, modalWidth, width, height int) string {
	modalWidth = min(modalWidth, width-4)
	contentWidth := modalWidth - 4

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(skin.color(skin.Primary)).
		Bold(true).
		Render(title)

	statusBar := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(skin.color(skin.Muted)).
		Render(status)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", statusBar)

	framed := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(skin.color(skin.Primary)).
		Padding(0, 1).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}

// renderModalStatusBar joins key hints for a modal footer.
func renderModalStatusBar(items ...string) string {
	return strings.Join(items, " | ")
}
