package tui

import (
	"github.com/tinytelemetry/folio/internal/palette"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const wheelStep = 3

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-statusHeight)
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case ActionMsg:
		m.handleAction(msg)
		return m, m.refresh()

	case ContactSubmittedMsg:
		sub := msg.Submission
		m.logger.Info("contact form submitted",
			zap.Int("name_len", len(sub.Name)),
			zap.Int("email_len", len(sub.Email)),
			zap.Int("subject_len", len(sub.Subject)),
			zap.Int("message_len", len(sub.Message)),
		)
		m.setStatus("Thanks for your message! I'll get back to you soon.")
		m.cue()
		return m, m.refresh()

	case animTickMsg:
		m.animating = false
		m.advanceAnimation()
		return m, m.refresh()
	}

	return m, nil
}

func (m *Model) handleAction(msg ActionMsg) {
	switch msg.Action {
	case ActionPushModal:
		if modal, ok := msg.Payload.(Modal); ok {
			m.pushModal(modal)
		}
	case ActionStatus:
		if s, ok := msg.Payload.(string); ok {
			m.setStatus(s)
		}
	case ActionError:
		if err, ok := msg.Payload.(error); ok {
			m.reportError(err)
		}
	case ActionCue:
		m.cue()
	}
}

// handleKeyPress routes keys: force quit, the palette shortcut, the top modal,
// page-wide bindings, then the focused section.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.palette.HandleKey(palette.ParseKey(msg.String())) {
		m.removeModal("palette")
		if m.palette.IsOpen() {
			m.pushModal(NewPaletteModal(m.modalContext(), m.palette))
		}
		return m, m.refresh()
	}

	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, tea.Batch(cmd, m.refresh())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.pushModal(NewHelpModal(m.modalContext(), m.keys))
	case key.Matches(msg, m.keys.Palette):
		m.palette.Open()
		m.pushModal(NewPaletteModal(m.modalContext(), m.palette))
	case key.Matches(msg, m.keys.Contact):
		m.pushModal(NewContactModal())
	case key.Matches(msg, m.keys.Theme):
		m.toggleSkin()
	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()
		if m.muted {
			m.setStatus("Sound off")
		} else {
			m.setStatus("Sound on")
		}
	case key.Matches(msg, m.keys.NextSection):
		m.stepSection(1)
		m.cue()
	case key.Matches(msg, m.keys.PrevSection):
		m.stepSection(-1)
		m.cue()
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		m.scrolled()
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		m.scrolled()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfPageUp()
		m.scrolled()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfPageDown()
		m.scrolled()
	case key.Matches(msg, m.keys.Home):
		m.viewport.GotoTop()
		m.scrolled()
	case key.Matches(msg, m.keys.End):
		m.viewport.GotoBottom()
		m.scrolled()
	default:
		return m, m.handleSectionKey(msg)
	}
	return m, m.refresh()
}

// handleSectionKey offers msg to the focused section.
func (m *Model) handleSectionKey(msg tea.KeyMsg) tea.Cmd {
	s := m.section(m.activeSection())
	if s == nil {
		return nil
	}
	handled, cmd := s.HandleKey(msg, m.keys)
	if !handled {
		return nil
	}
	if _, ok := s.(AnimatedSection); ok {
		m.sectionsMoving = true
	}
	return tea.Batch(cmd, m.refresh())
}

// handleMouseEvent processes mouse interactions
func (m *Model) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.viewport.ScrollDown(wheelStep)
		} else {
			m.viewport.ScrollUp(wheelStep)
		}
	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.viewport.ScrollUp(wheelStep)
		} else {
			m.viewport.ScrollDown(wheelStep)
		}
	case tea.MouseButtonLeft:
		if msg.Y < headerHeight {
			if r, ok := m.navAt(msg.X); ok {
				m.navigateTo(r)
				m.cue()
			}
		}
	default:
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		m.scrolled()
	}
	return m, m.refresh()
}
