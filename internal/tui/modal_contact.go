package tui

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ContactSubmission is a validated contact form.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactSubmittedMsg is sent when the form validates.
type ContactSubmittedMsg struct {
	Submission ContactSubmission
}

var (
	errNameRequired    = errors.New("name is required")
	errEmailInvalid    = errors.New("a valid email address is required")
	errMessageRequired = errors.New("message is required")
)

// Validate checks required fields and the email address.
func (s ContactSubmission) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errNameRequired)
	}
	if addr, err := mail.ParseAddress(strings.TrimSpace(s.Email)); err != nil || addr.Name != "" {
		errs = append(errs, errEmailInvalid)
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, errMessageRequired)
	}
	return errors.Join(errs...)
}

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

// ContactModal is the contact form. Tab moves between fields; ctrl+s sends.
type ContactModal struct {
	ctx     ModalContext
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focus   int
	err     error
}

func NewContactModal() *ContactModal {
	c := &ContactModal{}
	placeholders := [fieldMessage]string{"Your name", "you@example.com", "Subject (optional)"}
	for i := range c.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		in.Prompt = ""
		in.Cursor.SetMode(cursor.CursorStatic)
		c.inputs[i] = in
	}
	c.message = textarea.New()
	c.message.Placeholder = "Tell me about your project..."
	c.message.ShowLineNumbers = false
	c.message.SetHeight(5)
	c.message.CharLimit = 2000
	c.message.Cursor.SetMode(cursor.CursorStatic)
	c.setFocus(fieldName)
	return c
}

func (c *ContactModal) ID() string { return "contact" }

func (c *ContactModal) SetSkin(s Skin) { c.ctx.Skin = s }

// Submission returns the current field values.
func (c *ContactModal) Submission() ContactSubmission {
	return ContactSubmission{
		Name:    c.inputs[fieldName].Value(),
		Email:   c.inputs[fieldEmail].Value(),
		Subject: c.inputs[fieldSubject].Value(),
		Message: c.message.Value(),
	}
}

func (c *ContactModal) setFocus(i int) {
	c.focus = ((i % fieldCount) + fieldCount) % fieldCount
	for j := range c.inputs {
		if j == c.focus {
			c.inputs[j].Focus()
		} else {
			c.inputs[j].Blur()
		}
	}
	if c.focus == fieldMessage {
		c.message.Focus()
	} else {
		c.message.Blur()
	}
}

func (c *ContactModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch km.String() {
	case "esc":
		return true, nil
	case "tab":
		c.setFocus(c.focus + 1)
		return false, nil
	case "shift+tab":
		c.setFocus(c.focus - 1)
		return false, nil
	case "ctrl+s":
		return c.submit()
	case "enter":
		if c.focus != fieldMessage {
			if c.focus == fieldSubject {
				c.setFocus(fieldMessage)
				return false, nil
			}
			c.setFocus(c.focus + 1)
			return false, nil
		}
	}

	var cmd tea.Cmd
	if c.focus == fieldMessage {
		c.message, cmd = c.message.Update(km)
	} else {
		c.inputs[c.focus], cmd = c.inputs[c.focus].Update(km)
	}
	return false, cmd
}

func (c *ContactModal) submit() (bool, tea.Cmd) {
	sub := c.Submission()
	if err := sub.Validate(); err != nil {
		c.err = err
		return false, nil
	}
	c.err = nil
	return true, func() tea.Msg { return ContactSubmittedMsg{Submission: sub} }
}

func (c *ContactModal) View(width, height int) string {
	skin := c.ctx.Skin
	modalWidth := min(64, width-4)
	fieldWidth := modalWidth - 8

	labels := [fieldCount]string{"Name", "Email", "Subject", "Message"}
	label := func(i int) string {
		st := skin.muted()
		if i == c.focus {
			st = skin.accent().Bold(true)
		}
		return st.Render(labels[i])
	}

	var rows []string
	for i := range c.inputs {
		c.inputs[i].Width = fieldWidth
		rows = append(rows, label(i), c.inputs[i].View())
	}
	c.message.SetWidth(fieldWidth)
	rows = append(rows, label(fieldMessage), c.message.View())

	if c.err != nil {
		for _, line := range strings.Split(c.err.Error(), "\n") {
			rows = append(rows, skin.errorStyle().Render("• "+line))
		}
	}

	return renderModalFrame(skin, "Send Me a Message", lipgloss.JoinVertical(lipgloss.Left, rows...),
		renderModalStatusBar("Tab: Next field", "Ctrl+S: Send", "ESC: Cancel"),
		modalWidth, width, height)
}
