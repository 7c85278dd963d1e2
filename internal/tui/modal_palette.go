package tui

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/folio/internal/palette"
	"github.com/tinytelemetry/folio/internal/reveal"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaletteModal is the overlay for the command palette. Palette state lives in
// the palette controller; the modal only forwards input and draws it.
type PaletteModal struct {
	ctx     ModalContext
	palette *palette.Palette[reveal.Region]
	input   textinput.Model
	notice  string
}

func NewPaletteModal(ctx ModalContext, p *palette.Palette[reveal.Region]) *PaletteModal {
	in := textinput.New()
	in.Placeholder = "Type a command or search..."
	in.Prompt = "› "
	in.CharLimit = 64
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return &PaletteModal{ctx: ctx, palette: p, input: in}
}

func (pm *PaletteModal) ID() string { return "palette" }

func (pm *PaletteModal) SetSkin(s Skin) { pm.ctx.Skin = s }

func (pm *PaletteModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return !pm.palette.IsOpen(), nil
	}

	if pm.palette.HandleKey(palette.ParseKey(km.String())) {
		// The shortcut reopens with a fresh query; escape closes.
		pm.input.SetValue("")
		pm.notice = ""
		return !pm.palette.IsOpen(), nil
	}

	switch km.String() {
	case "up", "ctrl+p":
		pm.palette.MoveCursor(-1)
		return false, nil
	case "down", "ctrl+n":
		pm.palette.MoveCursor(1)
		return false, nil
	case "tab":
		if s := pm.palette.Suggest(); s != "" {
			pm.input.SetValue(s)
			pm.input.CursorEnd()
			return false, pm.syncQuery()
		}
		return false, nil
	case "enter":
		err := pm.palette.SelectCurrent()
		switch {
		case errors.Is(err, palette.ErrNoMatch):
			pm.notice = fmt.Sprintf("No results for %q", pm.palette.Query())
			return false, nil
		case err != nil:
			return true, actionMsg(ActionMsg{Action: ActionError, Payload: err})
		}
		return true, actionMsg(ActionMsg{Action: ActionCue})
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(km)
	return false, tea.Batch(cmd, pm.syncQuery())
}

func (pm *PaletteModal) syncQuery() tea.Cmd {
	pm.notice = ""
	if err := pm.palette.SetQuery(pm.input.Value()); err != nil {
		return actionMsg(ActionMsg{Action: ActionError, Payload: err})
	}
	return nil
}

func (pm *PaletteModal) View(width, height int) string {
	skin := pm.ctx.Skin
	modalWidth := min(56, width-4)

	rows := []string{pm.input.View(), ""}
	visible := pm.palette.Visible()
	cursor := pm.palette.Cursor()
	for i, e := range visible {
		style := lipgloss.NewStyle().Width(modalWidth - 6).Foreground(skin.color(skin.Text))
		marker := "  "
		if i == cursor {
			style = style.Foreground(skin.color(skin.Primary)).Bold(true)
			marker = "▸ "
		}
		rows = append(rows, style.Render(marker+e.Label))
	}
	if len(visible) == 0 {
		rows = append(rows, skin.muted().Render("No results found."))
		if s := pm.palette.Suggest(); s != "" {
			rows = append(rows, skin.accent().Render(fmt.Sprintf("Did you mean %q? (tab)", s)))
		}
	}
	if pm.notice != "" {
		rows = append(rows, "", skin.errorStyle().Render(pm.notice))
	}

	return renderModalFrame(skin, "Go to section", lipgloss.JoinVertical(lipgloss.Left, rows...),
		renderModalStatusBar("↑/↓: Move", "Enter: Go", "ESC: Close"),
		modalWidth, width, height)
}
