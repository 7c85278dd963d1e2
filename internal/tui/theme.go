package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSkin is returned when a skin is neither built in nor found on disk.
var ErrUnknownSkin = errors.New("unknown skin")

// Skin is a named palette. Custom skins live in <configDir>/skins/<name>.yml
// and may omit any color; omitted colors fall back to the dark skin.
type Skin struct {
	Name    string `yaml:"name"`
	Dark    bool   `yaml:"dark"`
	Primary string `yaml:"primary"`
	Accent  string `yaml:"accent"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Hidden  string `yaml:"hidden"`
	Border  string `yaml:"border"`
	Bar     string `yaml:"bar"`
	Error   string `yaml:"error"`
	Success string `yaml:"success"`
	// Glamour is the glamour standard style used for markdown bodies.
	Glamour string `yaml:"glamour"`
}

var builtinSkins = map[string]Skin{
	"dark": {
		Name:    "dark",
		Dark:    true,
		Primary: "#8B5CF6",
		Accent:  "#3B82F6",
		Text:    "#E5E7EB",
		Muted:   "#9CA3AF",
		Hidden:  "#262626",
		Border:  "#4B5563",
		Bar:     "#A78BFA",
		Error:   "#EF4444",
		Success: "#22C55E",
		Glamour: "dark",
	},
	"light": {
		Name:    "light",
		Dark:    false,
		Primary: "#6D28D9",
		Accent:  "#2563EB",
		Text:    "#1F2937",
		Muted:   "#6B7280",
		Hidden:  "#E5E5E5",
		Border:  "#D1D5DB",
		Bar:     "#7C3AED",
		Error:   "#B91C1C",
		Success: "#15803D",
		Glamour: "light",
	},
}

// InitializeSkin resolves a skin by name. Built-in names win; anything else is
// read from configDir. On failure the dark skin is returned with the error so
// the caller can keep going.
func InitializeSkin(name, configDir string) (Skin, error) {
	if name == "" {
		name = "dark"
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}
	fallback := builtinSkins["dark"]
	if configDir == "" {
		return fallback, fmt.Errorf("skin %q: %w", name, ErrUnknownSkin)
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, fmt.Errorf("skin %q: %w", name, ErrUnknownSkin)
		}
		return fallback, fmt.Errorf("reading skin %s: %w", path, err)
	}

	custom := fallback
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return fallback, fmt.Errorf("parsing skin %s: %w", path, err)
	}
	if custom.Name == "" || custom.Name == fallback.Name {
		custom.Name = name
	}
	return custom, nil
}

// Toggled returns the built-in skin of the opposite brightness.
func (s Skin) Toggled() Skin {
	if s.Dark {
		return builtinSkins["light"]
	}
	return builtinSkins["dark"]
}

func (s Skin) color(c string) lipgloss.Color { return lipgloss.Color(c) }

func (s Skin) title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.Primary)).Bold(true)
}

func (s Skin) accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.Accent))
}

func (s Skin) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.Muted))
}

func (s Skin) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.Error)).Bold(true)
}

func (s Skin) card(selected bool) lipgloss.Style {
	border := s.color(s.Border)
	if selected {
		border = s.color(s.Primary)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
