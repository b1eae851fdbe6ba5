package layout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/model"
)

// ThemeName is the user-facing theme choice
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// ParseThemeName parses "light" or "dark"
func ParseThemeName(s string) (ThemeName, error) {
	switch ThemeName(s) {
	case ThemeLight, ThemeDark:
		return ThemeName(s), nil
	}
	return "", fmt.Errorf("invalid theme '%s': must be light or dark", s)
}

// Toggle returns the other theme
func (n ThemeName) Toggle() ThemeName {
	if n == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds the colors of one theme
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Check     lipgloss.Color
	Chip      lipgloss.Color
	TypeBadge lipgloss.Color
	Tiers     map[model.TierColor]lipgloss.Color
}

var palettes = map[ThemeName]Palette{
	ThemeLight: {
		Text:      "#111827",
		Muted:     "#6B7280",
		Border:    "#D1D5DB",
		Accent:    "#2563EB",
		Error:     "#DC2626",
		Check:     "#16A34A",
		Chip:      "#374151",
		TypeBadge: "#4B5563",
		Tiers: map[model.TierColor]lipgloss.Color{
			model.TierGreen:  "#15803D",
			model.TierBlue:   "#1D4ED8",
			model.TierIndigo: "#4338CA",
			model.TierPurple: "#7E22CE",
			model.TierPink:   "#BE185D",
			model.TierOrange: "#C2410C",
			model.TierGray:   "#374151",
		},
	},
	ThemeDark: {
		Text:      "#F3F4F6",
		Muted:     "#9CA3AF",
		Border:    "#4B5563",
		Accent:    "#60A5FA",
		Error:     "#F87171",
		Check:     "#4ADE80",
		Chip:      "#D1D5DB",
		TypeBadge: "#D1D5DB",
		Tiers: map[model.TierColor]lipgloss.Color{
			model.TierGreen:  "#4ADE80",
			model.TierBlue:   "#60A5FA",
			model.TierIndigo: "#818CF8",
			model.TierPurple: "#C084FC",
			model.TierPink:   "#F472B6",
			model.TierOrange: "#FB923C",
			model.TierGray:   "#D1D5DB",
		},
	},
}

// Theme builds lipgloss styles for one palette on one renderer
type Theme struct {
	name     ThemeName
	palette  Palette
	renderer *lipgloss.Renderer
}

// NewTheme creates a theme; a nil renderer uses the lipgloss default
func NewTheme(name ThemeName, r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p, ok := palettes[name]
	if !ok {
		name = ThemeLight
		p = palettes[ThemeLight]
	}
	return &Theme{name: name, palette: p, renderer: r}
}

// Name returns the theme name
func (t *Theme) Name() ThemeName {
	return t.name
}

// Palette returns the theme colors
func (t *Theme) Palette() Palette {
	return t.palette
}

// Renderer returns the lipgloss renderer the styles are bound to
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Style returns an empty style bound to the theme's renderer
func (t *Theme) Style() lipgloss.Style {
	return t.renderer.NewStyle()
}

// Tier returns the badge style of a tier name
func (t *Theme) Tier(name string) lipgloss.Style {
	c, ok := t.palette.Tiers[model.TierColorFor(name)]
	if !ok {
		c = t.palette.Tiers[model.DefaultTierColor]
	}
	return t.Style().Foreground(c).Bold(true)
}

func (t *Theme) Text() lipgloss.Style {
	return t.Style().Foreground(t.palette.Text)
}

func (t *Theme) Muted() lipgloss.Style {
	return t.Style().Foreground(t.palette.Muted)
}

func (t *Theme) Accent() lipgloss.Style {
	return t.Style().Foreground(t.palette.Accent).Bold(true)
}

func (t *Theme) Error() lipgloss.Style {
	return t.Style().Foreground(t.palette.Error).Bold(true)
}

// Heading styles section labels such as MODELS
func (t *Theme) Heading() lipgloss.Style {
	return t.Style().Foreground(t.palette.Muted).Bold(true)
}

func (t *Theme) Check() lipgloss.Style {
	return t.Style().Foreground(t.palette.Check)
}

func (t *Theme) Chip() lipgloss.Style {
	return t.Style().Foreground(t.palette.Chip)
}

func (t *Theme) TypeBadge() lipgloss.Style {
	return t.Style().Foreground(t.palette.TypeBadge).Italic(true)
}

// Box is the card frame; width is the total rendered width including the border
func (t *Theme) Box(width int) lipgloss.Style {
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.palette.Border).
		Padding(0, 1).
		Width(width - 2)
}

// Placeholder is the frame of an empty column
func (t *Theme) Placeholder(width int) lipgloss.Style {
	dashed := lipgloss.Border{
		Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}
	return t.Style().
		Border(dashed).
		BorderForeground(t.palette.Border).
		Foreground(t.palette.Muted).
		Padding(1, 1).
		Width(width - 2).
		Align(lipgloss.Center)
}
