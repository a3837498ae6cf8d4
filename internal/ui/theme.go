package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taskpane/internal/tasks"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Unfocused panes
	FocusBg    string // Focused pane

	// Selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Task status colors, keyed by tasks.Status
	StatusColors map[tasks.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Logo   lipgloss.Style
}

// WithBackground returns a copy of Styles with every text style on bgColor,
// so styled segments never fall back to the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
	}
}

// StatusColor returns the color for a task status, falling back to Muted.
func (t Theme) StatusColor(status tasks.Status) string {
	if c, ok := t.StatusColors[status]; ok && c != "" {
		return c
	}
	return t.Muted
}

// Theme definitions

// palette is the small set of base colors a theme is derived from. bg runs
// from the outermost background to the border shade.
type palette struct {
	name    string
	bg      [5]string
	sel     string
	fg      string
	comment string
	faint   string
	blue    string
	cyan    string
	green   string
	yellow  string
	red     string
}

func (p palette) theme() Theme {
	return Theme{
		Name:          p.name,
		Background:    p.bg[0],
		Surface:       p.bg[1],
		SurfaceAlt:    p.bg[2],
		FocusBg:       p.bg[3],
		SelectionBg:   p.sel,
		SelectionText: p.fg,
		Border:        p.bg[4],
		BorderFocus:   p.blue,
		Text:          p.fg,
		Muted:         p.comment,
		Faint:         p.faint,
		Accent:        p.blue,
		Success:       p.green,
		Warning:       p.yellow,
		Danger:        p.red,
		StatusColors: map[tasks.Status]string{
			tasks.StatusOpen:       p.cyan,
			tasks.StatusInProgress: p.yellow,
			tasks.StatusDone:       p.green,
		},
	}
}

// palettes lists the themes in cycle order. The first is the default.
var palettes = []palette{
	{
		// https://github.com/EdenEast/nightfox.nvim
		name:    "Nightfox",
		bg:      [5]string{"#131a24", "#192330", "#212e3f", "#29394f", "#39506d"},
		sel:     "#2b3b51",
		fg:      "#cdcecf",
		comment: "#738091",
		faint:   "#71839b",
		blue:    "#719cd6",
		cyan:    "#63cdcf",
		green:   "#81b29a",
		yellow:  "#dbc074",
		red:     "#c94f6d",
	},
	{
		// https://github.com/rebelot/kanagawa.nvim
		name:    "Kanagawa",
		bg:      [5]string{"#16161D", "#1F1F28", "#2A2A37", "#363646", "#54546D"},
		sel:     "#2D4F67",
		fg:      "#DCD7BA",
		comment: "#C8C093",
		faint:   "#727169",
		blue:    "#7E9CD8",
		cyan:    "#7FB4CA",
		green:   "#98BB6C",
		yellow:  "#E6C384",
		red:     "#E46876",
	},
	{
		// Tailwind slate and sky
		name:    "Slate",
		bg:      [5]string{"#020617", "#0f172a", "#1e293b", "#283548", "#334155"},
		sel:     "#0284c7",
		fg:      "#f1f5f9",
		comment: "#94a3b8",
		faint:   "#64748b",
		blue:    "#38bdf8",
		cyan:    "#22d3ee",
		green:   "#22c55e",
		yellow:  "#f59e0b",
		red:     "#ef4444",
	},
}

// GetTheme returns a theme by name, defaulting to the first palette.
func GetTheme(name string) Theme {
	for _, p := range palettes {
		if p.name == name {
			return p.theme()
		}
	}
	return palettes[0].theme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, p := range palettes {
		if p.name == current {
			return palettes[(i+1)%len(palettes)].name
		}
	}
	return palettes[0].name
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.name
	}
	return names
}
