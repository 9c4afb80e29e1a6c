package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the board colors. Empty fields fall back to the defaults below.
type Theme struct {
	LightSquare string
	DarkSquare  string
	WhitePiece  string
	BlackPiece  string
	Label       string
	Highlight   string
	Error       string
}

var defaultTheme = Theme{
	LightSquare: "#B58863",
	DarkSquare:  "#6B4226",
	WhitePiece:  "#F8FAFC",
	BlackPiece:  "#1E293B",
	Label:       "#94A3B8",
	Highlight:   "#10B981",
	Error:       "#EF4444",
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return defaultTheme
}

func (t Theme) withDefaults() Theme {
	var d = defaultTheme
	if t.LightSquare == "" {
		t.LightSquare = d.LightSquare
	}
	if t.DarkSquare == "" {
		t.DarkSquare = d.DarkSquare
	}
	if t.WhitePiece == "" {
		t.WhitePiece = d.WhitePiece
	}
	if t.BlackPiece == "" {
		t.BlackPiece = d.BlackPiece
	}
	if t.Label == "" {
		t.Label = d.Label
	}
	if t.Highlight == "" {
		t.Highlight = d.Highlight
	}
	if t.Error == "" {
		t.Error = d.Error
	}
	return t
}

// cellStyles are the four background/foreground combinations a square can
// take, plus the highlighted pair for the en passant target.
type cellStyles struct {
	lightWhite lipgloss.Style
	lightBlack lipgloss.Style
	darkWhite  lipgloss.Style
	darkBlack  lipgloss.Style
	hiWhite    lipgloss.Style
	hiBlack    lipgloss.Style
	label      lipgloss.Style
	errText    lipgloss.Style
}

func newCellStyles(t Theme) cellStyles {
	var cell = lipgloss.NewStyle().Padding(0, 1)
	var light = cell.Background(lipgloss.Color(t.LightSquare))
	var dark = cell.Background(lipgloss.Color(t.DarkSquare))
	var hi = cell.Background(lipgloss.Color(t.Highlight))
	return cellStyles{
		lightWhite: light.Foreground(lipgloss.Color(t.WhitePiece)),
		lightBlack: light.Foreground(lipgloss.Color(t.BlackPiece)),
		darkWhite:  dark.Foreground(lipgloss.Color(t.WhitePiece)),
		darkBlack:  dark.Foreground(lipgloss.Color(t.BlackPiece)),
		hiWhite:    hi.Foreground(lipgloss.Color(t.WhitePiece)),
		hiBlack:    hi.Foreground(lipgloss.Color(t.BlackPiece)),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Label)),
		errText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Bold(true),
	}
}
