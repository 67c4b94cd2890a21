package views

import (
	"github.com/charmbracelet/lipgloss"

	"chemvista/internal/domain"
)

// Palette holds the colors of one theme
type Palette struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Selection  lipgloss.Color
	Notice     lipgloss.Color
	CellText   lipgloss.Color
	Categories map[string]lipgloss.Color
}

var lightPalette = Palette{
	Text:      lipgloss.Color("235"),
	Muted:     lipgloss.Color("244"),
	Accent:    lipgloss.Color("63"),
	Border:    lipgloss.Color("250"),
	Highlight: lipgloss.Color("160"),
	Selection: lipgloss.Color("153"),
	Notice:    lipgloss.Color("166"),
	CellText:  lipgloss.Color("232"),
	Categories: map[string]lipgloss.Color{
		domain.CategoryAlkaliMetal:         lipgloss.Color("210"),
		domain.CategoryAlkalineEarthMetal:  lipgloss.Color("222"),
		domain.CategoryTransitionMetal:     lipgloss.Color("153"),
		domain.CategoryPostTransitionMetal: lipgloss.Color("151"),
		domain.CategoryMetalloid:           lipgloss.Color("187"),
		domain.CategoryNonmetal:            lipgloss.Color("157"),
		domain.CategoryHalogen:             lipgloss.Color("229"),
		domain.CategoryNobleGas:            lipgloss.Color("183"),
		domain.CategoryLanthanide:          lipgloss.Color("218"),
		domain.CategoryActinide:            lipgloss.Color("224"),
	},
}

var darkPalette = Palette{
	Text:      lipgloss.Color("252"),
	Muted:     lipgloss.Color("241"),
	Accent:    lipgloss.Color("99"),
	Border:    lipgloss.Color("238"),
	Highlight: lipgloss.Color("226"),
	Selection: lipgloss.Color("238"),
	Notice:    lipgloss.Color("214"),
	CellText:  lipgloss.Color("255"),
	Categories: map[string]lipgloss.Color{
		domain.CategoryAlkaliMetal:         lipgloss.Color("124"),
		domain.CategoryAlkalineEarthMetal:  lipgloss.Color("130"),
		domain.CategoryTransitionMetal:     lipgloss.Color("25"),
		domain.CategoryPostTransitionMetal: lipgloss.Color("29"),
		domain.CategoryMetalloid:           lipgloss.Color("58"),
		domain.CategoryNonmetal:            lipgloss.Color("22"),
		domain.CategoryHalogen:             lipgloss.Color("100"),
		domain.CategoryNobleGas:            lipgloss.Color("54"),
		domain.CategoryLanthanide:          lipgloss.Color("89"),
		domain.CategoryActinide:            lipgloss.Color("94"),
	},
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Theme   domain.Theme
	Palette Palette

	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Notice         lipgloss.Style
	Help           lipgloss.Style
	SearchBox      lipgloss.Style
	SearchBoxFocus lipgloss.Style
	Dropdown       lipgloss.Style
	Row            lipgloss.Style
	RowActive      lipgloss.Style
	Match          lipgloss.Style
	Formula        lipgloss.Style
	Example        lipgloss.Style
	ExampleKey     lipgloss.Style
	Cell           lipgloss.Style
	Cursor         lipgloss.Style
	Placeholder    lipgloss.Style
	Tooltip        lipgloss.Style
	Modal          lipgloss.Style
	ModalFading    lipgloss.Style
	ModalTitle     lipgloss.Style
	Label          lipgloss.Style
}

// NewStyles creates the styles for a theme
func NewStyles(theme domain.Theme) *Styles {
	p := lightPalette
	if theme == domain.ThemeDark {
		p = darkPalette
	}

	return &Styles{
		Theme:   theme,
		Palette: p,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(p.Muted),
		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Notice),
		Help: lipgloss.NewStyle().Foreground(p.Muted),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		SearchBoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Row:         lipgloss.NewStyle().Foreground(p.Text),
		RowActive:   lipgloss.NewStyle().Foreground(p.Text).Background(p.Selection).Bold(true),
		Match:       lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Formula:     lipgloss.NewStyle().Foreground(p.Muted),
		Example:     lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		ExampleKey:  lipgloss.NewStyle().Foreground(p.Muted),
		Cell:        lipgloss.NewStyle().Foreground(p.CellText).Width(cellWidth).Align(lipgloss.Center),
		Cursor:      lipgloss.NewStyle().Reverse(true).Bold(true).Width(cellWidth).Align(lipgloss.Center),
		Placeholder: lipgloss.NewStyle().Foreground(p.Muted).Width(cellWidth).Align(lipgloss.Center),
		Tooltip:     lipgloss.NewStyle().Foreground(p.Text).Italic(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		ModalFading: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Faint(true).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Label:      lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// CategoryStyle colors a table cell by element category
func (s *Styles) CategoryStyle(category string) lipgloss.Style {
	style := s.Cell
	if c, ok := s.Palette.Categories[category]; ok {
		style = style.Background(c)
	}
	return style
}
