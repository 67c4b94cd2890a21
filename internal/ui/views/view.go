package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chemvista/internal/domain"
	"chemvista/internal/periodic"
	"chemvista/internal/suggest"
	"chemvista/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SearchInput     string // rendered text input
	SearchFocused   bool
	DropdownRows    []suggest.Row
	DropdownVisible bool
	Examples        []string

	Table      *periodic.Table
	Cursor     periodic.Position
	ShowCursor bool

	Modal         state.Modal
	Notice        string
	StatusMessage string
	ShowHelp      bool
	HelpContent   string
	HelpLine      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	dropRender  *DropdownRenderer
	modalRender *ModalRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(theme domain.Theme) *Renderer {
	r := &Renderer{}
	r.SetTheme(theme)
	return r
}

// SetTheme rebuilds the styles for theme
func (r *Renderer) SetTheme(theme domain.Theme) {
	styles := NewStyles(theme)
	r.styles = styles
	r.tableRender = NewTableRenderer(styles)
	r.dropRender = NewDropdownRenderer(styles)
	r.modalRender = NewModalRenderer(styles)
	r.popupRender = NewPopupRenderer(styles)
}

// Theme returns the theme styles are built for
func (r *Renderer) Theme() domain.Theme {
	return r.styles.Theme
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("ChemVista"))
	content.WriteString("  ")
	content.WriteString(r.styles.Status.Render(string(r.styles.Theme) + " theme"))
	content.WriteString("\n\n")

	box := r.styles.SearchBox
	if vs.SearchFocused {
		box = r.styles.SearchBoxFocus
	}
	content.WriteString(box.Render(vs.SearchInput))
	content.WriteString("\n")

	if vs.Notice != "" {
		content.WriteString(r.styles.Notice.Render("! " + vs.Notice))
		content.WriteString("\n")
	}

	switch {
	case vs.DropdownVisible && len(vs.DropdownRows) > 0:
		content.WriteString(r.dropRender.RenderRows(vs.DropdownRows))
		content.WriteString("\n")
	case len(vs.Examples) > 0:
		content.WriteString(r.dropRender.RenderExamples(vs.Examples))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.tableRender.RenderTable(vs.Table, vs.Cursor, vs.ShowCursor))
	content.WriteString("\n\n")
	if vs.Table != nil {
		if tip := r.tableRender.RenderTooltip(vs.Table.At(vs.Cursor)); tip != "" {
			content.WriteString(tip)
			content.WriteString("\n")
		}
	}
	content.WriteString(r.tableRender.RenderLegend())
	content.WriteString("\n")

	if vs.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(vs.StatusMessage))
	}

	// Push the key help to the bottom
	if vs.HelpLine != "" && !vs.ShowHelp {
		currentLines := strings.Count(content.String(), "\n") + 1
		if pad := vs.Height - currentLines - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.HelpLine))
	}

	main := content.String()
	if vs.Height > 0 {
		main = lipgloss.NewStyle().MaxHeight(vs.Height).Render(main)
	}

	if vs.Modal.Visible() {
		style := r.styles.Modal
		if vs.Modal.Phase != state.PhaseOpen {
			style = r.styles.ModalFading
		}
		var body string
		switch vs.Modal.Kind {
		case state.ModalElement:
			body = r.modalRender.RenderElement(vs.Modal.Element)
		case state.ModalCompound:
			body = r.modalRender.RenderCompound(vs.Modal.Compound)
		}
		return r.popupRender.RenderPopupOverlay(main, body, vs.Height, vs.Width, style)
	}

	if vs.ShowHelp && vs.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(main, vs.HelpContent, vs.Height, vs.Width, r.styles.Modal)
	}

	return main
}
