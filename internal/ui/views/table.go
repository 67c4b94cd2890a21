package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chemvista/internal/domain"
	"chemvista/internal/periodic"
)

const cellWidth = 4

// TableRenderer draws the periodic table and the tooltip for the cursor
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// RenderTable draws the main grid, a spacer line and the two f-block rows
func (tr *TableRenderer) RenderTable(table *periodic.Table, cursor periodic.Position, showCursor bool) string {
	if table == nil || table.Len() == 0 {
		return tr.styles.Dim.Render("No element data loaded.")
	}

	lines := make([]string, 0, periodic.TotalRows+1)
	for row := 0; row < periodic.TotalRows; row++ {
		if row == periodic.LanthanideRow {
			lines = append(lines, "")
		}
		var b strings.Builder
		for col := 0; col < periodic.Columns; col++ {
			pos := periodic.Position{Row: row, Col: col}
			b.WriteString(tr.renderCell(table.At(pos), showCursor && pos == cursor))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

func (tr *TableRenderer) renderCell(cell periodic.Cell, selected bool) string {
	switch cell.Kind {
	case periodic.CellElement:
		if selected {
			return tr.styles.Cursor.Render(cell.Element.Symbol)
		}
		return tr.styles.CategoryStyle(cell.Element.Category).Render(cell.Element.Symbol)
	case periodic.CellPlaceholder:
		mark := "*"
		if strings.HasSuffix(cell.Label, "**") {
			mark = "**"
		}
		if selected {
			return tr.styles.Cursor.Render(mark)
		}
		return tr.styles.Placeholder.Render(mark)
	}
	return strings.Repeat(" ", cellWidth)
}

// RenderTooltip describes the cell under the cursor on one line
func (tr *TableRenderer) RenderTooltip(cell periodic.Cell) string {
	switch cell.Kind {
	case periodic.CellElement:
		e := cell.Element
		return tr.styles.Tooltip.Render(fmt.Sprintf("%s (%s)  #%d  %.3f u  %s",
			e.Name, e.Symbol, e.AtomicNumber, e.AtomicMass, domain.FormatCategory(e.Category)))
	case periodic.CellPlaceholder:
		return tr.styles.Tooltip.Render(fmt.Sprintf("%s  elements %d-%d, press enter to jump",
			cell.Label, cell.RangeStart, cell.RangeEnd))
	}
	return ""
}

// RenderLegend lists the category colors
func (tr *TableRenderer) RenderLegend() string {
	order := []string{
		domain.CategoryAlkaliMetal,
		domain.CategoryAlkalineEarthMetal,
		domain.CategoryTransitionMetal,
		domain.CategoryPostTransitionMetal,
		domain.CategoryMetalloid,
		domain.CategoryNonmetal,
		domain.CategoryHalogen,
		domain.CategoryNobleGas,
		domain.CategoryLanthanide,
		domain.CategoryActinide,
	}
	parts := make([]string, 0, len(order))
	for _, c := range order {
		swatch := lipgloss.NewStyle().Background(tr.styles.Palette.Categories[c]).Render("  ")
		parts = append(parts, swatch+" "+tr.styles.Status.Render(domain.FormatCategory(c)))
	}
	half := (len(parts) + 1) / 2
	return strings.Join(parts[:half], "  ") + "\n" + strings.Join(parts[half:], "  ")
}
