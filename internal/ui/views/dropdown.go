package views

import (
	"fmt"
	"strings"

	"chemvista/internal/suggest"
)

// DropdownRenderer draws the suggestion list under the search box
type DropdownRenderer struct {
	styles *Styles
}

// NewDropdownRenderer creates a new dropdown renderer
func NewDropdownRenderer(styles *Styles) *DropdownRenderer {
	return &DropdownRenderer{styles: styles}
}

// RenderRows renders one line per suggestion. Matched parts of the name
// are highlighted and the active row is marked.
func (dr *DropdownRenderer) RenderRows(rows []suggest.Row) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		var name strings.Builder
		for _, seg := range row.Segments {
			if seg.Match {
				name.WriteString(dr.styles.Match.Render(seg.Text))
			} else {
				name.WriteString(seg.Text)
			}
		}

		prefix := "  "
		style := dr.styles.Row
		if row.Active {
			prefix = "› "
			style = dr.styles.RowActive
		}
		line := prefix + name.String()
		if f := row.Suggestion.Formula; f != "" {
			line += "  " + dr.styles.Formula.Render(f)
		}
		lines[i] = style.Render(line)
	}
	return dr.styles.Dropdown.Render(strings.Join(lines, "\n"))
}

// RenderExamples renders the numbered example searches
func (dr *DropdownRenderer) RenderExamples(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	parts := make([]string, len(examples))
	for i, ex := range examples {
		parts[i] = dr.styles.ExampleKey.Render(fmt.Sprintf("%d ", i+1)) + dr.styles.Example.Render(ex)
	}
	return dr.styles.Status.Render("Try: ") + strings.Join(parts, "  ")
}
