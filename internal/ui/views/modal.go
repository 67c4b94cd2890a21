package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chemvista/internal/domain"
)

const modalWidth = 52

// ModalRenderer builds the content of the element and compound modals
type ModalRenderer struct {
	styles *Styles
}

// NewModalRenderer creates a new modal renderer
func NewModalRenderer(styles *Styles) *ModalRenderer {
	return &ModalRenderer{styles: styles}
}

// RenderElement shows an element's details
func (mr *ModalRenderer) RenderElement(e domain.Element) string {
	var b strings.Builder
	b.WriteString(mr.styles.ModalTitle.Render(fmt.Sprintf("%s (%s)", e.Name, e.Symbol)))
	b.WriteString("\n\n")
	mr.field(&b, "Atomic Number", fmt.Sprintf("%d", e.AtomicNumber))
	mr.field(&b, "Atomic Mass", fmt.Sprintf("%.3f", e.AtomicMass))
	mr.field(&b, "Category", domain.FormatCategory(e.Category))
	if e.ElectronConfig != "" {
		mr.field(&b, "Electron Config", e.ElectronConfig)
	}

	desc := e.Description
	if desc == "" {
		desc = "No description available."
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(modalWidth).Render(desc))
	b.WriteString("\n\n")
	b.WriteString(mr.styles.Help.Render("o open page · esc close"))
	return b.String()
}

// RenderCompound shows a suggestion previewed from the dropdown
func (mr *ModalRenderer) RenderCompound(c domain.Suggestion) string {
	var b strings.Builder
	b.WriteString(mr.styles.ModalTitle.Render(c.Name))
	b.WriteString("\n\n")
	mr.field(&b, "Formula", c.Formula)
	if c.MolecularWeight > 0 {
		mr.field(&b, "Molecular Weight", fmt.Sprintf("%.2f g/mol", c.MolecularWeight))
	}
	b.WriteString("\n")
	b.WriteString(mr.styles.Help.Render("esc close"))
	return b.String()
}

func (mr *ModalRenderer) field(b *strings.Builder, label, value string) {
	b.WriteString(mr.styles.Label.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}
