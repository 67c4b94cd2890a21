package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent renders the help page shown in the pager or, when the
// pager fails, in a popup
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	var help strings.Builder

	help.WriteString(titleStyle.Render("ChemVista Help"))
	help.WriteString("\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Periodic Table", []key.Binding{r.keys.Move, r.keys.Open, r.keys.Page, r.keys.Examples}},
		{"Search", []key.Binding{r.keys.Search, r.keys.Suggest, r.keys.Submit, r.keys.Preview, r.keys.Dismiss}},
		{"Other", []key.Binding{r.keys.Theme, r.keys.Help, r.keys.Quit}},
	}
	for i, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			help.WriteString(r.line(b))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Suggestions appear after two characters; pages open in the pager or browser."))

	return help.String()
}

func (r *HelpRenderer) line(b key.Binding) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h := b.Help()
	return fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
}
