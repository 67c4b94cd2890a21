package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers popup over mainContent. The background is
// desaturated so the popup stands out; lines outside the popup box keep
// their text.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)

	baseLines := strings.Split(desaturate(mainContent, pr.styles.Palette.Muted), "\n")
	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}
	if height <= 0 {
		height = len(baseLines)
	}
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	for i, pl := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = splice(baseLines[row], pl, x, modalW)
	}
	return strings.Join(baseLines, "\n")
}

// splice writes overlay into line starting at column x, keeping the text
// on both sides
func splice(line, overlay string, x, overlayWidth int) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth < x {
		line += strings.Repeat(" ", x-lineWidth)
		lineWidth = x
	}
	left := ansi.Truncate(line, x, "")
	right := ""
	if lineWidth > x+overlayWidth {
		right = ansi.TruncateLeft(line, x+overlayWidth, "")
	}
	pad := overlayWidth - ansi.StringWidth(overlay)
	if pad > 0 {
		overlay += strings.Repeat(" ", pad)
	}
	return left + overlay + right
}

// desaturate strips styles and recolors text in the muted color
func desaturate(s string, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = style.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
