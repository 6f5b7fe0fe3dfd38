package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsim/internal/style"
)

// Page renders a page with a title at the top, a content block and a footer
// at the bottom, centered in the terminal when its size is known.
func Page(title, renderedContent, footer string, width, termWidth, termHeight int) string {
	if w := lipgloss.Width(renderedContent); w > width {
		width = w
	}
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		style.TopPattern.Render(strings.Repeat("/", width)),
		style.Title.Render(title),
		style.Content.Render(renderedContent),
		style.Footer.Render(footer),
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
