package over

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsim/internal/render"
	"github.com/vinser/gridsim/internal/report"
)

const (
	footer        = "↑ ↓ — scroll, q — quit"
	glamourGutter = 2
	// header and footer lines around the viewport
	pageChrome = 3
)

// Model shows the final simulation report.
type Model struct {
	width       int
	startHeight int
	termWidth   int
	termHeight  int

	viewport viewport.Model
}

// New renders the markdown report md into a scrollable viewport.
func New(md string, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	content, err := report.Render(md, width-vp.Style.GetHorizontalFrameSize()-glamourGutter)
	if err != nil {
		content = md
	}
	vp.SetContent(content)

	return Model{
		width:       width,
		startHeight: height,
		viewport:    vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if m.termHeight > 0 && m.startHeight > m.termHeight-pageChrome {
		m.viewport.Height = m.termHeight - pageChrome
	} else {
		m.viewport.Height = m.startHeight
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("Report", m.viewport.View(), footer, m.width, m.termWidth, m.termHeight)
}
