package about

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsim/internal/embeddata"
	"github.com/vinser/gridsim/internal/render"
	"github.com/vinser/gridsim/internal/report"
)

const (
	footer        = "↑ ↓ — scroll, esc — back, q — quit"
	glamourGutter = 2
	pageChrome    = 3
)

type Model struct {
	width       int
	startHeight int
	termWidth   int
	termHeight  int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New shows the built-in help text.
func New(width, height int) (Model, error) {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		return Model{}, err
	}

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	content, err := report.Render(string(bytes), width-vp.Style.GetHorizontalFrameSize()-glamourGutter)
	if err != nil {
		content = string(bytes) //noop
	}
	vp.SetContent(content)

	return Model{
		width:       width,
		startHeight: height,
		viewport:    vp,
	}, nil
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
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), footer, m.width, m.termWidth, m.termHeight)
}
