package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/gridsim/internal/model/about"
	"github.com/vinser/gridsim/internal/model/over"
	"github.com/vinser/gridsim/internal/model/play"
	"github.com/vinser/gridsim/internal/report"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/tally"
)

type status uint

const (
	statusPlaying status = iota
	statusAbout
	statusReport
)

const (
	minReportWidth = 60
	reportHeight   = 20
	aboutWidth     = 60
	aboutHeight    = 16
)

type Model struct {
	status status
	sim    *simulation.Simulation
	tally  *tally.Tally
	// models
	play  play.Model
	about about.Model
	over  over.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New returns the root model driving sim. Turns are made automatically every
// interval unless paused, in which case the user steps them.
func New(sim *simulation.Simulation, interval time.Duration, paused bool) Model {
	tl := tally.New(len(sim.Creatures()))
	return Model{
		status: statusPlaying,
		sim:    sim,
		tally:  tl,
		play:   play.New(sim, tl, interval, paused),
	}
}

func (m Model) Init() tea.Cmd {
	return m.play.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.play.SetSize(msg.Width, msg.Height)
		m.about.SetSize(msg.Width, msg.Height)
		m.over.SetSize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusPlaying:
		switch msg.(type) {
		case play.FinishedMsg:
			m.status = statusReport
			m.over = m.newOver()
			return m, m.over.Init()
		case tea.KeyMsg:
			if msg.(tea.KeyMsg).String() == "a" {
				model, err := about.New(aboutWidth, aboutHeight)
				if err != nil {
					log.Printf("[ABOUT] %v", err)
					return m, nil
				}
				m.play.Pause()
				m.about = model
				m.about.SetSize(m.termWidth, m.termHeight)
				m.status = statusAbout
				return m, m.about.Init()
			}
			m.play, cmd = m.play.Update(msg)
		default:
			m.play, cmd = m.play.Update(msg)
		}
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusPlaying
			return m, tea.ClearScreen
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusReport:
		m.over, cmd = m.over.Update(msg)
	}
	return m, cmd
}

func (m Model) newOver() over.Model {
	width := 2 * m.sim.Map().SizeX()
	if width < minReportWidth {
		width = minReportWidth
	}
	model := over.New(report.Markdown(m.sim, m.tally), width, reportHeight)
	model.SetSize(m.termWidth, m.termHeight)
	return model
}

func (m Model) View() string {
	switch m.status {
	case statusPlaying:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusReport:
		return m.over.View()
	}
	return ""
}
