package play

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsim/internal/render"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/style"
	"github.com/vinser/gridsim/internal/tally"
)

type keyMap struct {
	Step  key.Binding
	Pause key.Binding
	Help  key.Binding
	About key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Step, k.Pause}, {k.Help, k.About, k.Quit}}
}

var keys = keyMap{
	Step: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "next turn"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	About: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "about"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TickMsg triggers an automatic turn. Ticks of an older generation are
// dropped so that pausing and resuming never runs two tick chains.
type TickMsg struct {
	gen int
}

func tick(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

// FinishedMsg is sent once all moves have been made.
type FinishedMsg struct{}

func finishedCmd() tea.Cmd {
	return func() tea.Msg {
		return FinishedMsg{}
	}
}

type Model struct {
	sim        *simulation.Simulation
	tally      *tally.Tally
	help       help.Model
	interval   time.Duration
	gen        int
	paused     bool
	last       string
	termWidth  int
	termHeight int
}

// New returns a play model that makes a turn every interval.
func New(sim *simulation.Simulation, tl *tally.Tally, interval time.Duration, paused bool) Model {
	m := Model{
		sim:      sim,
		tally:    tl,
		help:     help.New(),
		interval: interval,
		paused:   paused,
	}
	if g, ok := sim.Creatures()[0].(greeter); ok {
		m.last = g.Greeting()
	}
	return m
}

type greeter interface {
	Greeting() string
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.help.Width = width
}

func (m Model) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return tick(m.interval, m.gen)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.paused || msg.gen != m.gen {
			return m, nil
		}
		if cmd := m.turn(); cmd != nil {
			return m, cmd
		}
		return m, tick(m.interval, m.gen)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Step):
			return m, m.turn()
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
			if m.paused {
				return m, nil
			}
			m.gen++
			return m, tick(m.interval, m.gen)
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// turn makes one simulation turn and returns finishedCmd once nothing is left.
func (m *Model) turn() tea.Cmd {
	if m.sim.Finished() {
		return finishedCmd()
	}
	if err := m.sim.Turn(); err != nil {
		log.Printf("[TURN] %v", err)
		return finishedCmd()
	}
	if ev, ok := m.sim.Last(); ok {
		m.tally.Add(ev)
		m.last = describe(ev)
		log.Printf("[TURN] #%d %s", ev.Turn+1, m.last)
	}
	if m.sim.Finished() {
		return finishedCmd()
	}
	return nil
}

func describe(ev simulation.Event) string {
	switch {
	case !ev.Parsed && ev.Song != "":
		return fmt.Sprintf("%s skips %q. %s", ev.Name, ev.Command, ev.Song)
	case !ev.Parsed:
		return fmt.Sprintf("%s skips %q", ev.Name, ev.Command)
	case ev.Moved():
		return fmt.Sprintf("%s goes %s %s -> %s", ev.Name, ev.Direction, ev.From, ev.To)
	default:
		return fmt.Sprintf("%s cannot go %s from %s", ev.Name, ev.Direction, ev.From)
	}
}

// Pause stops automatic turns. Pending ticks are dropped.
func (m *Model) Pause() {
	m.paused = true
}

// Paused reports whether automatic turns are stopped.
func (m Model) Paused() bool {
	return m.paused
}

func (m Model) View() string {
	active, ok := m.sim.Next()
	if !ok {
		active = -1
	}

	header := fmt.Sprintf("Turn %d/%d", m.sim.Consumed(), m.sim.Len())
	if ok {
		header += "  next: " + style.Creature(active).Render(m.sim.Creatures()[active].Name())
	}
	if m.paused {
		header += "  " + style.Paused.Render("PAUSED")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		render.Board(m.sim.Map(), m.sim.Creatures(), active),
		"",
		render.Moves(m.sim),
		m.last,
	)
	return render.Page("Simulation", content, m.help.View(keys), 2*m.sim.Map().SizeX(), m.termWidth, m.termHeight)
}
