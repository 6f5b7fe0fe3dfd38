package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/tally"
)

// infoer is implemented by creatures that describe themselves.
type infoer interface {
	Info() string
}

type powerer interface {
	Power() int
}

type greeter interface {
	Greeting() string
}

// Markdown summarizes a simulation as a markdown document.
func Markdown(s *simulation.Simulation, t *tally.Tally) string {
	var sb strings.Builder

	status := "running"
	if s.Finished() {
		status = "finished"
	}
	fmt.Fprintf(&sb, "# Simulation %s\n\n", status)
	fmt.Fprintf(&sb, "Map **%dx%d**, moves made **%d** of **%d**.\n\n",
		s.Map().SizeX(), s.Map().SizeY(), s.Consumed(), s.Len())

	sb.WriteString("| # | Creature | Power | Start | Position | Moved | Blocked | Skipped |\n")
	sb.WriteString("|---|----------|-------|-------|----------|-------|---------|---------|\n")
	starts := s.Positions()
	for i, c := range s.Creatures() {
		name := c.Name()
		if in, ok := c.(infoer); ok {
			name = in.Info()
		}
		power := "-"
		if pw, ok := c.(powerer); ok {
			power = strconv.Itoa(pw.Power())
		}
		pos := "-"
		if p, placed := c.Position(); placed {
			pos = p.String()
		}
		cnt := t.Get(i)
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %d | %d | %d |\n",
			i, escape(name), power, starts[i], pos, cnt.Moved, cnt.Blocked, cnt.Skipped)
	}

	var hello []string
	for _, c := range s.Creatures() {
		if g, ok := c.(greeter); ok {
			hello = append(hello, "- "+g.Greeting())
		}
	}
	if len(hello) > 0 {
		fmt.Fprintf(&sb, "\n## Cast\n\n%s\n", strings.Join(hello, "\n"))
	}

	if rest := s.Moves(); rest != "" {
		fmt.Fprintf(&sb, "\nMoves left: `%s`\n", rest)
	}
	return sb.String()
}

// Render renders markdown for a terminal of the given width.
func Render(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", errors.Wrap(err, "create markdown renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return out, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
