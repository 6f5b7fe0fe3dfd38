package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/gridsim/internal/creature"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/tally"
)

func newSim(t *testing.T, moves string) (*simulation.Simulation, *tally.Tally) {
	t.Helper()
	m, err := grid.New(5, 5)
	require.NoError(t, err)
	creatures := []simulation.Creature{creature.New("Ann", 1), creature.NewElf("Bea", 2, 3)}
	s, err := simulation.New(m, creatures, []posdir.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, moves)
	require.NoError(t, err)
	return s, tally.New(len(creatures))
}

func TestMarkdown(t *testing.T) {
	s, tl := newSim(t, "udX")
	require.NoError(t, s.Turn())
	ev, _ := s.Last()
	tl.Add(ev)

	md := Markdown(s, tl)
	assert.Contains(t, md, "# Simulation running")
	assert.Contains(t, md, "Map **5x5**, moves made **1** of **3**.")
	assert.Contains(t, md, "| 0 | Ann [1] | - | (0, 0) | (0, 0) | 0 | 1 | 0 |")
	assert.Contains(t, md, "| 1 | Bea [2][3] | 22 | (1, 1) | (1, 1) | 0 | 0 | 0 |")
	assert.Contains(t, md, "## Cast")
	assert.Contains(t, md, "- Hi, I'm Ann, my level is 1.")
	assert.Contains(t, md, "- Hi, I'm Bea, my level is 2.")
	assert.Contains(t, md, "Moves left: `dX`")

	require.NoError(t, s.Run())
	md = Markdown(s, tl)
	assert.Contains(t, md, "# Simulation finished")
	assert.NotContains(t, md, "Moves left")
}

func TestRender(t *testing.T) {
	s, tl := newSim(t, "")
	out, err := Render(Markdown(s, tl), 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Ann")
}
