package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/gridsim/internal/creature"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
	"github.com/vinser/gridsim/internal/simulation"
)

func newSim(t *testing.T, moves string) *simulation.Simulation {
	t.Helper()
	m, err := grid.New(5, 5)
	require.NoError(t, err)
	creatures := []simulation.Creature{creature.New("Ann", 1), creature.NewElf("Bea", 1, 1), creature.New("Cid", 1)}
	s, err := simulation.New(m, creatures, []posdir.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 1}}, moves)
	require.NoError(t, err)
	return s
}

func TestBoard(t *testing.T) {
	s := newSim(t, "")
	lines := strings.Split(ansi.Strip(Board(s.Map(), s.Creatures(), 0)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "A ╺╸╺╸╺╸╺╸", lines[0])
	assert.Equal(t, "╺╸╺╸b2╺╸╺╸", lines[1])
	assert.Equal(t, "╺╸╺╸╺╸╺╸╺╸", lines[4])
}

func TestBoardMaze(t *testing.T) {
	m, err := grid.NewMaze(21, 15, 1)
	require.NoError(t, err)
	out := ansi.Strip(Board(m, nil, -1))
	assert.Contains(t, out, wallSprite)
	assert.Len(t, strings.Split(out, "\n"), 15)
}

func TestMoves(t *testing.T) {
	s := newSim(t, "uXdr")
	require.NoError(t, s.Turn())
	require.NoError(t, s.Turn())
	assert.Equal(t, "uXdr", ansi.Strip(Moves(s)))

	long := newSim(t, strings.Repeat("u", 30)+strings.Repeat("d", 30))
	for i := 0; i < 30; i++ {
		require.NoError(t, long.Turn())
	}
	assert.Equal(t, strings.Repeat("u", movesWindow)+strings.Repeat("d", movesWindow), ansi.Strip(Moves(long)))
}

func TestPage(t *testing.T) {
	out := ansi.Strip(Page("Title", "body", "footer", 10, 0, 0))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("/", 10), lines[0])
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[2], "body")
	assert.Contains(t, lines[3], "footer")
}
