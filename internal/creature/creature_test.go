package creature

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
)

func newMap(t *testing.T) *grid.Map {
	t.Helper()
	m, err := grid.New(5, 5)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	c := New("", 42)
	assert.Equal(t, "Unknown", c.Name())
	assert.Equal(t, MaxLevel, c.Level())
	assert.Equal(t, 'U', c.Symbol())

	c = New("bob", -3)
	assert.Equal(t, MinLevel, c.Level())
	assert.Equal(t, "bob [1]", c.Info())
	assert.NotEqual(t, New("bob", 1).ID(), c.ID())

	_, placed := c.Position()
	assert.False(t, placed)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hi, I'm Toby, my level is 3.", New("Toby", 3).Greeting())
	assert.Equal(t, "Hi, I'm Elandor, my level is 2.", NewElf("Elandor", 2, 1).Greeting())
}

func TestUnplace(t *testing.T) {
	m := newMap(t)
	c := New("Toby", 1)
	assert.True(t, errors.Is(c.Unplace(), ErrNotPlaced))

	require.NoError(t, c.Place(m, posdir.Point{X: 1, Y: 1}))
	require.NoError(t, c.Unplace())
	_, placed := c.Position()
	assert.False(t, placed)
	assert.Nil(t, c.Map())
	assert.Empty(t, m.At(posdir.Point{X: 1, Y: 1}))

	require.NoError(t, c.Place(m, posdir.Point{X: 2, Y: 2}), "an unplaced creature can be placed again")
	assert.Len(t, m.At(posdir.Point{X: 2, Y: 2}), 1)
}

func TestNilCreature(t *testing.T) {
	m := newMap(t)
	var c *Creature
	assert.True(t, errors.Is(c.Place(m, posdir.Point{}), ErrNilCreature))
	_, placed := c.Position()
	assert.False(t, placed)

	var e *Elf
	assert.True(t, errors.Is(e.Place(m, posdir.Point{}), ErrNilCreature))
	assert.True(t, errors.Is((&Elf{}).Place(m, posdir.Point{}), ErrNilCreature))
	assert.Empty(t, m.At(posdir.Point{}))
}

func TestPlace(t *testing.T) {
	m := newMap(t)
	c := New("Toby", 1)

	err := c.Place(m, posdir.Point{X: 5, Y: 0})
	assert.True(t, errors.Is(err, grid.ErrOutOfRange))
	_, placed := c.Position()
	assert.False(t, placed)

	require.NoError(t, c.Place(m, posdir.Point{X: 2, Y: 3}))
	pos, placed := c.Position()
	assert.True(t, placed)
	assert.Equal(t, posdir.Point{X: 2, Y: 3}, pos)
	assert.Same(t, m, c.Map())
	assert.Equal(t, []grid.Mappable{c}, m.At(pos))

	err = c.Place(m, posdir.Point{X: 0, Y: 0})
	assert.True(t, errors.Is(err, ErrAlreadyPlaced))
}

func TestGo(t *testing.T) {
	tests := []struct {
		name  string
		start posdir.Point
		dir   posdir.Direction
		want  posdir.Point
	}{
		{name: "down", start: posdir.Point{X: 1, Y: 1}, dir: posdir.Down, want: posdir.Point{X: 1, Y: 2}},
		{name: "right", start: posdir.Point{X: 1, Y: 1}, dir: posdir.Right, want: posdir.Point{X: 2, Y: 1}},
		{name: "blocked up", start: posdir.Point{X: 0, Y: 0}, dir: posdir.Up, want: posdir.Point{X: 0, Y: 0}},
		{name: "blocked left", start: posdir.Point{X: 0, Y: 3}, dir: posdir.Left, want: posdir.Point{X: 0, Y: 3}},
		{name: "blocked right", start: posdir.Point{X: 4, Y: 3}, dir: posdir.Right, want: posdir.Point{X: 4, Y: 3}},
		{name: "blocked down", start: posdir.Point{X: 2, Y: 4}, dir: posdir.Down, want: posdir.Point{X: 2, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMap(t)
			c := New("Toby", 1)
			require.NoError(t, c.Place(m, tt.start))

			c.Go(tt.dir)

			pos, _ := c.Position()
			assert.Equal(t, tt.want, pos)
			assert.Equal(t, []grid.Mappable{c}, m.At(tt.want))
			if tt.want != tt.start {
				assert.Empty(t, m.At(tt.start))
			}
		})
	}
}

func TestGoUnplaced(t *testing.T) {
	c := New("Toby", 1)
	c.Go(posdir.Right)
	pos, placed := c.Position()
	assert.False(t, placed)
	assert.Equal(t, posdir.Point{}, pos)
}

func TestGoSharesCell(t *testing.T) {
	m := newMap(t)
	a, b := New("Ann", 1), New("Bea", 1)
	require.NoError(t, a.Place(m, posdir.Point{X: 1, Y: 1}))
	require.NoError(t, b.Place(m, posdir.Point{X: 1, Y: 2}))

	b.Go(posdir.Up)

	assert.Equal(t, []grid.Mappable{a, b}, m.At(posdir.Point{X: 1, Y: 1}))
}

func TestGoMaze(t *testing.T) {
	m, err := grid.NewMaze(21, 15, 3)
	require.NoError(t, err)

	for _, start := range m.OpenCells() {
		for _, d := range []posdir.Direction{posdir.Up, posdir.Right, posdir.Down, posdir.Left} {
			if m.IsWall(m.Next(start, d)) {
				c := New("Toby", 1)
				require.NoError(t, c.Place(m, start))
				c.Go(d)
				pos, _ := c.Position()
				assert.Equal(t, start, pos, "wall must stop the creature")
				return
			}
		}
	}
	t.Fatal("no open cell next to a wall")
}
