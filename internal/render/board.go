package render

import (
	"strconv"
	"strings"

	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/style"
)

const (
	wallSprite  = "▒▒"
	floorSprite = "╺╸"
)

// Board draws the map two columns per cell. Creatures are drawn with their
// symbol, a crowded cell shows the first symbol and the occupant count.
// The creature with index active is highlighted; pass -1 for none.
func Board(m *grid.Map, creatures []simulation.Creature, active int) string {
	index := make(map[any]int, len(creatures))
	for i, c := range creatures {
		index[c] = i
	}

	var sb strings.Builder
	for y := 0; y < m.SizeY(); y++ {
		for x := 0; x < m.SizeX(); x++ {
			p := posdir.Point{X: x, Y: y}
			sb.WriteString(cell(m, p, index, active))
		}
		if y < m.SizeY()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cell(m *grid.Map, p posdir.Point, index map[any]int, active int) string {
	if m.IsWall(p) {
		return style.Wall.Render(wallSprite)
	}
	occupants := m.At(p)
	switch len(occupants) {
	case 0:
		return style.Floor.Render(floorSprite)
	case 1:
		sprite := string(occupants[0].Symbol()) + " "
		i, ok := index[occupants[0]]
		if !ok {
			return sprite
		}
		if i == active {
			return style.Creature(i).Inherit(style.Active).Render(sprite)
		}
		return style.Creature(i).Render(sprite)
	default:
		n := strconv.Itoa(len(occupants))
		if len(occupants) > 9 {
			n = "+"
		}
		return style.Crowd.Render(string(occupants[0].Symbol()) + n)
	}
}

// movesWindow is how many commands are shown on each side of the cursor.
const movesWindow = 20

// Moves draws the move string around the cursor: made moves dimmed
// (unrecognized ones struck through) and the coming move highlighted.
func Moves(s *simulation.Simulation) string {
	made := []rune(s.Made())
	rest := []rune(s.Moves())
	if len(made) > movesWindow {
		made = made[len(made)-movesWindow:]
	}
	if len(rest) > movesWindow {
		rest = rest[:movesWindow]
	}

	var sb strings.Builder
	for _, r := range made {
		if len(posdir.Parse(string(r))) == 0 {
			sb.WriteString(style.Skipped.Render(string(r)))
			continue
		}
		sb.WriteString(style.Moves.Render(string(r)))
	}
	for i, r := range rest {
		if i == 0 {
			sb.WriteString(style.NextMove.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
