package grid

import (
	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/posdir"
)

var (
	ErrOutOfRange = errors.New("out of range")
	ErrBlocked    = errors.New("cell is blocked")
	ErrNotOnMap   = errors.New("not on map")
)

// Map kinds as named in scenarios and on the command line.
const (
	KindSmall = "small"
	KindMaze  = "maze"
)

// Mappable is anything that can occupy a map cell.
type Mappable interface {
	Name() string
	Symbol() rune
}

// Limits is the size policy of a map variant.
type Limits struct {
	MinX, MinY int
	MaxX, MaxY int
}

var (
	// SmallLimits bounds the small map variant.
	SmallLimits = Limits{MinX: 5, MinY: 5, MaxX: 20, MaxY: 20}
	// MazeLimits bounds maze shaped maps.
	MazeLimits = Limits{MinX: 11, MinY: 9, MaxX: 41, MaxY: 31}
)

// Map is a bounded 2-D grid that tracks which entities occupy which cell.
type Map struct {
	sizeX, sizeY int
	fields       [][][]Mappable // [y][x]
	walls        [][]bool       // [y][x], nil for open maps
}

// New returns an empty small map.
func New(sizeX, sizeY int) (*Map, error) {
	return NewWithLimits(sizeX, sizeY, SmallLimits)
}

// NewWithLimits returns an empty map after checking its size against lim.
func NewWithLimits(sizeX, sizeY int, lim Limits) (*Map, error) {
	if sizeX < lim.MinX || sizeX > lim.MaxX {
		return nil, errors.Wrapf(ErrOutOfRange, "map width %d must be between %d and %d", sizeX, lim.MinX, lim.MaxX)
	}
	if sizeY < lim.MinY || sizeY > lim.MaxY {
		return nil, errors.Wrapf(ErrOutOfRange, "map height %d must be between %d and %d", sizeY, lim.MinY, lim.MaxY)
	}
	fields := make([][][]Mappable, sizeY)
	for y := range fields {
		fields[y] = make([][]Mappable, sizeX)
	}
	return &Map{sizeX: sizeX, sizeY: sizeY, fields: fields}, nil
}

// SizeX returns the map width.
func (m *Map) SizeX() int { return m.sizeX }

// SizeY returns the map height.
func (m *Map) SizeY() int { return m.sizeY }

// Fields exposes the occupancy grid indexed [y][x]. Callers must treat it as read-only.
func (m *Map) Fields() [][][]Mappable { return m.fields }

// At returns the occupants of p in arrival order.
func (m *Map) At(p posdir.Point) []Mappable {
	if !m.Exists(p) {
		return nil
	}
	cell := m.fields[p.Y][p.X]
	out := make([]Mappable, len(cell))
	copy(out, cell)
	return out
}

// Exists reports whether p lies within the map.
func (m *Map) Exists(p posdir.Point) bool {
	return p.X >= 0 && p.X < m.sizeX && p.Y >= 0 && p.Y < m.sizeY
}

// IsWall reports whether p is a wall cell.
func (m *Map) IsWall(p posdir.Point) bool {
	return m.walls != nil && m.Exists(p) && m.walls[p.Y][p.X]
}

// CanEnter reports whether an occupant may be placed at p.
func (m *Map) CanEnter(p posdir.Point) bool {
	return m.Exists(p) && !m.IsWall(p)
}

// OpenCells returns every enterable cell in reading order.
func (m *Map) OpenCells() []posdir.Point {
	var cells []posdir.Point
	for y := 0; y < m.sizeY; y++ {
		for x := 0; x < m.sizeX; x++ {
			p := posdir.Point{X: x, Y: y}
			if m.CanEnter(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Next returns the neighbour of p in direction d. Bounds are not checked.
func (m *Map) Next(p posdir.Point, d posdir.Direction) posdir.Point {
	switch d {
	case posdir.Up:
		p.Y--
	case posdir.Down:
		p.Y++
	case posdir.Left:
		p.X--
	case posdir.Right:
		p.X++
	}
	return p
}

// Check returns why p cannot be entered, or nil.
func (m *Map) Check(p posdir.Point) error {
	if !m.Exists(p) {
		return errors.Wrapf(ErrOutOfRange, "point %s outside %dx%d map", p, m.sizeX, m.sizeY)
	}
	if m.IsWall(p) {
		return errors.Wrapf(ErrBlocked, "point %s is a wall", p)
	}
	return nil
}

// Add puts e at p.
func (m *Map) Add(e Mappable, p posdir.Point) error {
	if err := m.Check(p); err != nil {
		return err
	}
	m.fields[p.Y][p.X] = append(m.fields[p.Y][p.X], e)
	return nil
}

// Remove takes e off p.
func (m *Map) Remove(e Mappable, p posdir.Point) error {
	if !m.Exists(p) {
		return errors.Wrapf(ErrOutOfRange, "point %s outside %dx%d map", p, m.sizeX, m.sizeY)
	}
	cell := m.fields[p.Y][p.X]
	for i, o := range cell {
		if o == e {
			m.fields[p.Y][p.X] = append(cell[:i:i], cell[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotOnMap, "%s at %s", e.Name(), p)
}

// Move relocates e from one cell to another. The destination is validated
// before anything changes.
func (m *Map) Move(e Mappable, from, to posdir.Point) error {
	if err := m.Check(to); err != nil {
		return err
	}
	if err := m.Remove(e, from); err != nil {
		return err
	}
	m.fields[to.Y][to.X] = append(m.fields[to.Y][to.X], e)
	return nil
}
