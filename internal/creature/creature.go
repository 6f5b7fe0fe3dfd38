package creature

import (
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
)

const (
	MinLevel = 1
	MaxLevel = 10
)

var (
	ErrAlreadyPlaced = errors.New("creature already placed")
	ErrNotPlaced     = errors.New("creature is not placed")
	ErrNilCreature   = errors.New("nil creature")
)

// Creature is an entity that walks on a map.
type Creature struct {
	id       uuid.UUID
	name     string
	level    int
	position posdir.Point
	m        *grid.Map
}

// New returns an unplaced creature.
func New(name string, level int) *Creature {
	if name == "" {
		name = "Unknown"
	}
	return &Creature{
		id:    uuid.New(),
		name:  name,
		level: limit(level, MinLevel, MaxLevel),
	}
}

// ID returns the creature's unique identifier.
func (c *Creature) ID() uuid.UUID { return c.id }

// Name returns the creature's name.
func (c *Creature) Name() string { return c.name }

// Level returns the creature's level.
func (c *Creature) Level() int { return c.level }

// Symbol is the rune the creature is drawn with.
func (c *Creature) Symbol() rune {
	for _, r := range c.name {
		return unicode.ToUpper(r)
	}
	return '?'
}

// Info returns a short description.
func (c *Creature) Info() string {
	return fmt.Sprintf("%s [%d]", c.name, c.level)
}

// Greeting returns the creature's self introduction.
func (c *Creature) Greeting() string {
	return fmt.Sprintf("Hi, I'm %s, my level is %d.", c.name, c.level)
}

// Map returns the map the creature stands on, or nil.
func (c *Creature) Map() *grid.Map { return c.m }

// Position returns the current position and whether the creature is placed.
func (c *Creature) Position() (posdir.Point, bool) {
	if c == nil {
		return posdir.Point{}, false
	}
	return c.position, c.m != nil
}

// Place puts the creature on m at p.
func (c *Creature) Place(m *grid.Map, p posdir.Point) error {
	if c == nil {
		return ErrNilCreature
	}
	return c.place(c, m, p)
}

// Unplace takes the creature off its map.
func (c *Creature) Unplace() error {
	return c.unplace(c)
}

// place registers occupant on the map. Embedding types pass themselves so
// that the map holds the outer value.
func (c *Creature) place(occupant grid.Mappable, m *grid.Map, p posdir.Point) error {
	if c.m != nil {
		return errors.Wrapf(ErrAlreadyPlaced, "%s at %s", c.name, c.position)
	}
	if err := m.Add(occupant, p); err != nil {
		return errors.Wrapf(err, "place %s", c.name)
	}
	c.m = m
	c.position = p
	return nil
}

func (c *Creature) unplace(occupant grid.Mappable) error {
	if c.m == nil {
		return errors.Wrap(ErrNotPlaced, c.name)
	}
	if err := c.m.Remove(occupant, c.position); err != nil {
		return err
	}
	c.m = nil
	c.position = posdir.Point{}
	return nil
}

// Go moves the creature one step in direction d when the map allows it.
// Blocked or unplaced creatures stay where they are.
func (c *Creature) Go(d posdir.Direction) {
	c.goAs(c, d)
}

func (c *Creature) goAs(occupant grid.Mappable, d posdir.Direction) {
	if c.m == nil {
		return
	}
	next := c.m.Next(c.position, d)
	if !c.m.CanEnter(next) {
		return
	}
	if err := c.m.Move(occupant, c.position, next); err != nil {
		return
	}
	c.position = next
}

func limit(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
