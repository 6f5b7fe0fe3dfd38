package creature

import (
	"fmt"
	"unicode"

	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
)

const (
	MinAgility = 0
	MaxAgility = 10
	// Every songsPerAgility-th song raises agility.
	songsPerAgility = 3
)

// Elf is a creature that gains agility by singing.
type Elf struct {
	*Creature
	agility     int
	singCounter int
}

// NewElf returns an unplaced elf.
func NewElf(name string, level, agility int) *Elf {
	if name == "" {
		name = "Unknown Elf"
	}
	return &Elf{
		Creature: New(name, level),
		agility:  limit(agility, MinAgility, MaxAgility),
	}
}

// Agility returns the elf's agility.
func (e *Elf) Agility() int { return e.agility }

// Power is 8 per level plus 2 per agility point.
func (e *Elf) Power() int {
	return 8*e.Level() + 2*e.agility
}

// Sing returns the song line.
func (e *Elf) Sing() string {
	e.singCounter++
	if e.singCounter%songsPerAgility == 0 && e.agility < MaxAgility {
		e.agility++
	}
	return fmt.Sprintf("%s is singing.", e.Name())
}

// Symbol is lower case for elves.
func (e *Elf) Symbol() rune {
	return unicode.ToLower(e.Creature.Symbol())
}

func (e *Elf) Info() string {
	return fmt.Sprintf("%s [%d][%d]", e.Name(), e.Level(), e.agility)
}

// Place puts the elf itself on the map.
func (e *Elf) Place(m *grid.Map, p posdir.Point) error {
	if e == nil || e.Creature == nil {
		return ErrNilCreature
	}
	return e.place(e, m, p)
}

// Unplace takes the elf off its map.
func (e *Elf) Unplace() error {
	return e.unplace(e)
}

// Go moves the elf one step in direction d when the map allows it.
func (e *Elf) Go(d posdir.Direction) {
	e.goAs(e, d)
}
