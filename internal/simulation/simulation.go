package simulation

import (
	"unicode"

	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
)

var (
	ErrNoCreatures      = errors.New("list of creatures cannot be empty")
	ErrPositionMismatch = errors.New("number of creatures must match number of starting positions")
	ErrNoMap            = errors.New("simulation needs a map")
	ErrFinished         = errors.New("simulation is already finished")
)

// Creature is what the turn engine needs from a moving entity.
type Creature interface {
	Name() string
	Place(m *grid.Map, p posdir.Point) error
	Position() (posdir.Point, bool)
	Go(d posdir.Direction)
}

// Singer is a creature that sings instead of wasting a skipped turn.
type Singer interface {
	Sing() string
}

type unplacer interface {
	Unplace() error
}

// Event describes one executed turn.
type Event struct {
	Turn      int // zero based index of the consumed command
	Actor     int // index of the acting creature
	Name      string
	Command   rune
	Direction posdir.Direction
	Parsed    bool // false when the command was not a move
	From, To  posdir.Point
	Song      string // sung by a Singer on a skipped turn
}

// Moved reports whether the actor changed cell.
func (e Event) Moved() bool { return e.From != e.To }

// Simulation runs creatures over a map following a cyclic list of moves.
// The first move belongs to the first creature, the second to the second and
// so on, wrapping around. Unrecognized moves are skipped but still use up the
// creature's turn.
type Simulation struct {
	m         *grid.Map
	creatures []Creature
	positions []posdir.Point
	moves     []rune
	cursor    int
	finished  bool
	last      *Event
}

// New places every creature at its starting position and returns a ready
// simulation. On error no creature is left on the map.
func New(m *grid.Map, creatures []Creature, positions []posdir.Point, moves string) (*Simulation, error) {
	if len(creatures) == 0 {
		return nil, ErrNoCreatures
	}
	if len(creatures) != len(positions) {
		return nil, errors.Wrapf(ErrPositionMismatch, "%d creatures, %d positions", len(creatures), len(positions))
	}
	if m == nil {
		return nil, ErrNoMap
	}
	for i, c := range creatures {
		if c == nil {
			return nil, errors.Wrapf(ErrNoCreatures, "creature %d is nil", i)
		}
	}
	for i, p := range positions {
		if err := m.Check(p); err != nil {
			return nil, errors.Wrapf(err, "creature %d", i)
		}
	}
	for i, c := range creatures {
		if err := c.Place(m, positions[i]); err != nil {
			unplace(creatures[:i])
			return nil, errors.Wrapf(err, "creature %d", i)
		}
	}

	return &Simulation{
		m:         m,
		creatures: append([]Creature(nil), creatures...),
		positions: append([]posdir.Point(nil), positions...),
		moves:     []rune(moves),
	}, nil
}

// unplace takes already placed creatures off the map again.
func unplace(placed []Creature) {
	for i := len(placed) - 1; i >= 0; i-- {
		if u, ok := placed[i].(unplacer); ok {
			_ = u.Unplace()
		}
	}
}

// Map returns the simulation's map.
func (s *Simulation) Map() *grid.Map { return s.m }

// Creatures returns the creatures in turn order.
func (s *Simulation) Creatures() []Creature {
	return append([]Creature(nil), s.creatures...)
}

// Positions returns the starting positions of the creatures.
func (s *Simulation) Positions() []posdir.Point {
	return append([]posdir.Point(nil), s.positions...)
}

// Moves returns the moves not yet made.
func (s *Simulation) Moves() string { return string(s.moves[s.cursor:]) }

// Made returns the moves already made.
func (s *Simulation) Made() string { return string(s.moves[:s.cursor]) }

// Consumed returns how many moves have been made so far.
func (s *Simulation) Consumed() int { return s.cursor }

// Len returns the total number of moves.
func (s *Simulation) Len() int { return len(s.moves) }

// Finished reports whether all moves have been done.
func (s *Simulation) Finished() bool { return s.finished }

// Next returns the index of the creature that acts in the coming turn.
func (s *Simulation) Next() (int, bool) {
	if s.finished || s.cursor >= len(s.moves) {
		return 0, false
	}
	return s.cursor % len(s.creatures), true
}

// Last returns the most recent turn.
func (s *Simulation) Last() (Event, bool) {
	if s.last == nil {
		return Event{}, false
	}
	return *s.last, true
}

// Turn makes one move of the current creature.
func (s *Simulation) Turn() error {
	if s.finished {
		return ErrFinished
	}
	if s.cursor >= len(s.moves) {
		s.finished = true
		return nil
	}

	turn := s.cursor
	cmd := s.moves[turn]
	s.cursor++

	actor := turn % len(s.creatures)
	c := s.creatures[actor]
	from, _ := c.Position()
	ev := Event{Turn: turn, Actor: actor, Name: c.Name(), Command: cmd, From: from, To: from}

	if dirs := posdir.Parse(string(unicode.ToLower(cmd))); len(dirs) > 0 {
		ev.Direction, ev.Parsed = dirs[0], true
		c.Go(dirs[0])
		ev.To, _ = c.Position()
	} else if sg, ok := c.(Singer); ok {
		ev.Song = sg.Sing()
	}
	s.last = &ev

	if s.cursor >= len(s.moves) {
		s.finished = true
	}
	return nil
}

// Run makes turns until the simulation is finished.
func (s *Simulation) Run() error {
	for !s.finished {
		if err := s.Turn(); err != nil {
			return err
		}
	}
	return nil
}
