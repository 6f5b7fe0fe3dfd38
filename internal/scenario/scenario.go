package scenario

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/creature"
	"github.com/vinser/gridsim/internal/embeddata"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/posdir"
	"github.com/vinser/gridsim/internal/simulation"
	"gopkg.in/yaml.v3"
)

const (
	KindCreature = "creature"
	KindElf      = "elf"
)

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrPosition    = errors.New("bad position")
	ErrNoRoom      = errors.New("no free cell left")
)

// Scenario describes a complete simulation setup.
type Scenario struct {
	Map       MapSpec        `yaml:"map"`
	Creatures []CreatureSpec `yaml:"creatures"`
	Moves     string         `yaml:"moves"`
}

// MapSpec selects the map variant and its size.
type MapSpec struct {
	Kind   string `yaml:"kind"` // small or maze
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"` // maze layout seed
}

// CreatureSpec describes one creature and its starting position.
// A creature without coordinates is put on the next free open cell.
type CreatureSpec struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Level   int    `yaml:"level"`
	Agility int    `yaml:"agility"`
	X       *int   `yaml:"x"`
	Y       *int   `yaml:"y"`
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	return s, nil
}

// Load reads a YAML scenario from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	return Parse(data)
}

// Default returns the built-in scenario.
func Default() (*Scenario, error) {
	data, err := embeddata.ReadScenario()
	if err != nil {
		return nil, errors.Wrap(err, "read built-in scenario")
	}
	return Parse(data)
}

// Build creates the map and the creatures and returns a simulation ready to run.
func (s *Scenario) Build() (*simulation.Simulation, error) {
	m, err := s.buildMap()
	if err != nil {
		return nil, err
	}
	creatures := make([]simulation.Creature, 0, len(s.Creatures))
	for i, cs := range s.Creatures {
		c, err := cs.build()
		if err != nil {
			return nil, errors.Wrapf(err, "creature %d", i)
		}
		creatures = append(creatures, c)
	}
	positions, err := s.positions(m)
	if err != nil {
		return nil, err
	}
	return simulation.New(m, creatures, positions, s.Moves)
}

func (s *Scenario) buildMap() (*grid.Map, error) {
	switch strings.ToLower(s.Map.Kind) {
	case "", grid.KindSmall:
		return grid.New(s.Map.Width, s.Map.Height)
	case grid.KindMaze:
		return grid.NewMaze(s.Map.Width, s.Map.Height, s.Map.Seed)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "map %q", s.Map.Kind)
	}
}

func (cs CreatureSpec) build() (simulation.Creature, error) {
	switch strings.ToLower(cs.Kind) {
	case "", KindCreature:
		return creature.New(cs.Name, cs.Level), nil
	case KindElf:
		return creature.NewElf(cs.Name, cs.Level, cs.Agility), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "creature %q", cs.Kind)
	}
}

// positions resolves starting positions, handing out open cells in reading
// order to creatures that have none.
func (s *Scenario) positions(m *grid.Map) ([]posdir.Point, error) {
	taken := make(map[posdir.Point]bool)
	for _, cs := range s.Creatures {
		if cs.X != nil && cs.Y != nil {
			taken[posdir.Point{X: *cs.X, Y: *cs.Y}] = true
		}
	}

	open := m.OpenCells()
	next := 0
	positions := make([]posdir.Point, 0, len(s.Creatures))
	for i, cs := range s.Creatures {
		switch {
		case cs.X != nil && cs.Y != nil:
			positions = append(positions, posdir.Point{X: *cs.X, Y: *cs.Y})
		case cs.X == nil && cs.Y == nil:
			for next < len(open) && taken[open[next]] {
				next++
			}
			if next >= len(open) {
				return nil, errors.Wrapf(ErrNoRoom, "creature %d", i)
			}
			taken[open[next]] = true
			positions = append(positions, open[next])
		default:
			return nil, errors.Wrapf(ErrPosition, "creature %d needs both x and y", i)
		}
	}
	return positions, nil
}
