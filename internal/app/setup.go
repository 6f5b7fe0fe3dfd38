package app

import (
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/config"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/report"
	"github.com/vinser/gridsim/internal/scenario"
	"github.com/vinser/gridsim/internal/simulation"
	"github.com/vinser/gridsim/internal/tally"
)

// Map sizes used when the map kind is switched from the command line.
const (
	SmallWidth  = 10
	SmallHeight = 10
	MazeWidth   = 21
	MazeHeight  = 15
)

const headlessWidth = 80

// Setup loads the configured scenario, applies command line overrides and
// builds the simulation.
func Setup(cfg *config.Config) (*simulation.Simulation, error) {
	var (
		sc  *scenario.Scenario
		err error
	)
	if cfg.Scenario != "" {
		sc, err = scenario.Load(cfg.Scenario)
	} else {
		sc, err = scenario.Default()
	}
	if err != nil {
		return nil, err
	}
	override(sc, cfg)

	sim, err := sc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build scenario")
	}
	return sim, nil
}

func override(sc *scenario.Scenario, cfg *config.Config) {
	if cfg.MovesSet {
		sc.Moves = cfg.Moves
	}
	if cfg.SeedSet {
		sc.Map.Seed = cfg.Seed
	}
	kind := strings.ToLower(sc.Map.Kind)
	if kind == "" {
		kind = grid.KindSmall
	}
	if cfg.Map == "" || cfg.Map == kind {
		return
	}
	// Another map kind invalidates size and coordinates.
	sc.Map.Kind = cfg.Map
	switch cfg.Map {
	case grid.KindMaze:
		sc.Map.Width, sc.Map.Height = MazeWidth, MazeHeight
	default:
		sc.Map.Width, sc.Map.Height = SmallWidth, SmallHeight
	}
	for i := range sc.Creatures {
		sc.Creatures[i].X, sc.Creatures[i].Y = nil, nil
	}
}

// RunHeadless makes every turn and writes the rendered report to w.
func RunHeadless(sim *simulation.Simulation, w io.Writer) error {
	tl := tally.New(len(sim.Creatures()))
	for !sim.Finished() {
		if err := sim.Turn(); err != nil {
			return err
		}
		if ev, ok := sim.Last(); ok {
			tl.Add(ev)
			log.Printf("[TURN] #%d %s %q %s -> %s", ev.Turn+1, ev.Name, ev.Command, ev.From, ev.To)
			if ev.Song != "" {
				log.Printf("[SONG] %s", ev.Song)
			}
		}
	}
	out, err := report.Render(report.Markdown(sim, tl), headlessWidth)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
