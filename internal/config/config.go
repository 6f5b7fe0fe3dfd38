package config

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/grid"
)

const (
	DefaultTick = 400 * time.Millisecond
	MinTick     = 10 * time.Millisecond
)

// Environment variables read as defaults for the flags.
const (
	EnvScenario = "GRIDSIM_SCENARIO"
	EnvTick     = "GRIDSIM_TICK"
	EnvDebugLog = "GRIDSIM_DEBUG_LOG"
	EnvHeadless = "GRIDSIM_HEADLESS"
)

var ErrInvalid = errors.New("invalid option")

// Config stores the resolved run options.
type Config struct {
	Scenario string        // YAML scenario path, empty for the built-in one
	Moves    string        // overrides the scenario moves when MovesSet
	MovesSet bool
	Map      string        // overrides the scenario map kind when not empty
	Seed     int64         // maze seed, used when SeedSet
	SeedSet  bool
	Tick     time.Duration // delay between automatic turns
	Headless bool          // run to the end and print the report
	DebugLog string        // log file path, empty disables logging
}

// LookupFunc finds an environment value.
type LookupFunc func(key string) (string, bool)

// Load reads .env if present and parses the process command line.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] .env could not be loaded: %v", err)
	}
	return Parse(os.Args[0], os.Args[1:], os.LookupEnv, os.Stderr)
}

// Parse resolves options from args over env over defaults.
func Parse(name string, args []string, env LookupFunc, out io.Writer) (*Config, error) {
	def, err := fromEnv(env)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	fs := NewFlagSet(name, out)
	fs.StringVar(&cfg.Scenario, "scenario", "s", def.Scenario, "YAML scenario file (built-in scenario when empty)")
	fs.StringVar(&cfg.Moves, "moves", "m", "", "Move string overriding the scenario moves")
	fs.StringVar(&cfg.Map, "map", "", "", "Map kind overriding the scenario: small or maze")
	fs.Int64Var(&cfg.Seed, "seed", "", 0, "Maze layout seed")
	fs.DurationVar(&cfg.Tick, "tick", "t", def.Tick, "Delay between automatic turns")
	fs.BoolVar(&cfg.Headless, "headless", "H", def.Headless, "Run all turns and print the report without the UI")
	fs.StringVar(&cfg.DebugLog, "debug", "d", def.DebugLog, "Write a turn log to this file")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	cfg.MovesSet = fs.IsCustom("moves")
	cfg.SeedSet = fs.IsCustom("seed")

	cfg.Map = strings.ToLower(cfg.Map)
	if cfg.Map != "" && cfg.Map != grid.KindSmall && cfg.Map != grid.KindMaze {
		fs.Usage()
		return nil, errors.Wrapf(ErrInvalid, "map kind %q, use 'small' or 'maze'", cfg.Map)
	}
	if cfg.Tick < MinTick {
		fs.Usage()
		return nil, errors.Wrapf(ErrInvalid, "tick %s is shorter than %s", cfg.Tick, MinTick)
	}
	return cfg, nil
}

func fromEnv(env LookupFunc) (*Config, error) {
	cfg := &Config{Tick: DefaultTick}
	if v, ok := env(EnvScenario); ok {
		cfg.Scenario = v
	}
	if v, ok := env(EnvDebugLog); ok {
		cfg.DebugLog = v
	}
	if v, ok := env(EnvTick); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalid, "%s=%q: %v", EnvTick, v, err)
		}
		cfg.Tick = d
	}
	if v, ok := env(EnvHeadless); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalid, "%s=%q: %v", EnvHeadless, v, err)
		}
		cfg.Headless = b
	}
	return cfg, nil
}
