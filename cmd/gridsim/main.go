package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/vinser/gridsim/internal/app"
	"github.com/vinser/gridsim/internal/config"
)

var version = "dev"

func main() {
	os.Exit(start())
}

// start returns the process exit code so that deferred cleanup always runs.
func start() int {
	cfg, err := config.Load()
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "gridsim")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		defer f.Close()
		log.Printf("[APP] gridsim %s", version)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	sim, err := app.Setup(cfg)
	if err != nil {
		return err
	}
	if cfg.Headless {
		return app.RunHeadless(sim, os.Stdout)
	}
	p := tea.NewProgram(app.New(sim, cfg.Tick, false), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
