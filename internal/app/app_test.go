package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/gridsim/internal/config"
	"github.com/vinser/gridsim/internal/grid"
	"github.com/vinser/gridsim/internal/model/play"
	"github.com/vinser/gridsim/internal/posdir"
)

const scenarioYAML = `
map:
  width: 5
  height: 5
creatures:
  - name: Ann
    x: 0
    y: 0
  - name: Bea
    x: 1
    y: 1
moves: ud
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	return path
}

func TestSetupDefault(t *testing.T) {
	sim, err := Setup(&config.Config{})
	require.NoError(t, err)
	assert.Len(t, sim.Creatures(), 3)
	assert.False(t, sim.Finished())
}

func TestSetupOverrides(t *testing.T) {
	path := writeScenario(t)

	sim, err := Setup(&config.Config{Scenario: path, Moves: "rrr", MovesSet: true})
	require.NoError(t, err)
	assert.Equal(t, "rrr", sim.Moves())
	assert.Equal(t, []posdir.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, sim.Positions())

	sim, err = Setup(&config.Config{Scenario: path, Map: grid.KindSmall})
	require.NoError(t, err)
	assert.Equal(t, 5, sim.Map().SizeX(), "same kind keeps the scenario map")

	sim, err = Setup(&config.Config{Scenario: path, Map: grid.KindMaze, Seed: 4, SeedSet: true})
	require.NoError(t, err)
	assert.Equal(t, MazeWidth, sim.Map().SizeX())
	assert.Equal(t, MazeHeight, sim.Map().SizeY())
	for _, p := range sim.Positions() {
		assert.True(t, sim.Map().CanEnter(p))
	}
}

func TestSetupErrors(t *testing.T) {
	_, err := Setup(&config.Config{Scenario: filepath.Join(t.TempDir(), "none.yaml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map: {width: 50, height: 5}\ncreatures: [{name: A}]\n"), 0o644))
	_, err = Setup(&config.Config{Scenario: path})
	assert.True(t, errors.Is(err, grid.ErrOutOfRange), "got %v", err)
}

func TestRunHeadless(t *testing.T) {
	sim, err := Setup(&config.Config{Scenario: writeScenario(t)})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunHeadless(sim, &out))
	assert.True(t, sim.Finished())
	assert.Contains(t, out.String(), "Simulation finished")
	assert.Contains(t, out.String(), "Bea")
}

func TestModelFlow(t *testing.T) {
	sim, err := Setup(&config.Config{Scenario: writeScenario(t)})
	require.NoError(t, err)
	m := New(sim, time.Millisecond, true)
	assert.Nil(t, m.Init())

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	_, cmd := model.(Model).play.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.NotNil(t, cmd)
	assert.True(t, sim.Finished())

	model, _ = model.Update(cmd())
	assert.Equal(t, statusReport, model.(Model).status)
	assert.Contains(t, ansi.Strip(model.View()), "Simulation finished")

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelIgnoresPlayMessagesAfterReport(t *testing.T) {
	sim, err := Setup(&config.Config{Scenario: writeScenario(t), Moves: "", MovesSet: true})
	require.NoError(t, err)
	var model tea.Model = New(sim, time.Millisecond, true)
	model, _ = model.Update(play.FinishedMsg{})
	require.Equal(t, statusReport, model.(Model).status)
	model, _ = model.Update(play.FinishedMsg{})
	assert.Equal(t, statusReport, model.(Model).status)
}

func TestModelAbout(t *testing.T) {
	sim, err := Setup(&config.Config{Scenario: writeScenario(t)})
	require.NoError(t, err)
	var model tea.Model = New(sim, time.Millisecond, false)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.Equal(t, statusAbout, model.(Model).status)
	assert.True(t, model.(Model).play.Paused())
	assert.Contains(t, ansi.Strip(model.View()), "About")

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())
	assert.Equal(t, statusPlaying, model.(Model).status)
	assert.Equal(t, 0, sim.Consumed())
}
