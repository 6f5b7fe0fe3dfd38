package grid

import (
	"github.com/pkg/errors"
	"github.com/vinser/maze"
)

const (
	// Central room size left open by the generator.
	DenWidth  = 5
	DenHeight = 3
	// Bias defines maze complexity.
	Bias = 0.2
)

// NewMaze returns a map whose walls come from a generated maze.
// The same seed always gives the same layout.
func NewMaze(sizeX, sizeY int, seed int64) (*Map, error) {
	m, err := NewWithLimits(sizeX, sizeY, MazeLimits)
	if err != nil {
		return nil, err
	}
	mz, err := maze.New(sizeX, sizeY, DenWidth, DenHeight)
	if err != nil {
		return nil, errors.Wrapf(err, "maze %dx%d", sizeX, sizeY)
	}
	mz.Generate(seed, nil, nil, nil, "top", Bias)

	m.walls = make([][]bool, sizeY)
	for y := 0; y < sizeY; y++ {
		m.walls[y] = make([]bool, sizeX)
		for x := 0; x < sizeX; x++ {
			cell, ok := mz.Cell(x, y)
			m.walls[y][x] = !ok || cell == maze.Wall
		}
	}
	return m, nil
}
