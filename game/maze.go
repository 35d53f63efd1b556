package game

import "math/rand"

// Maze defines the methods a round's grid must implement.
type Maze interface {
	Width() int
	Height() int
	InBound(pos Position) bool
	CellAt(pos Position) CellKind
	Start() Position
	Goal() Position
	Corner() Corner

	// Route returns the canonical start to goal route, start first.
	Route() ([]Position, bool)

	// CheckTree returns an error when the open cells do not form a spanning tree over the rooms.
	CheckTree() error

	// PlaceObstacles scatters n monsters on free rooms off the canonical route.
	PlaceObstacles(n int, rng *rand.Rand) error

	String() string
}

// MazeFactory generates a fresh maze with the start and goal set by corner.
type MazeFactory func(width, height int, corner Corner, rng *rand.Rand) (Maze, error)

// Logger is the leveled logger used by the game.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
