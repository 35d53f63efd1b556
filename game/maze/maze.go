/*
Package maze provides the grid of an Obake Meiro round.

It defines the `ObakeMaze` structure, a width x height grid of `game.CellKind` values in which even-even
coordinates are rooms and every other cell is wall fabric between two rooms.

The package includes randomized frontier maze generation, the canonical route search, spanning-tree
certification, monster placement off the canonical route, and ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/obake-meiro/game"
)

const (
	maxMazeDimenssion = 201
)

var (
	ErrCyclicMaze       = errors.New("maze contains a cycle")
	ErrDisconnectedMaze = errors.New("maze leaves rooms unreachable")
	ErrUnsolvable       = errors.New("no route between start and goal")

	_ game.Maze = &ObakeMaze{}
)

// ObakeMaze represents a rectangular grid of rooms and walls.
type ObakeMaze struct {
	width  int               // Width of the maze (number of columns)
	height int               // Height of the maze (number of rows)
	grid   [][]game.CellKind // grid[y][x]
	start  game.Position
	goal   game.Position
	corner game.Corner
}

// New initializes a maze of the given dimensions with every cell set to Wall.
func New(width, height int) (*ObakeMaze, error) {
	if err := game.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if max(width, height) > maxMazeDimenssion {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", game.ErrInvalidDimension, width, height, maxMazeDimenssion)
	}

	grid := make([][]game.CellKind, height)
	for y := range grid {
		grid[y] = make([]game.CellKind, width)
		for x := range grid[y] {
			grid[y][x] = game.Wall
		}
	}

	start, goal := game.OriginCorner.Endpoints(width, height)
	return &ObakeMaze{
		width:  width,
		height: height,
		grid:   grid,
		start:  start,
		goal:   goal,
		corner: game.OriginCorner,
	}, nil
}

// Factory adapts Generate to game.MazeFactory.
func Factory(width, height int, corner game.Corner, rng *rand.Rand) (game.Maze, error) {
	return Generate(width, height, corner, rng)
}

// Width returns the number of columns.
func (m *ObakeMaze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *ObakeMaze) Height() int {
	return m.height
}

// Start returns the start room.
func (m *ObakeMaze) Start() game.Position {
	return m.start
}

// Goal returns the goal room.
func (m *ObakeMaze) Goal() game.Position {
	return m.goal
}

// Corner returns the corner the maze was generated from.
func (m *ObakeMaze) Corner() game.Corner {
	return m.corner
}

// InBound reports whether pos lies on the grid.
func (m *ObakeMaze) InBound(pos game.Position) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// CellAt returns the kind of the cell at pos. Positions off the grid read as Wall.
func (m *ObakeMaze) CellAt(pos game.Position) game.CellKind {
	if !m.InBound(pos) {
		return game.Wall
	}
	return m.grid[pos.Y][pos.X]
}

// SetCellAt overwrites the cell at pos. Out of range positions are ignored.
func (m *ObakeMaze) SetCellAt(pos game.Position, kind game.CellKind) {
	if !m.InBound(pos) {
		return
	}
	m.grid[pos.Y][pos.X] = kind
}

// Rooms returns every room anchor in row-major order.
func (m *ObakeMaze) Rooms() []game.Position {
	rooms := make([]game.Position, 0, ((m.width+1)/2)*((m.height+1)/2))
	for y := 0; y < m.height; y += 2 {
		for x := 0; x < m.width; x += 2 {
			rooms = append(rooms, game.Position{X: x, Y: y})
		}
	}
	return rooms
}

// String provides a textual representation of the maze.
func (m *ObakeMaze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString(strings.Repeat("#", m.width+2) + "\n")

	for y := 0; y < m.height; y++ {
		output.WriteByte('#')
		for x := 0; x < m.width; x++ {
			output.WriteByte(game.Glyph(m.grid[y][x]))
		}
		output.WriteString("#\n")
	}

	// Bottom boundary
	output.WriteString(strings.Repeat("#", m.width+2) + "\n")

	return output.String()
}
