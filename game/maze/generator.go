package maze

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/obake-meiro/game"
)

// frontierWall pairs a wall cell with the room two steps away behind it.
type frontierWall struct {
	wall game.Position
	far  game.Position
}

// Generate builds a maze whose open cells form a spanning tree over the rooms,
// growing it from the corner's start room with a randomized frontier. The
// corner's goal room is marked once every room is connected.
func Generate(width, height int, corner game.Corner, rng *rand.Rand) (*ObakeMaze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m.corner = corner
	m.start, m.goal = corner.Endpoints(width, height)
	m.generateMaze(rng)
	return m, nil
}

// generateMaze carves passages from the start room until the frontier is exhausted.
func (m *ObakeMaze) generateMaze(rng *rand.Rand) {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x] = game.Wall
		}
	}

	frontier := make([]frontierWall, 0, 4)
	m.SetCellAt(m.start, game.Start)
	frontier = m.addFrontier(frontier, m.start)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		fw := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)

		// A far room that is already open was reached another way; carving
		// this wall would close a cycle.
		if m.CellAt(fw.far) != game.Wall {
			continue
		}
		m.SetCellAt(fw.wall, game.Empty)
		m.SetCellAt(fw.far, game.Empty)
		frontier = m.addFrontier(frontier, fw.far)
	}

	m.SetCellAt(m.goal, game.Goal)
}

// addFrontier appends the walls around room whose far room is on the grid.
func (m *ObakeMaze) addFrontier(frontier []frontierWall, room game.Position) []frontierWall {
	x, y := room.X, room.Y
	if x > 1 {
		frontier = append(frontier, frontierWall{wall: game.Position{X: x - 1, Y: y}, far: game.Position{X: x - 2, Y: y}})
	}
	if x < m.width-2 {
		frontier = append(frontier, frontierWall{wall: game.Position{X: x + 1, Y: y}, far: game.Position{X: x + 2, Y: y}})
	}
	if y > 1 {
		frontier = append(frontier, frontierWall{wall: game.Position{X: x, Y: y - 1}, far: game.Position{X: x, Y: y - 2}})
	}
	if y < m.height-2 {
		frontier = append(frontier, frontierWall{wall: game.Position{X: x, Y: y + 1}, far: game.Position{X: x, Y: y + 2}})
	}
	return frontier
}
