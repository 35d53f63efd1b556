package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/obake-meiro/game"
	"github.com/zyedidia/generic/mapset"
)

// PlaceObstacles puts n monsters of random kind on distinct empty rooms that
// are not on the canonical route. It fails before touching the grid when the
// maze has fewer such rooms than n.
func (m *ObakeMaze) PlaceObstacles(n int, rng *rand.Rand) error {
	if n < 0 {
		return game.ErrInvalidObstacleCount
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	route, ok := m.Route()
	if !ok {
		return fmt.Errorf("%w: %v to %v", ErrUnsolvable, m.start, m.goal)
	}

	onRoute := mapset.New[game.Position]()
	for _, pos := range route {
		onRoute.Put(pos)
	}

	if free := m.freeRooms(onRoute); n > free {
		return fmt.Errorf("%w: %d requested, %d free", game.ErrTooManyObstacles, n, free)
	}

	for i := 0; i < n; i++ {
		kind := game.ObstacleKinds[rng.Intn(len(game.ObstacleKinds))]
		for {
			pos := m.randomRoom(rng)
			if m.CellAt(pos) != game.Empty || onRoute.Has(pos) {
				continue
			}
			m.SetCellAt(pos, kind)
			break
		}
	}

	return nil
}

// Obstacles returns every monster on the grid by position.
func (m *ObakeMaze) Obstacles() map[game.Position]game.CellKind {
	obstacles := make(map[game.Position]game.CellKind)
	for _, room := range m.Rooms() {
		if kind := m.CellAt(room); kind.IsObstacle() {
			obstacles[room] = kind
		}
	}
	return obstacles
}

// freeRooms counts the empty rooms off the route.
func (m *ObakeMaze) freeRooms(onRoute mapset.Set[game.Position]) int {
	free := 0
	for _, room := range m.Rooms() {
		if m.CellAt(room) == game.Empty && !onRoute.Has(room) {
			free++
		}
	}
	return free
}

// randomRoom draws a random cell and snaps each odd coordinate down to the room before it.
func (m *ObakeMaze) randomRoom(rng *rand.Rand) game.Position {
	x, y := rng.Intn(m.width), rng.Intn(m.height)
	if x%2 == 1 {
		x--
	}
	if y%2 == 1 {
		y--
	}
	return game.Position{X: x, Y: y}
}
