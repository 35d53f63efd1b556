package maze

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/obake-meiro/game"
	"github.com/spakin/disjoint"
)

// ErrMalformedMaze reports open cells that do not fit the room lattice.
var ErrMalformedMaze = errors.New("maze has open cells outside the room lattice")

// searchOrder fixes which branch FindRoute explores first.
var searchOrder = []game.Direction{game.West, game.East, game.North, game.South}

// routeFrame is one cell on the search stack.
type routeFrame struct {
	pos  game.Position
	last game.Position // cell the search came from, never stepped back onto
	next int           // index into searchOrder of the next neighbor to try
}

// FindRoute returns the cells from start to goal, both included, searching
// depth first in west, east, north, south order and never stepping straight
// back onto the cell it came from. last is treated as that cell for start.
//
// The search keeps no visited set, so the open cells must form a tree (see
// CheckTree). On a tree there is exactly one route between two rooms.
func (m *ObakeMaze) FindRoute(start, goal, last game.Position) ([]game.Position, bool) {
	if !m.InBound(start) || !m.InBound(goal) {
		return nil, false
	}

	stack := []routeFrame{{pos: start, last: last}}
	for len(stack) > 0 {
		// Only a cycle can grow the stack past the cell count.
		if len(stack) > m.width*m.height {
			return nil, false
		}

		top := &stack[len(stack)-1]
		if top.pos == goal {
			route := make([]game.Position, len(stack))
			for i, f := range stack {
				route[i] = f.pos
			}
			return route, true
		}

		if top.next == len(searchOrder) {
			pop(&stack)
			continue
		}

		candidate := top.pos.Add(searchOrder[top.next])
		top.next++
		if !m.InBound(candidate) || candidate == top.last || m.CellAt(candidate) == game.Wall {
			continue
		}
		stack = append(stack, routeFrame{pos: candidate, last: top.pos})
	}

	return nil, false
}

// Route returns the canonical route from the start room to the goal room.
func (m *ObakeMaze) Route() ([]game.Position, bool) {
	return m.FindRoute(m.start, m.goal, m.start)
}

// pop drops the last frame of the stack.
func pop(s *[]routeFrame) {
	*s = (*s)[:len(*s)-1]
}

// CheckTree verifies that the open cells form a spanning tree over the rooms:
// every room is open, every open corridor joins two rooms that were not yet
// connected, and all rooms end up in one component.
func (m *ObakeMaze) CheckTree() error {
	sets := make(map[game.Position]*disjoint.Element)
	for _, room := range m.Rooms() {
		if m.CellAt(room) == game.Wall {
			return fmt.Errorf("%w: room %v is closed", ErrDisconnectedMaze, room)
		}
		sets[room] = disjoint.NewElement()
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			pos := game.Position{X: x, Y: y}
			if pos.IsRoom() || m.grid[y][x] == game.Wall {
				continue
			}
			if x%2 == 1 && y%2 == 1 {
				return fmt.Errorf("%w: pillar %v is open", ErrMalformedMaze, pos)
			}

			a, b := corridorEnds(pos)
			if sets[a].Find() == sets[b].Find() {
				return fmt.Errorf("%w: corridor %v joins connected rooms", ErrCyclicMaze, pos)
			}
			disjoint.Union(sets[a], sets[b])
		}
	}

	root := sets[m.start].Find()
	for room, set := range sets {
		if set.Find() != root {
			return fmt.Errorf("%w: room %v", ErrDisconnectedMaze, room)
		}
	}
	return nil
}

// corridorEnds returns the two rooms a corridor cell joins.
func corridorEnds(pos game.Position) (game.Position, game.Position) {
	if pos.X%2 == 1 {
		return game.Position{X: pos.X - 1, Y: pos.Y}, game.Position{X: pos.X + 1, Y: pos.Y}
	}
	return game.Position{X: pos.X, Y: pos.Y - 1}, game.Position{X: pos.X, Y: pos.Y + 1}
}
