package maze

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/obake-meiro/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manhattan(a, b game.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFindRoute(t *testing.T) {
	t.Run("Route through a tree", func(t *testing.T) {
		m := fromRows(t,
			"S    ",
			" ### ",
			"  # G",
			" ####",
			"     ",
		)
		route, ok := m.Route()
		require.True(t, ok)
		assert.Equal(t, []game.Position{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2},
		}, route)
	})

	t.Run("Neighbors tried west, east, north, south", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			" # ",
			"  G",
		)
		route, ok := m.Route()
		require.True(t, ok)
		assert.Equal(t, []game.Position{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		}, route)
	})

	t.Run("Start equals goal", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"###",
			"  G",
		)
		route, ok := m.FindRoute(game.Position{X: 2, Y: 0}, game.Position{X: 2, Y: 0}, game.Position{X: 2, Y: 0})
		require.True(t, ok)
		assert.Equal(t, []game.Position{{X: 2, Y: 0}}, route)
	})

	t.Run("No route", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"###",
			"  G",
		)
		route, ok := m.Route()
		assert.False(t, ok)
		assert.Nil(t, route)
	})

	t.Run("Forbidden first step", func(t *testing.T) {
		m := fromRows(t,
			"S G",
			"###",
			"   ",
		)
		_, ok := m.FindRoute(m.Start(), m.Goal(), game.Position{X: 1, Y: 0})
		assert.False(t, ok)
	})

	t.Run("Off grid endpoints", func(t *testing.T) {
		m := fromRows(t,
			"S G",
			"###",
			"   ",
		)
		_, ok := m.FindRoute(game.Position{X: -1, Y: 0}, m.Goal(), m.Start())
		assert.False(t, ok)
	})

	t.Run("Gives up on a cycle that never meets the goal", func(t *testing.T) {
		m := fromRows(t,
			"S  #G",
			" # ##",
			"   ##",
		)
		_, ok := m.Route()
		assert.False(t, ok)
	})

	t.Run("Generated mazes are always solvable", func(t *testing.T) {
		for _, size := range generatorSizes {
			for seed := int64(1); seed <= 20; seed++ {
				for _, corner := range []game.Corner{game.OriginCorner, game.FarCorner} {
					m, err := Generate(size[0], size[1], corner, rand.New(rand.NewSource(seed)))
					require.NoError(t, err)

					route, ok := m.Route()
					require.True(t, ok, "%dx%d seed %d", size[0], size[1], seed)
					assert.Equal(t, m.Start(), route[0])
					assert.Equal(t, m.Goal(), route[len(route)-1])
					assert.Equal(t, 1, len(route)%2)
					assert.GreaterOrEqual(t, len(route), manhattan(m.Start(), m.Goal())+1)

					seen := map[game.Position]struct{}{}
					for i, pos := range route {
						_, dup := seen[pos]
						assert.False(t, dup, "route revisits %v", pos)
						seen[pos] = struct{}{}
						assert.NotEqual(t, game.Wall, m.CellAt(pos))
						if i > 0 {
							assert.Equal(t, 1, manhattan(route[i-1], pos))
						}
					}
				}
			}
		}
	})
}

func TestCheckTree(t *testing.T) {
	t.Run("Tree", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"## ",
			"  G",
		)
		assert.NoError(t, m.CheckTree())
	})

	t.Run("Cycle", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			" # ",
			"  G",
		)
		assert.ErrorIs(t, m.CheckTree(), ErrCyclicMaze)
	})

	t.Run("Unreachable room", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"###",
			"  G",
		)
		assert.ErrorIs(t, m.CheckTree(), ErrDisconnectedMaze)
	})

	t.Run("Closed room", func(t *testing.T) {
		m := fromRows(t,
			"S #",
			"# #",
			"  G",
		)
		assert.ErrorIs(t, m.CheckTree(), ErrDisconnectedMaze)
	})

	t.Run("Open pillar", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"#  ",
			"  G",
		)
		assert.ErrorIs(t, m.CheckTree(), ErrMalformedMaze)
	})
}
