package maze

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/obake-meiro/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func routeSet(t *testing.T, m *ObakeMaze) mapset.Set[game.Position] {
	t.Helper()
	route, ok := m.Route()
	require.True(t, ok)
	set := mapset.New[game.Position]()
	for _, pos := range route {
		set.Put(pos)
	}
	return set
}

func TestPlaceObstacles(t *testing.T) {
	t.Run("Monsters stay off the route", func(t *testing.T) {
		for seed := int64(1); seed <= 30; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m, err := Generate(21, 11, game.OriginCorner, rng)
			require.NoError(t, err)
			onRoute := routeSet(t, m)

			require.NoError(t, m.PlaceObstacles(10, rng))

			obstacles := m.Obstacles()
			assert.Len(t, obstacles, 10, "seed %d", seed)
			for pos, kind := range obstacles {
				assert.True(t, pos.IsRoom())
				assert.True(t, kind.IsObstacle())
				assert.False(t, onRoute.Has(pos), "seed %d: monster on route at %v", seed, pos)
			}

			// The route does not change: monsters never block the only way through.
			assert.Equal(t, onRoute.Size(), routeSet(t, m).Size())
			assert.Equal(t, game.Start, m.CellAt(m.Start()))
			assert.Equal(t, game.Goal, m.CellAt(m.Goal()))
		}
	})

	t.Run("Fills every free room", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		m, err := Generate(9, 7, game.FarCorner, rng)
		require.NoError(t, err)
		free := m.freeRooms(routeSet(t, m))

		require.NoError(t, m.PlaceObstacles(free, rng))
		assert.Len(t, m.Obstacles(), free)
		assert.Equal(t, 0, m.freeRooms(routeSet(t, m)))

		assert.ErrorIs(t, m.PlaceObstacles(1, rng), game.ErrTooManyObstacles)
	})

	t.Run("Too many leaves the grid untouched", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		m, err := Generate(5, 5, game.OriginCorner, rng)
		require.NoError(t, err)
		before := m.String()

		err = m.PlaceObstacles(100, rng)
		assert.ErrorIs(t, err, game.ErrTooManyObstacles)
		assert.Equal(t, before, m.String())
	})

	t.Run("Zero is a no-op", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		m, err := Generate(7, 7, game.OriginCorner, rng)
		require.NoError(t, err)
		before := m.String()

		require.NoError(t, m.PlaceObstacles(0, rng))
		assert.Equal(t, before, m.String())
	})

	t.Run("Negative count", func(t *testing.T) {
		m, err := Generate(5, 5, game.OriginCorner, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.ErrorIs(t, m.PlaceObstacles(-1, nil), game.ErrInvalidObstacleCount)
	})

	t.Run("Unsolvable grid", func(t *testing.T) {
		m := fromRows(t,
			"S  ",
			"###",
			"  G",
		)
		assert.ErrorIs(t, m.PlaceObstacles(1, rand.New(rand.NewSource(1))), ErrUnsolvable)
	})
}

func TestRandomRoom(t *testing.T) {
	m, err := New(7, 5)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(11))

	seen := mapset.New[game.Position]()
	for i := 0; i < 2000; i++ {
		pos := m.randomRoom(rng)
		assert.True(t, pos.IsRoom())
		assert.True(t, m.InBound(pos))
		seen.Put(pos)
	}
	assert.Equal(t, len(m.Rooms()), seen.Size())
}
