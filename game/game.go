package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrInvalidDimension     = errors.New("maze dimensions must be odd and at least 3")
	ErrTooManyObstacles     = errors.New("not enough free rooms off the route for the obstacles")
	ErrInvalidObstacleCount = errors.New("obstacle count must not be negative")
	ErrInvalidDirection     = errors.New("invalid direction")
	ErrMissingDependency    = errors.New("missing game dependency")
)

const (
	minDimension = 3 // Minimum maze dimension (width or height).

	// discardReportInterval is how many crowded mazes a round discards
	// between two warnings.
	discardReportInterval = 16
)

// Config holds the dependencies and parameters of a Game.
type Config struct {
	Width       int
	Height      int
	Obstacles   int
	MazeFactory MazeFactory
	Rand        *rand.Rand     // nil = time seeded
	Logger      Logger
	OnChange    func(Snapshot) // called after every intent, no-ops included
}

// Game is the round controller. It owns the current maze and the player
// position, and is not safe for concurrent use.
type Game struct {
	width     int
	height    int
	obstacles int
	factory   MazeFactory
	rng       *rand.Rand
	logger    Logger
	onChange  func(Snapshot)

	maze    Maze
	player  Position
	corner  Corner
	roundID uuid.UUID
	round   int
	moves   int
	wins    int
}

// New validates the configuration and creates a Game. No round exists until NewRound is called.
func New(c Config) (*Game, error) {
	if c.MazeFactory == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	if err := ValidateDimensions(c.Width, c.Height); err != nil {
		return nil, err
	}

	if c.Obstacles < 0 {
		return nil, ErrInvalidObstacleCount
	}

	if c.Obstacles > MaxObstacles(c.Width, c.Height) {
		return nil, fmt.Errorf("%w: %d requested, at most %d fit a %dx%d maze",
			ErrTooManyObstacles, c.Obstacles, MaxObstacles(c.Width, c.Height), c.Width, c.Height)
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Game{
		width:     c.Width,
		height:    c.Height,
		obstacles: c.Obstacles,
		factory:   c.MazeFactory,
		rng:       rng,
		logger:    c.Logger,
		onChange:  c.OnChange,
		corner:    OriginCorner,
	}, nil
}

// ValidateDimensions rejects grids the room lattice cannot be laid on.
func ValidateDimensions(width, height int) error {
	if width < minDimension || height < minDimension || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// MaxObstacles is the number of rooms left over when the route is as short as
// possible. Every generated maze is a spanning tree over the rooms, so a maze
// with a shortest route shows up eventually and any count up to this bound
// can be hosted.
func MaxObstacles(width, height int) int {
	cols, rows := (width+1)/2, (height+1)/2
	shortestRoute := cols + rows - 1
	return cols*rows - shortestRoute
}

// NewRound generates a maze for the current corner, places the obstacles and
// puts the player on the start room.
func (g *Game) NewRound() (Snapshot, error) {
	return g.startRound(g.corner)
}

// startRound builds a round from corner. Mazes whose route leaves too few
// free rooms are discarded until one fits. The game state is only touched
// once the new maze is ready.
func (g *Game) startRound(corner Corner) (Snapshot, error) {
	var m Maze
	for attempt := 1; m == nil; attempt++ {
		candidate, err := g.factory(g.width, g.height, corner, g.rng)
		if err != nil {
			g.logger.Error(fmt.Sprintf("generating maze: %s", err))
			return Snapshot{}, err
		}

		if err := candidate.CheckTree(); err != nil {
			panic(fmt.Sprintf("generated maze is not a spanning tree: %s", err))
		}

		err = candidate.PlaceObstacles(g.obstacles, g.rng)
		switch {
		case errors.Is(err, ErrTooManyObstacles):
			if attempt%discardReportInterval == 0 {
				g.logger.Warning(fmt.Sprintf("%d mazes discarded so far: %s", attempt, err))
			}
		case err != nil:
			panic(fmt.Sprintf("placing obstacles on a generated maze: %s", err))
		default:
			m = candidate
		}
	}

	g.maze = m
	g.corner = corner
	g.player = m.Start()
	g.roundID = uuid.New()
	g.round++
	g.moves = 0

	route, _ := m.Route()
	g.logger.Info(fmt.Sprintf("round %d (%s) started from %s corner, route length %d", g.round, g.roundID, g.corner, len(route)))
	return g.Snapshot(), nil
}

// HandleIntent moves the player one cell in direction d. Walls, monsters and
// the grid border block the move silently. Stepping on the goal starts the
// next round from the opposite corner.
func (g *Game) HandleIntent(d Direction) (Snapshot, error) {
	if !d.Valid() {
		return g.Snapshot(), fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}

	if g.maze == nil {
		if _, err := g.NewRound(); err != nil {
			return Snapshot{}, err
		}
	}

	snap, err := g.step(d)
	if err != nil {
		return snap, err
	}

	if g.onChange != nil {
		g.onChange(snap)
	}
	return snap, nil
}

// step applies one movement transition. A win counts only once the next
// round exists; if it cannot be built the current round is left as it was.
func (g *Game) step(d Direction) (Snapshot, error) {
	next := g.player.Add(d)
	if !g.maze.InBound(next) {
		return g.Snapshot(), nil
	}

	switch kind := g.maze.CellAt(next); {
	case kind == Goal:
		won, moves := g.round, g.moves+1
		snap, err := g.startRound(g.corner.Flip())
		if err != nil {
			return g.Snapshot(), err
		}
		g.wins++
		g.logger.Info(fmt.Sprintf("round %d won in %d moves", won, moves))
		return snap, nil
	case kind == Empty || kind == Start:
		g.player = next
		g.moves++
	}

	return g.Snapshot(), nil
}

// Snapshot returns a read-only copy of the current round.
func (g *Game) Snapshot() Snapshot {
	if g.maze == nil {
		return Snapshot{}
	}
	return newSnapshot(g.maze, g.player, g.roundID, g.round, g.moves)
}

// Corner returns the corner the current round starts from.
func (g *Game) Corner() Corner {
	return g.corner
}

// Wins returns how many rounds have been completed.
func (g *Game) Wins() int {
	return g.wins
}
