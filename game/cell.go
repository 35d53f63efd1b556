package game

// CellKind is the content of a single grid cell.
type CellKind uint8

const (
	Empty CellKind = iota
	Wall
	Start
	Goal
	Ghost
	Bat
	Umbrella
	Mummy
)

// ObstacleKinds lists the monster kinds in the order the placer draws them.
var ObstacleKinds = []CellKind{Ghost, Bat, Umbrella, Mummy}

var cellKindNames = map[CellKind]string{
	Empty:    "Empty",
	Wall:     "Wall",
	Start:    "Start",
	Goal:     "Goal",
	Ghost:    "Ghost",
	Bat:      "Bat",
	Umbrella: "Umbrella",
	Mummy:    "Mummy",
}

// String returns the name of the cell kind.
func (c CellKind) String() string {
	if name, ok := cellKindNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsObstacle reports whether the cell holds a monster.
func (c CellKind) IsObstacle() bool {
	return c >= Ghost && c <= Mummy
}

// IsPassable reports whether the player may stand on the cell.
func (c CellKind) IsPassable() bool {
	return c == Empty || c == Start || c == Goal
}

// Position is a cell coordinate, X is the column and Y the row.
type Position struct {
	X int
	Y int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// IsRoom reports whether p is a room anchor (both coordinates even).
func (p Position) IsRoom() bool {
	return p.X%2 == 0 && p.Y%2 == 0
}

// Corner selects which diagonal end of the grid the round starts from.
type Corner uint8

const (
	OriginCorner Corner = iota // start at (0,0), goal at (w-1,h-1)
	FarCorner                  // start at (w-1,h-1), goal at (0,0)
)

// Flip returns the opposite corner.
func (c Corner) Flip() Corner {
	if c == OriginCorner {
		return FarCorner
	}
	return OriginCorner
}

// Endpoints returns the start and goal rooms of a width x height grid for this corner.
func (c Corner) Endpoints(width, height int) (start, goal Position) {
	origin := Position{X: 0, Y: 0}
	far := Position{X: width - 1, Y: height - 1}
	if c == FarCorner {
		return far, origin
	}
	return origin, far
}

func (c Corner) String() string {
	if c == FarCorner {
		return "far"
	}
	return "origin"
}
