package game

import (
	"strings"

	"github.com/google/uuid"
)

// Snapshot is an immutable view of a round, enough for a renderer to draw it.
type Snapshot struct {
	width   int
	height  int
	cells   []CellKind // row major
	player  Position
	start   Position
	goal    Position
	corner  Corner
	roundID uuid.UUID
	round   int
	moves   int
}

func newSnapshot(m Maze, player Position, roundID uuid.UUID, round, moves int) Snapshot {
	w, h := m.Width(), m.Height()
	cells := make([]CellKind, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, m.CellAt(Position{X: x, Y: y}))
		}
	}

	return Snapshot{
		width:   w,
		height:  h,
		cells:   cells,
		player:  player,
		start:   m.Start(),
		goal:    m.Goal(),
		corner:  m.Corner(),
		roundID: roundID,
		round:   round,
		moves:   moves,
	}
}

// Width returns the number of columns.
func (s Snapshot) Width() int { return s.width }

// Height returns the number of rows.
func (s Snapshot) Height() int { return s.height }

// Player returns the player position.
func (s Snapshot) Player() Position { return s.player }

// Start returns the start room of the round.
func (s Snapshot) Start() Position { return s.start }

// Goal returns the goal room of the round.
func (s Snapshot) Goal() Position { return s.goal }

// Corner returns the corner the round started from.
func (s Snapshot) Corner() Corner { return s.corner }

// RoundID returns the unique id of the round.
func (s Snapshot) RoundID() uuid.UUID { return s.roundID }

// Round returns the round number, starting at 1.
func (s Snapshot) Round() int { return s.round }

// Moves returns how many moves the player made this round.
func (s Snapshot) Moves() int { return s.moves }

// InBound reports whether pos lies on the grid.
func (s Snapshot) InBound(pos Position) bool {
	return pos.X >= 0 && pos.X < s.width && pos.Y >= 0 && pos.Y < s.height
}

// CellAt returns the kind of the cell at pos. Positions off the grid read as Wall.
func (s Snapshot) CellAt(pos Position) CellKind {
	if !s.InBound(pos) {
		return Wall
	}
	return s.cells[pos.Y*s.width+pos.X]
}

// String draws the grid with a wall border and the player as '@'.
func (s Snapshot) String() string {
	var b strings.Builder

	border := strings.Repeat("#", s.width+2) + "\n"
	b.WriteString(border)
	for y := 0; y < s.height; y++ {
		b.WriteByte('#')
		for x := 0; x < s.width; x++ {
			pos := Position{X: x, Y: y}
			if pos == s.player {
				b.WriteByte('@')
				continue
			}
			b.WriteByte(Glyph(s.CellAt(pos)))
		}
		b.WriteString("#\n")
	}
	b.WriteString(border)

	return b.String()
}

// Glyph returns the character used for a cell kind in text dumps.
func Glyph(c CellKind) byte {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Ghost:
		return 'g'
	case Bat:
		return 'b'
	case Umbrella:
		return 'u'
	case Mummy:
		return 'm'
	default:
		return ' '
	}
}
