package game

import (
	"fmt"
	"strings"
)

// Direction is a player movement intent.
type Direction uint8

const (
	North Direction = iota + 1
	South
	East
	West
)

var (
	// Directions maps each direction to its unit step.
	Directions = map[Direction]Position{
		North: {X: 0, Y: -1},
		South: {X: 0, Y: 1},
		East:  {X: 1, Y: 0},
		West:  {X: -1, Y: 0},
	}

	directionNames = map[Direction]string{
		North: "North",
		South: "South",
		East:  "East",
		West:  "West",
	}

	directionAliases = map[string]Direction{
		"north": North, "k": North, "w": North, "up": North,
		"south": South, "s": South, "j": South, "down": South,
		"east": East, "l": East, "d": East, "right": East,
		"west": West, "h": West, "a": West, "left": West,
	}
)

// Delta returns the unit step of d, or the zero position for an unknown direction.
func (d Direction) Delta() Position {
	return Directions[d]
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	_, ok := Directions[d]
	return ok
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection decodes a direction name, an arrow word, or a vi/wasd key.
// "w" means north (wasd) and "s" means south.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
