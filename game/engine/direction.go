package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a unit push vector. Each component is -1, 0 or 1 and at
// least one is non-zero.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

var (
	Up        = Direction{DX: 0, DY: -1}
	Down      = Direction{DX: 0, DY: 1}
	Left      = Direction{DX: -1, DY: 0}
	Right     = Direction{DX: 1, DY: 0}
	UpLeft    = Direction{DX: -1, DY: -1}
	UpRight   = Direction{DX: 1, DY: -1}
	DownLeft  = Direction{DX: -1, DY: 1}
	DownRight = Direction{DX: 1, DY: 1}
)

// Directions lists every push direction, cardinals first.
var Directions = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var directionNames = map[Direction]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
}

// ParseDirection maps a name such as "up" or "down-left" to a Direction.
// Underscores and spaces are accepted in place of the dash.
func ParseDirection(name string) (Direction, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for d, n := range directionNames {
		if n == normalized {
			return d, nil
		}
	}
	return Direction{}, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// Valid reports whether d is one of the eight unit vectors.
func (d Direction) Valid() bool {
	if d.DX < -1 || d.DX > 1 || d.DY < -1 || d.DY > 1 {
		return false
	}
	return d.DX != 0 || d.DY != 0
}

// IsDiagonal reports whether both components are non-zero.
func (d Direction) IsDiagonal() bool {
	return d.DX != 0 && d.DY != 0
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// inBounds checks grid bounds
func inBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Lines partitions the grid into the independent cell sequences a push in
// direction d compacts. Each line starts at an edge cell, whose forward step
// leaves the grid, and walks backwards against d. Edge cells are visited in
// row-major order. An invalid direction yields no lines.
func Lines(d Direction) [][]Position {
	if !d.Valid() {
		return nil
	}

	var lines [][]Position
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if inBounds(x+d.DX, y+d.DY) {
				continue
			}

			var line []Position
			for cx, cy := x, y; inBounds(cx, cy); cx, cy = cx-d.DX, cy-d.DY {
				line = append(line, Position{X: cx, Y: cy})
			}
			lines = append(lines, line)
		}
	}
	return lines
}
