package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidGrid = errors.New("invalid grid")

// EmptyCells lists the zero cells in row-major order
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.Cells[y][x] == 0 {
				empty = append(empty, Position{X: x, Y: y})
			}
		}
	}
	return empty
}

// MaxTile returns the largest value on the grid
func (g *Grid) MaxTile() int {
	best := 0
	for _, row := range g.Cells {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

// Sum returns the total of all cell values
func (g *Grid) Sum() int {
	total := 0
	for _, row := range g.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Reset clears every cell and the game-over flag
func (g *Grid) Reset() {
	*g = Grid{}
}

// ValidateGrid checks that every non-zero cell is a power of two and that
// the game-over flag agrees with the terminal condition.
func ValidateGrid(g Grid) error {
	for y, row := range g.Cells {
		for x, v := range row {
			if v != 0 && !isPowerOfTwo(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d, not a power of two", ErrInvalidGrid, x, y, v)
			}
		}
	}

	if terminal := g.IsTerminal(); g.GameOver != terminal {
		return fmt.Errorf("%w: game_over is %v but terminal check is %v", ErrInvalidGrid, g.GameOver, terminal)
	}
	return nil
}

// isPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
