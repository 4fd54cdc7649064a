package engine

// Push slides and merges every line induced by d toward d's edge.
// It reports whether any cell changed; a false result leaves the grid
// untouched.
func (g *Grid) Push(d Direction) bool {
	if !d.Valid() {
		assert(false, "push with invalid direction %v", d)
		return false
	}

	changed := false
	for _, line := range Lines(d) {
		if g.pushLine(line) {
			changed = true
		}
	}
	return changed
}

// pushLine compacts one line toward index 0. The cursor i is the settled
// position and j the next occupied cell behind it. A cell merges at most
// once because i advances after every merge attempt.
func (g *Grid) pushLine(line []Position) bool {
	changed := false
	i, j := 0, 1

	for i < len(line) {
		for j == i || (j < len(line) && g.at(line[j]) == 0) {
			j++
		}
		if j >= len(line) {
			break
		}

		if g.at(line[i]) == 0 {
			g.set(line[i], g.at(line[j]))
			g.set(line[j], 0)
			changed = true
			continue
		}

		if sum := g.at(line[i]) + g.at(line[j]); isPowerOfTwo(sum) {
			g.set(line[i], sum)
			g.set(line[j], 0)
			changed = true
		}
		i++
	}

	return changed
}

// IsTerminal reports whether no push can change the grid: every cell is
// occupied and no two 8-connected neighbours hold equal values.
func (g *Grid) IsTerminal() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.Cells[y][x] == 0 {
				return false
			}

			for ny := max(y-1, 0); ny <= min(y+1, Size-1); ny++ {
				for nx := max(x-1, 0); nx <= min(x+1, Size-1); nx++ {
					if (nx != x || ny != y) && g.Cells[ny][nx] == g.Cells[y][x] {
						return false
					}
				}
			}
		}
	}
	return true
}

func (g *Grid) at(p Position) int {
	return g.Cells[p.Y][p.X]
}

func (g *Grid) set(p Position, v int) {
	g.Cells[p.Y][p.X] = v
}
