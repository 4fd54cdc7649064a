package engine

import "math/rand/v2"

// SpawnValues are the tiles a spawn may place, drawn uniformly.
var SpawnValues = [2]int{2, 4}

// RandomSource supplies uniform integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource creates a deterministic PCG-backed source for the seed.
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Spawn places a 2 or a 4 into a uniformly chosen empty cell and
// re-evaluates the game-over flag. On a full grid it only sets GameOver
// and reports false.
func (g *Grid) Spawn(rng RandomSource) (Position, int, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		g.GameOver = true
		assert(false, "spawn on a full grid")
		return Position{}, 0, false
	}

	pos := empty[rng.IntN(len(empty))]
	value := SpawnValues[rng.IntN(len(SpawnValues))]
	g.set(pos, value)

	g.GameOver = g.IsTerminal()
	return pos, value, true
}
