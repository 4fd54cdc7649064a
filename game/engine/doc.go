// Package engine provides the grid simulation for the slide2048 puzzle.
//
// The engine package implements:
//   - The fixed Size×Size numeric grid and its game-over flag
//   - Directional slide-and-merge for the four cardinal and four diagonal directions
//   - Random tile injection through an injected RandomSource
//   - Terminal-state detection over 8-connected neighbours
//   - The GameEngine state machine driven by "new game" and "push" commands
//
// Core Types:
//
// Grid holds the cells and the game-over flag. Direction is a unit vector;
// Lines turns a direction into the independent cell sequences a push
// compacts. GameEngine owns one Grid and exposes the command surface used by
// hosts: NewGame, Push, and read-only snapshots through GetState.
//
// Usage:
//
//	eng, err := engine.NewEngine(engine.DefaultGameConfig(), engine.NewRandomSource(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome := eng.Push(engine.Left)
//	if outcome.NeedsRedraw {
//		state := eng.GetState()
//		_ = state.Grid.Cells
//	}
//
// Game Rules:
//
// Every push slides tiles toward the edge named by the direction. Two tiles
// merge when their sum is a power of two, and each settled cell merges at most
// once per push. A push that changes the grid spawns a 2 or a 4 into a random
// empty cell. The game is over when the grid is full and no two neighbouring
// cells, diagonals included, hold the same value.
package engine
