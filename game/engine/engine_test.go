package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// nearlyTerminalRows slides into terminalRows minus its top-right cell on a
// push left.
var nearlyTerminalRows = [Size][Size]int{
	{2, 4, 0, 2},
	{8, 16, 8, 16},
	{2, 4, 2, 4},
	{8, 16, 8, 16},
}

func countTiles(g Grid) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func newTestEngine(t *testing.T, rng RandomSource) *GameEngine {
	t.Helper()
	eng, err := NewEngine(DefaultGameConfig(), rng)
	require.NoError(t, err)
	return eng
}

func setGrid(t *testing.T, eng *GameEngine, rows [Size][Size]int) {
	t.Helper()
	state := eng.GetState()
	state.Grid = gridFromRows(rows)
	state.Grid.GameOver = state.Grid.IsTerminal()
	require.NoError(t, eng.SetState(state))
}

func TestNewEngine_SeedsTwoTiles(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(3))

	state := eng.GetState()
	require.Equal(t, 2, countTiles(state.Grid))
	require.False(t, state.Grid.GameOver)
	require.Equal(t, "classic", state.ConfigName)
	require.Equal(t, DefaultGameConfig().Messages.Welcome, state.Message)
	require.Equal(t, 1, state.Games)
	require.Len(t, state.History, 1)
	require.Equal(t, ActionNewGame, state.History[0].Action)
	require.NoError(t, ValidateGrid(state.Grid))
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(DefaultGameConfig(), nil)
	require.ErrorIs(t, err, ErrNilRandomSource)

	_, err = NewEngine(&GameConfig{Name: "broken"}, NewRandomSource(1))
	require.Error(t, err)

	_, err = NewEngine(nil, NewRandomSource(1))
	require.Error(t, err)
}

func TestNewEngineWithDefaults(t *testing.T) {
	eng := NewEngineWithDefaults(5)
	require.Equal(t, "classic", eng.GetConfig().Name)
	require.Equal(t, 2, countTiles(eng.GetGrid()))
}

func TestPush_NoChangeSkipsSpawnAndRedraw(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(11))
	setGrid(t, eng, [Size][Size]int{{2, 4, 0, 0}})
	before := eng.GetGrid()

	outcome := eng.Push(Left)

	require.False(t, outcome.Changed)
	require.False(t, outcome.NeedsRedraw)
	require.False(t, outcome.Ignored)
	require.Nil(t, outcome.Spawned)
	require.Equal(t, before, eng.GetGrid())

	last := eng.GetLastMove()
	require.NotNil(t, last)
	require.Equal(t, "left", last.Action)
	require.False(t, last.Changed)
}

func TestPush_ChangeSpawnsOneTile(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(11))
	setGrid(t, eng, [Size][Size]int{{2, 2, 0, 0}})

	outcome := eng.Push(Left)

	require.True(t, outcome.Changed)
	require.True(t, outcome.NeedsRedraw)
	require.NotNil(t, outcome.Spawned)

	grid := eng.GetGrid()
	require.Equal(t, 4, grid.Cells[0][0])
	require.Equal(t, 2, countTiles(grid), "merged tile plus one spawn")
	spawned := grid.Cells[outcome.Spawned.Y][outcome.Spawned.X]
	require.Contains(t, []int{2, 4}, spawned)
	require.Equal(t, 1, eng.GetState().TotalPushes)
}

func TestPush_ReachesGameOver(t *testing.T) {
	// four draws for the opening spawns, then candidate 0 and value 4
	rng := &scriptedSource{values: []int{0, 0, 0, 0, 0, 1}}
	eng := newTestEngine(t, rng)
	setGrid(t, eng, nearlyTerminalRows)

	outcome := eng.Push(Left)

	require.True(t, outcome.Changed)
	require.True(t, outcome.GameOver)
	require.Equal(t, &Position{X: 3, Y: 0}, outcome.Spawned)
	if diff := cmp.Diff(terminalRows, eng.GetGrid().Cells); diff != "" {
		t.Errorf("grid after final push (-want +got):\n%s", diff)
	}
	require.True(t, eng.IsGameOver())
	require.Equal(t, DefaultGameConfig().Messages.GameOver, eng.GetState().Message)
	require.Empty(t, eng.GetPossibleMoves())
}

func TestPush_IgnoredWhileGameOver(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(2))
	setGrid(t, eng, terminalRows)
	require.True(t, eng.IsGameOver())
	historyLen := len(eng.GetHistory())

	for _, d := range Directions {
		outcome := eng.Push(d)
		require.True(t, outcome.Ignored)
		require.True(t, outcome.GameOver)
		require.False(t, outcome.NeedsRedraw)
	}

	require.Equal(t, terminalRows, eng.GetGrid().Cells)
	require.Len(t, eng.GetHistory(), historyLen)
}

func TestPush_InvalidDirectionIgnored(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(2))
	before := eng.GetGrid()

	outcome := eng.Push(Direction{DX: 0, DY: 0})

	require.True(t, outcome.Ignored)
	require.Equal(t, before, eng.GetGrid())
}

func TestNewGame_ResetsFromGameOver(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(8))
	setGrid(t, eng, terminalRows)

	outcome := eng.NewGame()

	require.True(t, outcome.NeedsRedraw)
	require.False(t, outcome.GameOver)
	require.False(t, eng.IsGameOver())
	require.Equal(t, 2, countTiles(eng.GetGrid()))
	require.Len(t, eng.GetHistory(), 1)
	require.Equal(t, 2, eng.GetState().Games)
}

func TestNewGame_FromPlaying(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(8))
	setGrid(t, eng, [Size][Size]int{{2, 4, 8, 16}, {32, 64, 0, 0}})

	eng.NewGame()

	require.Equal(t, 2, countTiles(eng.GetGrid()))
	require.Equal(t, eng.GetConfig().Messages.Welcome, eng.GetState().Message)
}

func TestCanPush_DoesNotMutate(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(4))
	setGrid(t, eng, nearlyTerminalRows)
	before := eng.GetGrid()

	require.True(t, eng.CanPush(Left))
	require.True(t, eng.CanPush(Right))
	require.True(t, eng.CanPush(Up), "the gap in column 2 slides up")
	require.False(t, eng.CanPush(Down))
	require.False(t, eng.CanPush(Direction{}))
	require.Equal(t, before, eng.GetGrid())
}

func TestGetPossibleMoves(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(4))
	setGrid(t, eng, nearlyTerminalRows)

	moves := eng.GetPossibleMoves()

	require.Contains(t, moves, Left)
	require.Contains(t, moves, Right)
	require.NotContains(t, moves, Down)
	for _, d := range moves {
		require.True(t, eng.CanPush(d))
	}
}

func TestGetState_ReturnsCopy(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(4))

	state := eng.GetState()
	state.Grid.Cells[0][0] = 1024
	state.History = append(state.History, HistoryEntry{Action: "bogus"})

	fresh := eng.GetState()
	require.NotEqual(t, 1024, fresh.Grid.Cells[0][0])
	require.Len(t, fresh.History, 1)
}

func TestSetState_Validation(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(4))

	require.ErrorIs(t, eng.SetState(nil), ErrNilState)

	state := eng.GetState()
	state.Grid = gridFromRows(terminalRows)
	state.Grid.GameOver = false
	err := eng.SetState(state)
	require.True(t, errors.Is(err, ErrInvalidGrid))

	state.Grid = gridFromRows([Size][Size]int{{3}})
	err = eng.SetState(state)
	require.True(t, errors.Is(err, ErrInvalidGrid))
}

func TestSetConfig(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(4))

	custom := DefaultGameConfig()
	custom.Name = "custom"
	custom.Messages.Welcome = "hi"
	require.NoError(t, eng.SetConfig(custom))
	require.Equal(t, "custom", eng.GetState().ConfigName)
	require.Equal(t, "hi", eng.GetState().Message)

	require.Error(t, eng.SetConfig(&GameConfig{}))
	require.Equal(t, "custom", eng.GetConfig().Name)
}

func TestHistory_NumbersMovesSinceNewGame(t *testing.T) {
	eng := newTestEngine(t, NewRandomSource(21))

	for _, d := range []Direction{Left, Right, Up, Down} {
		eng.Push(d)
	}

	history := eng.GetHistory()
	require.Len(t, history, 5)
	for i, entry := range history {
		require.Equal(t, i+1, entry.MoveNumber)
	}

	eng.NewGame()
	require.Len(t, eng.GetHistory(), 1)
	require.Equal(t, 4, eng.GetState().TotalPushes)
}

func TestBulkPush_StopsAtGameOver(t *testing.T) {
	rng := &scriptedSource{values: []int{0, 0, 0, 0, 0, 1}}
	eng := newTestEngine(t, rng)
	setGrid(t, eng, nearlyTerminalRows)

	results := eng.BulkPush([]Direction{Left, Up, Down})

	require.Len(t, results, 1)
	require.True(t, results[0].GameOver)
}
