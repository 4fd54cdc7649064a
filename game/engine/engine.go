package engine

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrNilRandomSource = errors.New("random source cannot be nil")
	ErrNilState        = errors.New("state cannot be nil")
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	GetGrid() Grid
	NewGame() PushOutcome
	IsGameOver() bool

	// Push operations
	Push(d Direction) PushOutcome
	CanPush(d Direction) bool
	GetPossibleMoves() []Direction

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetHistory() []HistoryEntry
	GetLastMove() *HistoryEntry
}

// GameEngine implements the Engine interface. It owns its grid exclusively
// and is not safe for concurrent use; the session layer serialises access.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    RandomSource
}

// NewEngine creates a new game engine and starts its first game
func NewEngine(config *GameConfig, rng RandomSource) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	engine := &GameEngine{
		config: config,
		rng:    rng,
		state:  &GameState{ConfigName: config.Name},
	}
	engine.NewGame()

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with the classic profile
func NewEngineWithDefaults(seed int64) *GameEngine {
	engine, err := NewEngine(DefaultGameConfig(), NewRandomSource(seed))
	if err != nil {
		panic(err)
	}
	return engine
}

// GetState returns a copy of the current game state
func (e *GameEngine) GetState() *GameState {
	state := *e.state
	state.History = slices.Clone(e.state.History)
	return &state
}

// SetState replaces the game state after validating its grid
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return ErrNilState
	}
	if err := ValidateGrid(state.Grid); err != nil {
		return err
	}
	next := *state
	next.History = slices.Clone(state.History)
	e.state = &next
	return nil
}

// GetGrid returns a copy of the grid for rendering
func (e *GameEngine) GetGrid() Grid {
	return e.state.Grid
}

// NewGame clears the grid and seeds it with two tiles. It is accepted in
// every state.
func (e *GameEngine) NewGame() PushOutcome {
	e.state.Grid.Reset()
	e.state.History = []HistoryEntry{}
	e.state.Games++

	var last *Position
	for range 2 {
		if pos, _, ok := e.state.Grid.Spawn(e.rng); ok {
			last = &pos
		}
	}

	e.state.Message = e.config.Messages.Welcome
	if e.state.Grid.GameOver {
		e.state.Message = e.config.Messages.GameOver
	}

	e.addHistory(ActionNewGame, true, nil, 0)

	return PushOutcome{
		Changed:     true,
		NeedsRedraw: true,
		GameOver:    e.state.Grid.GameOver,
		Spawned:     last,
	}
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.Grid.GameOver
}

// Push runs one push command. Pushes are ignored once the game is over or
// when d is not a unit vector. A push that changes the grid spawns a tile
// and re-checks the terminal condition.
func (e *GameEngine) Push(d Direction) PushOutcome {
	if e.state.Grid.GameOver || !d.Valid() {
		return PushOutcome{Ignored: true, GameOver: e.state.Grid.GameOver}
	}

	outcome := PushOutcome{}
	var spawnedValue int

	if e.state.Grid.Push(d) {
		outcome.Changed = true
		outcome.NeedsRedraw = true

		if pos, value, ok := e.state.Grid.Spawn(e.rng); ok {
			outcome.Spawned = &pos
			spawnedValue = value
		}
		if e.state.Grid.IsTerminal() {
			e.state.Grid.GameOver = true
			e.state.Message = e.config.Messages.GameOver
		}
	}

	e.addHistory(d.String(), outcome.Changed, outcome.Spawned, spawnedValue)
	e.state.TotalPushes++

	outcome.GameOver = e.state.Grid.GameOver
	return outcome
}

// CanPush reports whether a push in d would change the grid
func (e *GameEngine) CanPush(d Direction) bool {
	if e.state.Grid.GameOver || !d.Valid() {
		return false
	}
	probe := e.state.Grid
	return probe.Push(d)
}

// GetPossibleMoves returns all directions that would change the grid
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions {
		if e.CanPush(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// GetConfig returns the current rule profile
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new rule profile and starts a new game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state.ConfigName = config.Name
	e.NewGame()
	return nil
}

// GetHistory returns the commands since the last new game
func (e *GameEngine) GetHistory() []HistoryEntry {
	return slices.Clone(e.state.History)
}

// GetLastMove returns the last command, or nil if there is none
func (e *GameEngine) GetLastMove() *HistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	last := e.state.History[len(e.state.History)-1]
	return &last
}

// BulkPush executes pushes in order and stops once the game is over
func (e *GameEngine) BulkPush(directions []Direction) []PushOutcome {
	results := make([]PushOutcome, 0, len(directions))

	for _, d := range directions {
		if e.IsGameOver() {
			break
		}
		results = append(results, e.Push(d))
	}

	return results
}

// addHistory appends a command to the history since the last new game
func (e *GameEngine) addHistory(action string, changed bool, spawned *Position, value int) {
	e.state.History = append(e.state.History, HistoryEntry{
		Action:       action,
		Changed:      changed,
		Spawned:      spawned,
		SpawnedValue: value,
		GameOver:     e.state.Grid.GameOver,
		Timestamp:    time.Now().Unix(),
		MoveNumber:   len(e.state.History) + 1,
	})
}
