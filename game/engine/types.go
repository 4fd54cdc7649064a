package engine

const (
	// Size is the grid edge length.
	Size = 4

	// MaxBulkPushes caps the directions accepted by one bulk push.
	MaxBulkPushes = 50

	// MaxKeyLength bounds the length of a key name in a profile.
	MaxKeyLength = 16
)

// ActionNewGame is the key binding action that starts a new game.
const ActionNewGame = "new_game"

// Position represents x,y coordinates; X is the column and Y the row
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the numeric board plus the game-over flag.
// Cells are indexed [y][x]; 0 marks an empty cell.
type Grid struct {
	Cells    [Size][Size]int `json:"cells"`
	GameOver bool            `json:"game_over"`
}

// GameConfig represents a rule profile loaded from JSON
type GameConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Keys        map[string]string `json:"keys"`
	Messages    Messages          `json:"messages"`
}

// Messages are the host-facing texts of a profile
type Messages struct {
	Welcome  string `json:"welcome"`
	GameOver string `json:"game_over"`
}

// GameState represents the complete game state
type GameState struct {
	Grid       Grid           `json:"grid"`
	Message    string         `json:"message"`
	ConfigName string         `json:"config_name"`
	History    []HistoryEntry `json:"history"`

	// TotalPushes counts pushes across every game of the engine; History is
	// cleared by NewGame.
	TotalPushes int `json:"total_pushes"`
	Games       int `json:"games"`
}

// HistoryEntry represents a single command since the last new game
type HistoryEntry struct {
	Action       string    `json:"action"`
	Changed      bool      `json:"changed"`
	Spawned      *Position `json:"spawned,omitempty"`
	SpawnedValue int       `json:"spawned_value,omitempty"`
	GameOver     bool      `json:"game_over"`
	Timestamp    int64     `json:"timestamp"`
	MoveNumber   int       `json:"move_number"`
}

// PushOutcome reports what a command did to the grid.
type PushOutcome struct {
	Changed     bool      `json:"changed"`
	NeedsRedraw bool      `json:"needs_redraw"`
	Ignored     bool      `json:"ignored,omitempty"`
	GameOver    bool      `json:"game_over"`
	Spawned     *Position `json:"spawned,omitempty"`
}
