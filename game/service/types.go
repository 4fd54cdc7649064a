package service

import (
	"time"

	"github.com/wricardo/slide2048/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Seed           int64              `json:"seed"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// PushResult contains the result of a push or new game command
type PushResult struct {
	Changed     bool              `json:"changed"`
	NeedsRedraw bool              `json:"needs_redraw"`
	Ignored     bool              `json:"ignored,omitempty"`
	GameOver    bool              `json:"game_over"`
	Direction   string            `json:"direction,omitempty"`
	Spawned     *engine.Position  `json:"spawned,omitempty"`
	GameState   *engine.GameState `json:"game_state"`
	Message     string            `json:"message"`
	Events      []GameEvent       `json:"events,omitempty"`

	// PossibleMoves lists the directions that would still change the grid
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// BulkPushResult contains the result of several pushes
type BulkPushResult struct {
	RequestedPushes int               `json:"requested_pushes"`
	PushesExecuted  int               `json:"pushes_executed"`
	ChangedPushes   int               `json:"changed_pushes"`
	GameState       *engine.GameState `json:"game_state"`
	Events          []GameEvent       `json:"events"`
	StoppedReason   string            `json:"stopped_reason,omitempty"`
	StoppedOnPush   int               `json:"stopped_on_push,omitempty"` // 1-based
	Truncated       bool              `json:"truncated,omitempty"`
	Limit           int               `json:"limit,omitempty"`

	MaxTileBefore int `json:"max_tile_before"`
	MaxTileAfter  int `json:"max_tile_after"`

	Steps []StepInfo `json:"steps,omitempty"`

	GameOver      bool     `json:"game_over"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// StepInfo is a compact record for each executed push in a bulk call
type StepInfo struct {
	Idx          int              `json:"idx"`
	Dir          string           `json:"dir"`
	Changed      bool             `json:"changed"`
	Spawned      *engine.Position `json:"spawned,omitempty"`
	SpawnedValue int              `json:"spawned_value,omitempty"`
	SumAfter     int              `json:"sum_after"`
	GameOver     bool             `json:"game_over,omitempty"`
}

// Event types reported in results
const (
	EventPush     = "push"
	EventSpawn    = "spawn"
	EventGameOver = "game_over"
	EventNewGame  = "new_game"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures push history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated push history
type HistoryResponse struct {
	Entries      []engine.HistoryEntry `json:"entries"`
	TotalEntries int                   `json:"total_entries"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	HasNext      bool                  `json:"has_next"`
	HasPrevious  bool                  `json:"has_previous"`
}

// ConfigInfo provides information about a rule profile
type ConfigInfo struct {
	Filename    string `json:"filename,omitempty"` // empty for the built-in profile
	ConfigID    string `json:"config_id"`          // identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	KeyCount    int    `json:"key_count"`
}
