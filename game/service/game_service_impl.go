package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wricardo/slide2048/game/engine"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	now      func() time.Time
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		now:      time.Now,
	}
}

// CreateSession creates a new game session. A nil seed draws one from the
// clock; the chosen seed is reported so a game can be replayed.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, seed *int64) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	configID := configName
	if configName != "" {
		var err error
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			return nil, s.configError(configName, err)
		}
	} else {
		config = s.configs.GetDefault()
		configID = s.getConfigID(config.Name)
	}

	sessionSeed := s.now().UnixNano()
	if seed != nil {
		sessionSeed = *seed
	}

	// Let session manager generate a 4-character ID
	session, err := s.sessions.Create("", config, sessionSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	session.ConfigID = configID

	return sessionInfo(session), nil
}

// configError lists the available profiles when the requested one is missing
func (s *gameServiceImpl) configError(configName string, err error) error {
	available, listErr := s.configs.ListConfigs()
	if listErr != nil || len(available) == 0 {
		return fmt.Errorf("failed to load config %s: %w", configName, err)
	}
	ids := make([]string, 0, len(available))
	for _, cfg := range available {
		ids = append(ids, cfg.ConfigID)
	}
	return fmt.Errorf("failed to load config %s (available: %v): %w", configName, ids, err)
}

// getConfigID returns the config_id for a profile display name
func (s *gameServiceImpl) getConfigID(configName string) string {
	available, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range available {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	return configName
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session together with its grid
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// NewGame starts a new game in a session. It is accepted in every state.
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*PushResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	outcome := sess.Engine.NewGame()
	state := sess.Engine.GetState()

	result := &PushResult{
		Changed:     outcome.Changed,
		NeedsRedraw: outcome.NeedsRedraw,
		GameOver:    outcome.GameOver,
		Spawned:     outcome.Spawned,
		GameState:   state,
		Message:     state.Message,
		Events: []GameEvent{{
			Type:      EventNewGame,
			Message:   fmt.Sprintf("Game %d started", state.Games),
			Timestamp: s.now(),
		}},
		PossibleMoves: directionNames(sess.Engine.GetPossibleMoves()),
	}

	return result, nil
}

// Push executes a single push for a session
func (s *gameServiceImpl) Push(ctx context.Context, sessionID, direction string) (*PushResult, error) {
	d, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	before := sess.Engine.GetGrid()
	outcome := sess.Engine.Push(d)
	state := sess.Engine.GetState()

	result := &PushResult{
		Changed:       outcome.Changed,
		NeedsRedraw:   outcome.NeedsRedraw,
		Ignored:       outcome.Ignored,
		GameOver:      outcome.GameOver,
		Direction:     d.String(),
		Spawned:       outcome.Spawned,
		GameState:     state,
		Message:       state.Message,
		Events:        s.extractPushEvents(d, before, outcome, state),
		PossibleMoves: directionNames(sess.Engine.GetPossibleMoves()),
	}

	return result, nil
}

// BulkPush executes pushes in order. It stops at game over and runs at most
// engine.MaxBulkPushes pushes. Every direction is parsed before the first
// push so a bad name leaves the grid untouched.
func (s *gameServiceImpl) BulkPush(ctx context.Context, sessionID string, directions []string) (*BulkPushResult, error) {
	if len(directions) == 0 {
		return nil, fmt.Errorf("no directions given")
	}

	parsed := make([]engine.Direction, 0, len(directions))
	for i, name := range directions {
		d, err := engine.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("direction %d: %w", i+1, err)
		}
		parsed = append(parsed, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	start := sess.Engine.GetGrid()
	result := &BulkPushResult{
		RequestedPushes: len(parsed),
		Events:          []GameEvent{},
		MaxTileBefore:   start.MaxTile(),
	}

	if len(parsed) > engine.MaxBulkPushes {
		parsed = parsed[:engine.MaxBulkPushes]
		result.Truncated = true
		result.Limit = engine.MaxBulkPushes
	}

	for i, d := range parsed {
		if err := ctx.Err(); err != nil {
			result.StoppedReason = "cancelled"
			result.StoppedOnPush = i + 1
			break
		}
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game over"
			result.StoppedOnPush = i + 1
			break
		}

		before := sess.Engine.GetGrid()
		outcome := sess.Engine.Push(d)
		after := sess.Engine.GetGrid()

		result.PushesExecuted++
		if outcome.Changed {
			result.ChangedPushes++
		}

		step := StepInfo{
			Idx:      i + 1,
			Dir:      d.String(),
			Changed:  outcome.Changed,
			Spawned:  outcome.Spawned,
			SumAfter: after.Sum(),
			GameOver: outcome.GameOver,
		}
		if outcome.Spawned != nil {
			step.SpawnedValue = after.Cells[outcome.Spawned.Y][outcome.Spawned.X]
		}
		result.Steps = append(result.Steps, step)

		state := sess.Engine.GetState()
		result.Events = append(result.Events, s.extractPushEvents(d, before, outcome, state)...)
	}

	state := sess.Engine.GetState()
	result.GameState = state
	result.GameOver = state.Grid.GameOver
	result.Message = state.Message
	result.MaxTileAfter = state.Grid.MaxTile()
	result.PossibleMoves = directionNames(sess.Engine.GetPossibleMoves())

	return result, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Engine.GetState(), nil
}

// GetPushHistory returns the paginated history since the last new game
func (s *gameServiceImpl) GetPushHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Engine.GetHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultHistoryLimit
	}
	if opts.Limit > maxHistoryLimit {
		opts.Limit = maxHistoryLimit
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := min((opts.Page-1)*opts.Limit, total)
	end := min(start+opts.Limit, total)

	entries := make([]engine.HistoryEntry, 0, end-start)
	if opts.Order == "desc" {
		// most recent first
		for i := total - 1 - start; i >= total-end; i-- {
			entries = append(entries, history[i])
		}
	} else {
		entries = append(entries, history[start:end]...)
	}

	return &HistoryResponse{
		Entries:      entries,
		TotalEntries: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListConfigs returns available rule profiles
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific rule profile
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// getSession looks a session up and marks it accessed. Callers hold the
// write lock because the access time is updated.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return sess, nil
}

// extractPushEvents generates events from a push
func (s *gameServiceImpl) extractPushEvents(d engine.Direction, before engine.Grid, outcome engine.PushOutcome, state *engine.GameState) []GameEvent {
	now := s.now()

	if outcome.Ignored {
		return []GameEvent{{
			Type:      EventPush,
			Message:   fmt.Sprintf("Push %s ignored, game is over", d),
			Timestamp: now,
		}}
	}

	events := []GameEvent{}
	if !outcome.Changed {
		events = append(events, GameEvent{
			Type:      EventPush,
			Message:   fmt.Sprintf("Push %s did not move any tile", d),
			Timestamp: now,
		})
		return events
	}

	events = append(events, GameEvent{
		Type:      EventPush,
		Message:   fmt.Sprintf("Pushed %s, largest tile %d", d, max(before.MaxTile(), state.Grid.MaxTile())),
		Timestamp: now,
	})

	if outcome.Spawned != nil {
		pos := *outcome.Spawned
		events = append(events, GameEvent{
			Type:      EventSpawn,
			Message:   fmt.Sprintf("Spawned %d at (%d,%d)", state.Grid.Cells[pos.Y][pos.X], pos.X, pos.Y),
			Timestamp: now,
			Position:  &pos,
		})
	}

	if outcome.GameOver {
		events = append(events, GameEvent{
			Type:      EventGameOver,
			Message:   state.Message,
			Timestamp: now,
		})
	}

	return events
}

func sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     session.ConfigID,
		Seed:           session.Seed,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}
}

func directionNames(directions []engine.Direction) []string {
	names := make([]string, 0, len(directions))
	for _, d := range directions {
		names = append(names, d.String())
	}
	return names
}
