package engine

import (
	"fmt"
	"strings"
)

// ValidateGameConfig validates a rule profile for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate key bindings
	if len(config.Keys) == 0 {
		return fmt.Errorf("config validation: keys must bind at least one key")
	}
	hasNewGame := false
	bound := make(map[Direction]bool)
	for key, action := range config.Keys {
		if key == "" || len(key) > MaxKeyLength {
			return fmt.Errorf("config validation: key %q must be 1 to %d characters", key, MaxKeyLength)
		}
		if key != strings.ToLower(key) {
			return fmt.Errorf("config validation: key %q must be lower case", key)
		}
		if action == ActionNewGame {
			hasNewGame = true
			continue
		}

		d, err := ParseDirection(action)
		if err != nil {
			return fmt.Errorf("config validation: key %q is bound to unknown action %q", key, action)
		}
		bound[d] = true
	}
	if !hasNewGame {
		return fmt.Errorf("config validation: keys must bind %q", ActionNewGame)
	}
	// Every direction needs a key: the terminal check counts diagonal neighbours.
	for _, d := range Directions {
		if !bound[d] {
			return fmt.Errorf("config validation: no key is bound to %q", d)
		}
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.GameOver == "" {
		return fmt.Errorf("config validation: messages.game_over is required")
	}

	return nil
}

// DefaultGameConfig returns the built-in classic profile: all eight
// directions on Q W E / A D / Z X C and the numeric keypad, space for a new
// game.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Eight-direction pushes on the letter block and numeric keypad",
		Keys: map[string]string{
			"q": "up-left", "w": "up", "e": "up-right",
			"a": "left", "d": "right",
			"z": "down-left", "x": "down", "c": "down-right",
			"7": "up-left", "8": "up", "9": "up-right",
			"4": "left", "6": "right",
			"1": "down-left", "2": "down", "3": "down-right",
			"space": ActionNewGame,
		},
		Messages: Messages{
			Welcome:  "Push with Q W E A D Z X C. Space starts a new game.",
			GameOver: "Game over. Press SPACE",
		},
	}
}

// ActionFor resolves a key to its bound action: a direction, or ok with
// newGame set for the new game binding.
func (c *GameConfig) ActionFor(key string) (d Direction, newGame bool, ok bool) {
	action, exists := c.Keys[strings.ToLower(key)]
	if !exists {
		return Direction{}, false, false
	}
	if action == ActionNewGame {
		return Direction{}, true, true
	}
	d, err := ParseDirection(action)
	if err != nil {
		return Direction{}, false, false
	}
	return d, false, true
}
