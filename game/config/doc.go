// Package config provides rule profile management for slide2048.
//
// The config package handles:
//   - Loading profiles from JSON files
//   - Profile validation through engine.ValidateGameConfig
//   - The built-in classic profile used when no file overrides it
//   - Profile discovery and listing
//   - Reading SLIDE2048_* environment settings
//
// Profile Format:
//
// Profiles are stored as JSON files in the configs directory. Each profile
// defines:
//   - A name and description
//   - Key bindings from lower-case key names to direction names
//     ("up", "down-left", ...) or "new_game"; every direction must be bound
//   - Host messages shown on a new game and on game over
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := manager.LoadConfig("vi")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List available profiles
//	profiles, err := manager.ListConfigs()
package config
