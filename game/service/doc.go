// Package service provides the business logic layer for slide2048.
//
// The service package implements:
//   - Multi-session game management
//   - Rule profile lookup
//   - Push processing and event reporting
//   - Push history pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads and lists rule profiles.
//
// The service layer sits between a host (the play loop or the analyzer) and
// the game engine. Each session owns its own engine, grid and random
// source; the service serialises every command that mutates a grid.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Push(ctx, info.ID, "down-left")
package service
