// Command slide2048 plays the eight-direction sliding number game in the
// terminal.
//
// Keys are read from stdin as whitespace-separated names ("q", "8",
// "space") and mapped through the selected profile's key table. The grid is
// printed after every command that changes it. Type "quit" to exit.
//
// Settings come from flags, then SLIDE2048_* environment variables, then an
// optional .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/slide2048/game/config"
	"github.com/wricardo/slide2048/game/service"
	"github.com/wricardo/slide2048/game/session"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "slide2048"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	env, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(env).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the root command. Environment values become the flag
// defaults so an explicit flag always wins.
func newCommand(env config.Environment) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "push numbered tiles in eight directions and merge them",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: env.ConfigDir,
				Usage: "directory containing rule profiles; pass \"\" for the built-in profile only",
			},
			&cli.StringFlag{
				Name:  "profile",
				Value: env.Profile,
				Usage: "rule profile to play",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: env.Seed,
				Usage: "random seed; 0 picks one from the clock",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: env.Debug,
				Usage: "enable debug logging",
			},
		},
		Action: runPlay,
	}
}

// runPlay wires the services and hands stdin to the play host.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	gameService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	var seed *int64
	if s := cmd.Int64("seed"); s != 0 {
		seed = &s
	}

	info, err := gameService.CreateSession(ctx, cmd.String("profile"), seed)
	if err != nil {
		return err
	}

	log.Printf("Starting %s v%s (profile: %s, seed: %d, session: %s)",
		AppName, Version, info.ConfigName, info.Seed, info.ID)

	in, out := io.Reader(os.Stdin), io.Writer(os.Stdout)
	if cmd.Reader != nil {
		in = cmd.Reader
	}
	if cmd.Writer != nil {
		out = cmd.Writer
	}

	host := newPlayer(gameService, info, out)
	return host.Run(ctx, in)
}

// initializeServices creates the config manager, session manager and game
// service. A missing default profile directory falls back to the built-in
// profile.
func initializeServices(configDir string) (service.GameService, error) {
	if resolved := config.ResolveDir(configDir); resolved != configDir {
		log.Printf("Profile directory %q not found, using the built-in profile", configDir)
		configDir = resolved
	}

	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	return service.NewGameService(sessionManager, configManager), nil
}
