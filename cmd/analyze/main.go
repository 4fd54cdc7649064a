// Command analyze checks the rule profiles in a config directory and then
// plays seeded random games through the service layer. It reports, per
// game, how many pushes were made, the largest tile and whether the game
// reached the terminal state. Every grid it observes is checked with
// engine.ValidateGrid.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/slide2048/game/config"
	"github.com/wricardo/slide2048/game/engine"
	"github.com/wricardo/slide2048/game/service"
	"github.com/wricardo/slide2048/game/session"
)

// ValidationResult captures the outcome of validating a single profile file.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Notes  []string
}

// GameResult summarises one played game.
type GameResult struct {
	Seed     int64
	Pushes   int
	MaxTile  int
	Terminal bool
}

// Report aggregates the played games.
type Report struct {
	Profile   string
	Games     []GameResult
	Terminal  int
	MaxTile   int
	AvgPushes float64
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "validate rule profiles and play seeded random games",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-dir", Value: config.DefaultDir, Usage: "directory containing rule profiles; pass \"\" for the built-in profile only"},
			&cli.StringFlag{Name: "profile", Value: "classic", Usage: "profile used for the played games"},
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games to play"},
			&cli.IntFlag{Name: "max-pushes", Value: 5000, Usage: "push limit per game"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed of the first game; game i uses seed+i"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Writer
	if out == nil {
		out = os.Stdout
	}
	configDir := config.ResolveDir(cmd.String("config-dir"))

	results, err := validateProfiles(configDir)
	if err != nil {
		return err
	}
	if !printValidation(out, results) {
		return cli.Exit("some profiles have errors", 1)
	}

	configManager, err := config.NewManager(configDir)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}
	gameService := service.NewGameService(session.NewManager(), configManager)

	report, err := playGames(ctx, gameService, cmd.String("profile"), cmd.Int("games"), cmd.Int("max-pushes"), cmd.Int64("seed"))
	if err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

// validateProfiles loads and validates every *.json file in dir. An empty
// dir has no profile files to check.
func validateProfiles(dir string) ([]ValidationResult, error) {
	if dir == "" {
		return nil, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find profile files: %w", err)
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateProfile(file))
	}
	return results, nil
}

// validateProfile checks one profile file. Notes describe what the profile
// binds when it is valid.
func validateProfile(path string) ValidationResult {
	result := ValidationResult{File: filepath.Base(path), Valid: true}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("failed to read file: %v", err))
		return result
	}

	var profile engine.GameConfig
	if err := json.Unmarshal(data, &profile); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&profile); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	perDirection := map[engine.Direction][]string{}
	var newGameKeys []string
	for key := range profile.Keys {
		d, newGame, _ := profile.ActionFor(key)
		if newGame {
			newGameKeys = append(newGameKeys, key)
			continue
		}
		perDirection[d] = append(perDirection[d], key)
	}

	result.Notes = append(result.Notes, fmt.Sprintf("%d keys bound", len(profile.Keys)))
	for _, d := range engine.Directions {
		result.Notes = append(result.Notes, fmt.Sprintf("%-10s %s", d, joinSorted(perDirection[d])))
	}
	result.Notes = append(result.Notes, fmt.Sprintf("%-10s %s", engine.ActionNewGame, joinSorted(newGameKeys)))
	return result
}

// printValidation writes the validation report and returns whether every
// profile is valid.
func printValidation(w io.Writer, results []ValidationResult) bool {
	if len(results) == 0 {
		fmt.Fprintln(w, "no profile files, using the built-in profile")
		return true
	}

	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)
		if result.Valid {
			fmt.Fprintln(w, "VALID")
			for _, note := range result.Notes {
				fmt.Fprintln(w, "  "+note)
			}
			continue
		}
		allValid = false
		fmt.Fprintln(w, "INVALID")
		for _, err := range result.Errors {
			fmt.Fprintln(w, "  "+err)
		}
	}
	return allValid
}

// playGames plays seeded random games of profile. Directions are drawn from
// a source derived from each game's seed and sent in bulk batches.
func playGames(ctx context.Context, svc service.GameService, profile string, games, maxPushes int, baseSeed int64) (*Report, error) {
	report := &Report{Profile: profile}

	for i := range games {
		seed := baseSeed + int64(i)
		result, err := playGame(ctx, svc, profile, maxPushes, seed)
		if err != nil {
			return nil, fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
		}

		report.Games = append(report.Games, result)
		report.MaxTile = max(report.MaxTile, result.MaxTile)
		if result.Terminal {
			report.Terminal++
		}
	}

	if len(report.Games) > 0 {
		total := 0
		for _, g := range report.Games {
			total += g.Pushes
		}
		report.AvgPushes = float64(total) / float64(len(report.Games))
	}

	return report, nil
}

func playGame(ctx context.Context, svc service.GameService, profile string, maxPushes int, seed int64) (GameResult, error) {
	info, err := svc.CreateSession(ctx, profile, &seed)
	if err != nil {
		return GameResult{}, err
	}
	defer svc.DeleteSession(ctx, info.ID)

	if err := engine.ValidateGrid(info.GameState.Grid); err != nil {
		return GameResult{}, err
	}

	picker := engine.NewRandomSource(^seed)
	result := GameResult{Seed: seed}
	grid := info.GameState.Grid

	for result.Pushes < maxPushes && !grid.GameOver {
		batch := make([]string, min(engine.MaxBulkPushes, maxPushes-result.Pushes))
		for i := range batch {
			batch[i] = engine.Directions[picker.IntN(len(engine.Directions))].String()
		}

		bulk, err := svc.BulkPush(ctx, info.ID, batch)
		if err != nil {
			return GameResult{}, err
		}
		if err := engine.ValidateGrid(bulk.GameState.Grid); err != nil {
			return GameResult{}, err
		}

		result.Pushes += bulk.PushesExecuted
		grid = bulk.GameState.Grid
		if bulk.PushesExecuted == 0 {
			break
		}
	}

	result.MaxTile = grid.MaxTile()
	result.Terminal = grid.GameOver
	return result, nil
}

func printReport(w io.Writer, report *Report) {
	fmt.Fprintf(w, "\n%s games with profile %s\n", strings.Repeat("=", 20), report.Profile)
	for _, g := range report.Games {
		status := "stopped"
		if g.Terminal {
			status = "terminal"
		}
		fmt.Fprintf(w, "seed %-6d pushes %-6d max tile %-6d %s\n", g.Seed, g.Pushes, g.MaxTile, status)
	}
	fmt.Fprintf(w, "\n%d/%d games reached the terminal state, largest tile %d, %.1f pushes per game\n",
		report.Terminal, len(report.Games), report.MaxTile, report.AvgPushes)
}

func joinSorted(keys []string) string {
	if len(keys) == 0 {
		return "(none)"
	}
	slices.Sort(keys)
	return strings.Join(keys, " ")
}
