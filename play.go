package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wricardo/slide2048/game/engine"
	"github.com/wricardo/slide2048/game/service"
)

// quitKey ends the play loop. It is handled here and never reaches a profile.
const quitKey = "quit"

// player is a line-oriented host for one session. It maps key names to
// commands through the session's profile and prints the grid whenever a
// command asks for a redraw.
type player struct {
	svc       service.GameService
	sessionID string
	config    *engine.GameConfig
	out       io.Writer
}

func newPlayer(svc service.GameService, info *service.SessionInfo, out io.Writer) *player {
	return &player{
		svc:       svc,
		sessionID: info.ID,
		config:    info.GameConfig,
		out:       out,
	}
}

// Run prints the opening grid and then handles whitespace-separated key
// names from in until quit, end of input or cancellation.
func (p *player) Run(ctx context.Context, in io.Reader) error {
	state, err := p.svc.GetGameState(ctx, p.sessionID)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, state.Message)
	renderGrid(p.out, state.Grid)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		for _, key := range strings.Fields(scanner.Text()) {
			if err := ctx.Err(); err != nil {
				return nil
			}
			if strings.EqualFold(key, quitKey) {
				return nil
			}
			if err := p.Handle(ctx, key); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}

// Handle runs the command bound to key. Unbound keys are reported and
// otherwise ignored.
func (p *player) Handle(ctx context.Context, key string) error {
	d, newGame, ok := p.config.ActionFor(key)
	if !ok {
		fmt.Fprintf(p.out, "unknown key %q\n", key)
		return nil
	}

	var (
		result *service.PushResult
		err    error
	)
	if newGame {
		result, err = p.svc.NewGame(ctx, p.sessionID)
	} else {
		result, err = p.svc.Push(ctx, p.sessionID, d.String())
	}
	if err != nil {
		return err
	}

	switch {
	case newGame:
		fmt.Fprintln(p.out, result.Message)
	case result.Ignored, result.Changed && result.GameOver:
		fmt.Fprintln(p.out, result.Message)
	}

	if result.NeedsRedraw {
		renderGrid(p.out, result.GameState.Grid)
	}
	return nil
}

// renderGrid prints one row per line with right-aligned numbers and a dot
// for an empty cell.
func renderGrid(w io.Writer, g engine.Grid) {
	width := len(strconv.Itoa(max(g.MaxTile(), 2))) + 1

	var b strings.Builder
	for _, row := range g.Cells {
		for _, v := range row {
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	io.WriteString(w, b.String())
}
