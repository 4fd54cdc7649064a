package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"up", Up},
		{"DOWN", Down},
		{" left ", Left},
		{"right", Right},
		{"up-left", UpLeft},
		{"up_right", UpRight},
		{"down left", DownLeft},
		{"Down-Right", DownRight},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			d, err := ParseDirection(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, d)
		})
	}
}

func TestParseDirection_Unknown(t *testing.T) {
	for _, name := range []string{"", "north", "upleft", "up-up"} {
		_, err := ParseDirection(name)
		require.Error(t, err, name)
		require.True(t, errors.Is(err, ErrInvalidDirection))
	}
}

func TestDirection_StringRoundTrip(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}
	require.Equal(t, "(0,0)", Direction{}.String())
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range Directions {
		require.True(t, d.Valid(), d.String())
	}
	require.False(t, Direction{}.Valid())
	require.False(t, Direction{DX: 2}.Valid())
	require.False(t, Direction{DX: 1, DY: -2}.Valid())
}

func TestDirection_IsDiagonal(t *testing.T) {
	diagonal := map[Direction]bool{UpLeft: true, UpRight: true, DownLeft: true, DownRight: true}
	for _, d := range Directions {
		require.Equal(t, diagonal[d], d.IsDiagonal(), d.String())
	}
}

func TestLines_Partition(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			lines := Lines(d)

			seen := make(map[Position]int)
			for _, line := range lines {
				require.NotEmpty(t, line)

				// index 0 is the edge cell: its forward neighbour is outside
				head := line[0]
				require.False(t, inBounds(head.X+d.DX, head.Y+d.DY))

				for k, p := range line {
					seen[p]++
					if k > 0 {
						prev := line[k-1]
						require.Equal(t, Position{X: prev.X - d.DX, Y: prev.Y - d.DY}, p)
					}
				}
			}

			require.Len(t, seen, Size*Size, "every cell belongs to a line")
			for p, n := range seen {
				require.Equal(t, 1, n, "cell %v appears in %d lines", p, n)
			}

			if d.IsDiagonal() {
				require.Len(t, lines, 2*Size-1)
			} else {
				require.Len(t, lines, Size)
				for _, line := range lines {
					require.Len(t, line, Size)
				}
			}
		})
	}
}

func TestLines_InvalidDirection(t *testing.T) {
	require.Nil(t, Lines(Direction{}))
	require.Nil(t, Lines(Direction{DX: 3, DY: 1}))
}

func TestLines_RowMajorEdgeOrder(t *testing.T) {
	lines := Lines(Left)
	for y, line := range lines {
		require.Equal(t, Position{X: 0, Y: y}, line[0])
		require.Equal(t, Position{X: Size - 1, Y: y}, line[Size-1])
	}
}

func TestGameState_JSONSerialization(t *testing.T) {
	state := GameState{
		Grid:       gridFromRows([Size][Size]int{{2, 0, 0, 4}}),
		Message:    "hello",
		ConfigName: "classic",
		History: []HistoryEntry{
			{Action: "left", Changed: true, Spawned: &Position{X: 1, Y: 2}, SpawnedValue: 2, MoveNumber: 1},
		},
		TotalPushes: 3,
		Games:       1,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "grid")
	require.Contains(t, raw, "total_pushes")

	grid := raw["grid"].(map[string]any)
	require.Contains(t, grid, "cells")
	require.Equal(t, false, grid["game_over"])
}
