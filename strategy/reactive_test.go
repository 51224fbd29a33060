package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
)

func TestCycle(t *testing.T) {
	c := &Cycle{}

	require.Equal(t, game.Rock, c.Begin())
	require.Equal(t, game.Paper, c.Turn(game.History{}))
	require.Equal(t, game.Scissors, c.Turn(game.History{}))
	require.Equal(t, game.Rock, c.Turn(game.History{}), "Cycle should wrap around")
}

func TestCycleResetsOnBegin(t *testing.T) {
	c := &Cycle{}
	c.Begin()
	c.Turn(game.History{})

	require.Equal(t, game.Rock, c.Begin(), "Begin should restart the cycle")
}

func TestCopycat(t *testing.T) {
	s := Copycat{}

	require.Equal(t, game.Rock, s.Begin())
	require.Equal(t, game.Rock, s.Turn(game.History{}), "Empty history falls back to the opening move")
	require.Equal(t, game.Scissors, s.Turn(game.History{
		{Mine: game.Rock, Theirs: game.Paper},
		{Mine: game.Paper, Theirs: game.Scissors},
	}), "Copycat should replay the opponent's previous move")
}

func TestCounterStrategy(t *testing.T) {
	s := Counter{}

	require.Equal(t, game.Rock, s.Begin())
	require.Equal(t, game.Rock, s.Turn(game.History{}), "Empty history falls back to the opening move")

	tests := []struct {
		theirs   game.Move
		expected game.Move
	}{
		{game.Rock, game.Paper},
		{game.Paper, game.Scissors},
		{game.Scissors, game.Rock},
	}
	for _, tt := range tests {
		history := game.History{{Mine: game.Rock, Theirs: tt.theirs}}
		require.Equal(t, tt.expected, s.Turn(history),
			"Counter should beat the opponent's previous move %s", tt.theirs)
	}
}
