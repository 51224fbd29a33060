package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
)

func TestRegistry(t *testing.T) {
	t.Run("constructs every builtin by name", func(t *testing.T) {
		for _, name := range Names() {
			s, err := New(name)
			require.NoError(t, err)
			require.NotNil(t, s)
			require.True(t, s.Begin().Valid(), "%s should open with a valid move", name)
		}
	})

	t.Run("fails on unknown names", func(t *testing.T) {
		_, err := New("lizard")
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("lists builtins in sorted order", func(t *testing.T) {
		names := Names()
		require.Contains(t, names, "rock")
		require.Contains(t, names, "random")
		require.Contains(t, names, "markov")
		require.IsIncreasing(t, names)
	})

	t.Run("panics on duplicate registration", func(t *testing.T) {
		require.Panics(t, func() {
			Register("rock", func() Strategy { return Constant{Move: game.Rock} })
		})
	})

	t.Run("panics on nil factory", func(t *testing.T) {
		require.Panics(t, func() {
			Register("broken", nil)
		})
	})
}

// Every builtin must accept histories of arbitrary length and always answer
// with a member of the move set.
func TestBuiltinsReturnValidMoves(t *testing.T) {
	histories := []game.History{
		{},
		{{Mine: game.Rock, Theirs: game.Paper}},
		{
			{Mine: game.Rock, Theirs: game.Rock},
			{Mine: game.Paper, Theirs: game.Scissors},
			{Mine: game.Scissors, Theirs: game.Paper},
		},
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			require.NoError(t, err)
			for _, history := range histories {
				require.True(t, s.Turn(history).Valid())
			}
		})
	}
}
