package tester

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
	"github.com/dscsnu/ping-game-theory-25-pkg/strategy"
)

func rockFactory() strategy.Strategy {
	return strategy.Constant{Move: game.Rock}
}

func TestRunAgainstFixedRoster(t *testing.T) {
	var out bytes.Buffer
	tester := New(rockFactory,
		WithName("rock"),
		WithRounds(10),
		WithMatches(3),
		WithOpponents("scissors", "paper"),
		WithOutput(&out),
	)

	report, err := tester.Run()

	require.NoError(t, err)
	require.Equal(t, "rock", report.Name)
	require.Equal(t, 10, report.Rounds)
	require.Equal(t, 3, report.Matches)
	require.Len(t, report.Standings, 2)

	vsScissors := report.Standings[0]
	require.Equal(t, "scissors", vsScissors.Opponent)
	require.Equal(t, game.Score{Wins: 3}, vsScissors.MatchScore, "Rock should win every match against scissors")
	require.Equal(t, game.Score{Wins: 30}, vsScissors.RoundScore)

	vsPaper := report.Standings[1]
	require.Equal(t, "paper", vsPaper.Opponent)
	require.Equal(t, game.Score{Losses: 3}, vsPaper.MatchScore)
	require.Equal(t, game.Score{Losses: 30}, vsPaper.RoundScore)

	overall := report.Overall()
	require.Equal(t, game.Score{Wins: 30, Losses: 30}, overall)

	require.Contains(t, out.String(), "scissors")
	require.Contains(t, out.String(), "overall round record 30-30-0")
}

func TestRunFailsOnUnknownOpponent(t *testing.T) {
	tester := New(rockFactory,
		WithOpponents("lizard"),
		WithOutput(&bytes.Buffer{}),
	)

	_, err := tester.Run()

	require.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestRunSeededIsReproducible(t *testing.T) {
	run := func() Report {
		tester := New(rockFactory,
			WithRounds(20),
			WithMatches(2),
			WithSeed(99),
			WithOpponents("random"),
			WithOutput(&bytes.Buffer{}),
		)
		report, err := tester.Run()
		require.NoError(t, err)
		return report
	}

	require.Equal(t, run(), run(), "Same seed should reproduce the standings")
}

func TestRunWritesRecords(t *testing.T) {
	dir := t.TempDir()
	tester := New(rockFactory,
		WithName("rock"),
		WithRounds(5),
		WithMatches(2),
		WithOpponents("paper"),
		WithRecords(dir),
		WithOutput(&bytes.Buffer{}),
	)

	_, err := tester.Run()
	require.NoError(t, err)

	runs, err := os.ReadDir(filepath.Join(dir, "rock"))
	require.NoError(t, err)
	require.Len(t, runs, 1)

	runDir := filepath.Join(dir, "rock", runs[0].Name())
	for _, name := range []string{"match_records.csv", "round_records.csv", "standings.csv"} {
		_, err := os.Stat(filepath.Join(runDir, name))
		require.NoError(t, err, "%s should be written", name)
	}
}

func TestNewPanicsWithoutFactory(t *testing.T) {
	require.Panics(t, func() {
		New(nil)
	})
}

func TestDefaults(t *testing.T) {
	tester := New(rockFactory)

	require.Equal(t, "candidate", tester.name)
	require.Equal(t, DefaultMatches, tester.matches)
	require.Equal(t, DefaultOpponents, tester.opponents)
}
