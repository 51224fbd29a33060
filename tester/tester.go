package tester

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dscsnu/ping-game-theory-25-pkg/engine"
	"github.com/dscsnu/ping-game-theory-25-pkg/game"
	"github.com/dscsnu/ping-game-theory-25-pkg/metrics"
	"github.com/dscsnu/ping-game-theory-25-pkg/strategy"
)

const DefaultMatches = 10

// DefaultOpponents is the builtin roster a candidate is tested against when
// no explicit roster is configured.
var DefaultOpponents = []string{
	"rock", "paper", "scissors",
	"random", "cycle",
	"copycat", "counter",
	"frequency", "markov",
}

type Option func(t *StrategyTester)

func WithName(name string) Option {
	return func(t *StrategyTester) {
		if name != "" {
			t.name = name
		}
	}
}

func WithRounds(rounds int) Option {
	return func(t *StrategyTester) {
		if rounds > 0 {
			t.rounds = rounds
		}
	}
}

func WithMatches(matches int) Option {
	return func(t *StrategyTester) {
		if matches > 0 {
			t.matches = matches
		}
	}
}

// WithSeed makes randomized builtin opponents reproducible across runs.
func WithSeed(seed uint64) Option {
	return func(t *StrategyTester) {
		t.seed = seed
		t.seeded = true
	}
}

func WithOpponents(names ...string) Option {
	return func(t *StrategyTester) {
		if len(names) > 0 {
			t.opponents = names
		}
	}
}

// WithRecords writes per-match and per-round CSV records under dir.
func WithRecords(dir string) Option {
	return func(t *StrategyTester) {
		t.recordsDir = dir
	}
}

func WithOutput(w io.Writer) Option {
	return func(t *StrategyTester) {
		if w != nil {
			t.out = w
		}
	}
}

// StrategyTester pits a candidate strategy against a roster of builtin
// opponents and reports aggregate standings. It is constructed from a
// Factory so every match gets a fresh candidate instance.
type StrategyTester struct {
	name       string
	factory    strategy.Factory
	rounds     int
	matches    int
	seed       uint64
	seeded     bool
	opponents  []string
	recordsDir string
	out        io.Writer
}

func New(factory strategy.Factory, options ...Option) *StrategyTester {
	if factory == nil {
		panic("tester needs a strategy factory")
	}
	t := &StrategyTester{ // Default values
		name:      "candidate",
		factory:   factory,
		rounds:    engine.DefaultRounds,
		matches:   DefaultMatches,
		opponents: DefaultOpponents,
		out:       os.Stdout,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Standing aggregates all matches of the candidate against one opponent.
type Standing struct {
	Opponent   string
	Matches    int
	MatchScore game.Score // Won/lost/drawn matches
	RoundScore game.Score // Summed round outcomes
}

type Report struct {
	Name      string
	Rounds    int
	Matches   int
	Standings []Standing
}

// Overall sums the round scores across every opponent.
func (r Report) Overall() game.Score {
	var total game.Score
	for _, s := range r.Standings {
		total.Wins += s.RoundScore.Wins
		total.Losses += s.RoundScore.Losses
		total.Draws += s.RoundScore.Draws
	}
	return total
}

// Run executes every match of the candidate against the roster, prints the
// standings table, and writes CSV records if configured.
func (t *StrategyTester) Run() (Report, error) {
	if t.seeded {
		strategy.Seed(t.seed)
	}

	// Resolve the whole roster up front so a typo fails before any match.
	factories := make([]strategy.Factory, len(t.opponents))
	for i, name := range t.opponents {
		factory, err := strategy.Lookup(name)
		if err != nil {
			return Report{}, fmt.Errorf("roster: %w", err)
		}
		factories[i] = factory
	}

	log.Info().Msgf("testing %s against %d opponents, %d matches of %d rounds each...",
		t.name, len(t.opponents), t.matches, t.rounds)

	count := 0
	standings := make([]Standing, 0, len(t.opponents))
	matchRecords := []metrics.MatchRecord{}
	roundRecords := []metrics.RoundRecord{}

	for oi, opponent := range t.opponents {
		log.Info().Msgf("starting matchup %d of %d against %s...", oi+1, len(t.opponents), opponent)

		standing := Standing{Opponent: opponent}
		for i := 0; i < t.matches; i++ {
			count++
			match := engine.NewMatch(
				engine.Player{Name: t.name, Strategy: t.factory()},
				engine.Player{Name: opponent, Strategy: factories[oi]()},
				t.rounds,
			)

			start := time.Now()
			result, err := match.Run()
			if err != nil {
				return Report{}, fmt.Errorf("match %d against %s: %w", i+1, opponent, err)
			}
			end := time.Now()

			outcome := result.Outcome()
			standing.Matches++
			standing.MatchScore.Add(outcome)
			standing.RoundScore.Wins += result.A.Wins
			standing.RoundScore.Losses += result.A.Losses
			standing.RoundScore.Draws += result.A.Draws

			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:        count,
				Opponent:  opponent,
				Rounds:    result.Rounds,
				Wins:      result.A.Wins,
				Losses:    result.A.Losses,
				Draws:     result.A.Draws,
				Outcome:   outcome.String(),
				StartTime: start,
				EndTime:   end,
				Duration:  end.Sub(start),
			})
			for ri, round := range result.History {
				roundRecords = append(roundRecords, metrics.RoundRecord{
					Match:   count,
					Round:   ri + 1,
					Mine:    round.Mine.String(),
					Theirs:  round.Theirs.String(),
					Outcome: round.Outcome().String(),
				})
			}

			log.Debug().Msgf("completed match %d of %d against %s: %s", i+1, t.matches, opponent, outcome)
		}
		standings = append(standings, standing)

		log.Info().Msgf("completed matchup %d of %d against %s: %d-%d-%d",
			oi+1, len(t.opponents), opponent,
			standing.MatchScore.Wins, standing.MatchScore.Losses, standing.MatchScore.Draws)
	}

	report := Report{
		Name:      t.name,
		Rounds:    t.rounds,
		Matches:   t.matches,
		Standings: standings,
	}
	t.print(report)

	if t.recordsDir != "" {
		err := t.writeRecords(matchRecords, roundRecords, standings)
		if err != nil {
			return Report{}, err
		}
	}

	return report, nil
}

func (t *StrategyTester) print(report Report) {
	fmt.Fprintf(t.out, "%s vs builtin roster (%d matches of %d rounds each)\n",
		report.Name, report.Matches, report.Rounds)
	fmt.Fprintf(t.out, "%-12s %8s %8s %8s %12s %10s\n",
		"opponent", "won", "lost", "drawn", "rounds", "win rate")
	for _, s := range report.Standings {
		fmt.Fprintf(t.out, "%-12s %8d %8d %8d %4d-%d-%d %9.1f%%\n",
			s.Opponent,
			s.MatchScore.Wins, s.MatchScore.Losses, s.MatchScore.Draws,
			s.RoundScore.Wins, s.RoundScore.Losses, s.RoundScore.Draws,
			100*s.RoundScore.WinRate())
	}
	overall := report.Overall()
	fmt.Fprintf(t.out, "overall round record %d-%d-%d (%.1f%% wins)\n",
		overall.Wins, overall.Losses, overall.Draws, 100*overall.WinRate())
}

func (t *StrategyTester) writeRecords(matchRecords []metrics.MatchRecord, roundRecords []metrics.RoundRecord, standings []Standing) error {
	writer, err := metrics.NewWriter(t.recordsDir, t.name)
	if err != nil {
		return fmt.Errorf("failed to create records writer: %w", err)
	}

	err = writer.WriteMatchRecords(matchRecords)
	if err != nil {
		return fmt.Errorf("failed to write match records: %w", err)
	}

	err = writer.WriteRoundRecords(roundRecords)
	if err != nil {
		return fmt.Errorf("failed to write round records: %w", err)
	}

	standingRecords := make([]metrics.StandingRecord, len(standings))
	for i, s := range standings {
		standingRecords[i] = metrics.StandingRecord{
			Opponent:    s.Opponent,
			Matches:     s.Matches,
			MatchWins:   s.MatchScore.Wins,
			MatchLosses: s.MatchScore.Losses,
			MatchDraws:  s.MatchScore.Draws,
			RoundWins:   s.RoundScore.Wins,
			RoundLosses: s.RoundScore.Losses,
			RoundDraws:  s.RoundScore.Draws,
			WinRate:     s.RoundScore.WinRate(),
		}
	}
	err = writer.WriteStandings(standingRecords)
	if err != nil {
		return fmt.Errorf("failed to write standings: %w", err)
	}

	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}
