package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
	"github.com/dscsnu/ping-game-theory-25-pkg/strategy"
)

const DefaultRounds = 100

// ErrInvalidMove reports a strategy returning a value outside the move set.
// The match is aborted rather than scored.
var ErrInvalidMove = errors.New("move outside the valid move set")

// Player pairs a strategy with a display name for logs and reports.
type Player struct {
	Name string
	strategy.Strategy
}

// Result is the outcome of one completed match. History is recorded from
// player A's perspective.
type Result struct {
	Rounds  int
	A, B    game.Score
	History game.History
}

// Outcome reports the match result from player A's perspective, by round
// wins.
func (r Result) Outcome() game.Outcome {
	switch {
	case r.A.Wins > r.B.Wins:
		return game.Win
	case r.A.Wins < r.B.Wins:
		return game.Loss
	default:
		return game.Draw
	}
}

// Match drives a fixed number of rounds between two strategies: Begin on
// both for the opening round, then Turn with each side's own view of the
// accumulated history. Matches are synchronous and single-use.
type Match struct {
	a, b   Player
	rounds int
}

func NewMatch(a, b Player, rounds int) *Match {
	if a.Strategy == nil || b.Strategy == nil {
		panic("match needs two strategies")
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &Match{a: a, b: b, rounds: rounds}
}

// Run plays the match to completion. It fails with ErrInvalidMove if either
// strategy returns a move outside the valid set.
func (m *Match) Run() (Result, error) {
	aView := make(game.History, 0, m.rounds)
	bView := make(game.History, 0, m.rounds)

	for round := 1; round <= m.rounds; round++ {
		var aMove, bMove game.Move
		if round == 1 {
			aMove = m.a.Begin()
			bMove = m.b.Begin()
		} else {
			aMove = m.a.Turn(aView)
			bMove = m.b.Turn(bView)
		}

		if !aMove.Valid() {
			return Result{}, fmt.Errorf("%s round %d: %w: %d", m.a.Name, round, ErrInvalidMove, int(aMove))
		}
		if !bMove.Valid() {
			return Result{}, fmt.Errorf("%s round %d: %w: %d", m.b.Name, round, ErrInvalidMove, int(bMove))
		}

		aView = append(aView, game.Round{Mine: aMove, Theirs: bMove})
		bView = append(bView, game.Round{Mine: bMove, Theirs: aMove})

		log.Debug().
			Int("round", round).
			Stringer(m.a.Name, aMove).
			Stringer(m.b.Name, bMove).
			Stringer("outcome", game.Compare(aMove, bMove)).
			Msg("round played")
	}

	return Result{
		Rounds:  m.rounds,
		A:       aView.Score(),
		B:       bView.Score(),
		History: aView,
	}, nil
}
