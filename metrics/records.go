package metrics

import "time"

// MatchRecord summarizes one candidate-vs-opponent match.
type MatchRecord struct {
	ID        int
	Opponent  string
	Rounds    int
	Wins      int // Candidate round wins
	Losses    int
	Draws     int
	Outcome   string // Match outcome from the candidate's perspective
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// RoundRecord is one round of one match, from the candidate's perspective.
type RoundRecord struct {
	Match   int // MatchRecord.ID
	Round   int
	Mine    string
	Theirs  string
	Outcome string
}

// StandingRecord aggregates all matches against one opponent.
type StandingRecord struct {
	Opponent    string
	Matches     int
	MatchWins   int
	MatchLosses int
	MatchDraws  int
	RoundWins   int
	RoundLosses int
	RoundDraws  int
	WinRate     float64 // Round win rate
}
