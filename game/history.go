package game

// Round records both moves of one completed round, from one player's
// perspective.
type Round struct {
	Mine   Move
	Theirs Move
}

type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// Compare scores a round from the perspective of mine.
func Compare(mine, theirs Move) Outcome {
	switch {
	case mine == theirs:
		return Draw
	case mine.Beats(theirs):
		return Win
	default:
		return Loss
	}
}

func (r Round) Outcome() Outcome {
	return Compare(r.Mine, r.Theirs)
}

// History is the chronological record of all completed rounds of a match,
// oldest first. Strategies must treat it as read-only.
type History []Round

func (h History) Mine() []Move {
	moves := make([]Move, len(h))
	for i, r := range h {
		moves[i] = r.Mine
	}
	return moves
}

func (h History) Theirs() []Move {
	moves := make([]Move, len(h))
	for i, r := range h {
		moves[i] = r.Theirs
	}
	return moves
}

// Last returns the most recent round, if any round has been played.
func (h History) Last() (Round, bool) {
	if len(h) == 0 {
		return Round{}, false
	}
	return h[len(h)-1], true
}

// Flip returns the same history seen from the opponent's perspective. The
// engine keeps a single record and hands each side its own view.
func (h History) Flip() History {
	flipped := make(History, len(h))
	for i, r := range h {
		flipped[i] = Round{Mine: r.Theirs, Theirs: r.Mine}
	}
	return flipped
}

// Score tallies the history from the "mine" perspective.
func (h History) Score() Score {
	var s Score
	for _, r := range h {
		s.Add(r.Outcome())
	}
	return s
}
