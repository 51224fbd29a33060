package strategy

import "github.com/dscsnu/ping-game-theory-25-pkg/game"

func init() {
	Register("markov", func() Strategy { return NewMarkov() })
}

// Markov keeps order-1 transition counts over the opponent's moves and plays
// the best response to the most likely next move. Before any transition from
// the opponent's current move has been observed, it falls back to countering
// their most recent move.
type Markov struct {
	transitions [game.NumMoves][game.NumMoves]int
	seen        int
}

func NewMarkov() *Markov {
	return &Markov{}
}

func (m *Markov) Begin() game.Move {
	return game.Rock
}

func (m *Markov) Turn(history game.History) game.Move {
	if len(history) == 0 {
		return m.Begin()
	}

	// Fold in transitions observed since the previous call. The engine only
	// appends, so counting from the watermark keeps this linear overall.
	theirs := history.Theirs()
	for i := m.seen; i+1 < len(theirs); i++ {
		m.transitions[theirs[i]][theirs[i+1]]++
	}
	if last := len(theirs) - 1; last > m.seen {
		m.seen = last
	}

	current := theirs[len(theirs)-1]
	row := m.transitions[current]
	predicted := current
	best := 0
	for move, count := range row {
		if count > best {
			best = count
			predicted = game.Move(move)
		}
	}
	return game.Counter(predicted)
}
