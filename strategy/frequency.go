package strategy

import "github.com/dscsnu/ping-game-theory-25-pkg/game"

func init() {
	Register("frequency", func() Strategy { return Frequency{} })
}

// Frequency plays the best response to the opponent's most common move so
// far. Ties break toward the earlier move in enum order.
type Frequency struct{}

func (Frequency) Begin() game.Move {
	return game.Rock
}

func (Frequency) Turn(history game.History) game.Move {
	if len(history) == 0 {
		return Frequency{}.Begin()
	}

	var counts [game.NumMoves]int
	for _, round := range history {
		counts[round.Theirs]++
	}

	favorite := game.Rock
	for m := game.Rock; m <= game.Scissors; m++ {
		if counts[m] > counts[favorite] {
			favorite = m
		}
	}
	return game.Counter(favorite)
}
