package strategy

import "github.com/dscsnu/ping-game-theory-25-pkg/game"

func init() {
	Register("rock", func() Strategy { return Constant{Move: game.Rock} })
	Register("paper", func() Strategy { return Constant{Move: game.Paper} })
	Register("scissors", func() Strategy { return Constant{Move: game.Scissors} })
}

// Constant plays the same fixed move on every round, ignoring all history.
// Constant{Move: game.Rock} is the canonical always-rock strategy.
type Constant struct {
	Move game.Move
}

func (c Constant) Begin() game.Move {
	return c.Move
}

func (c Constant) Turn(game.History) game.Move {
	return c.Begin()
}
