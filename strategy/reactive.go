package strategy

import "github.com/dscsnu/ping-game-theory-25-pkg/game"

func init() {
	Register("cycle", func() Strategy { return &Cycle{} })
	Register("copycat", func() Strategy { return Copycat{} })
	Register("counter", func() Strategy { return Counter{} })
}

// Cycle walks rock, paper, scissors in order, one step per round.
type Cycle struct {
	next game.Move
}

func (c *Cycle) Begin() game.Move {
	c.next = game.Rock
	return c.step()
}

func (c *Cycle) Turn(game.History) game.Move {
	return c.step()
}

func (c *Cycle) step() game.Move {
	move := c.next
	c.next = (c.next + 1) % game.NumMoves
	return move
}

// Copycat opens with rock and then replays the opponent's previous move.
type Copycat struct{}

func (Copycat) Begin() game.Move {
	return game.Rock
}

func (Copycat) Turn(history game.History) game.Move {
	last, ok := history.Last()
	if !ok {
		return Copycat{}.Begin()
	}
	return last.Theirs
}

// Counter opens with rock and then plays whatever beats the opponent's
// previous move.
type Counter struct{}

func (Counter) Begin() game.Move {
	return game.Rock
}

func (Counter) Turn(history game.History) game.Move {
	last, ok := history.Last()
	if !ok {
		return Counter{}.Begin()
	}
	return game.Counter(last.Theirs)
}
