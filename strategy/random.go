package strategy

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
)

func init() {
	Register("random", func() Strategy { return NewRandom(source) })
}

// source backs the registry's no-arg random factory. Seed replaces it for
// reproducible runs.
var source = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// Seed makes every randomized builtin constructed from the registry after
// this call draw from a source seeded with the given value.
func Seed(seed uint64) {
	source = rand.New(rand.NewSource(seed))
}

// Random plays a uniformly random move every round.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{rng: rng}
}

func (r *Random) Begin() game.Move {
	return game.Move(r.rng.Intn(game.NumMoves))
}

func (r *Random) Turn(game.History) game.Move {
	return r.Begin()
}
