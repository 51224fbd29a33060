package game

import "fmt"

// Move is one action in a round. The set is closed: every value a strategy
// returns must be one of the constants below.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

const NumMoves = 3

func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("invalid(%d)", int(m))
	}
}

// Beats reports whether m defeats other: rock breaks scissors, scissors cut
// paper, paper covers rock.
func (m Move) Beats(other Move) bool {
	switch m {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	default:
		return false
	}
}

// Counter returns the move that defeats m.
func Counter(m Move) Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

func ParseMove(s string) (Move, error) {
	switch s {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}
