package game

// Score is a running tally of round outcomes for one player.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (s *Score) Add(o Outcome) {
	switch o {
	case Win:
		s.Wins++
	case Loss:
		s.Losses++
	default:
		s.Draws++
	}
}

func (s Score) Rounds() int {
	return s.Wins + s.Losses + s.Draws
}

// Diff is the round differential, positive when winning overall.
func (s Score) Diff() int {
	return s.Wins - s.Losses
}

func (s Score) WinRate() float64 {
	if s.Rounds() == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds())
}
