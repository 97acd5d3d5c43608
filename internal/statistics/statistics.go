package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult represents the outcome of a single poker hand for one player
type HandResult struct {
	NetChips       int     // Chips won or lost
	NetBB          float64 // NetChips in big blinds
	WentToShowdown bool    // Did this player reach showdown?
	Won            bool    // Did this player collect any chips?
	FinalPotSize   int     // Final pot size in chips
	FinalStack     int     // Stack after the hand
}

// Statistics tracks one player's results over a run
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Wins      int
	Showdowns int
	NetChips  int
	// FinalStack is the stack after the last recorded hand, summed over
	// tables once merged.
	FinalStack int

	// Detailed analytics - track ALL results, not just wins
	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won without showdown (fold equity)
	ShowdownBB      float64 // BB from showdown (wins AND losses)
	NonShowdownBB   float64 // BB from fold equity (wins AND losses)
	AllBB           float64 // Total BB for sanity check
}

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumBB2-float64(s.Hands)*mean*mean)/float64(s.Hands-1))
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the share of hands in which the player collected chips.
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands)
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)
	s.NetChips += result.NetChips
	s.FinalStack = result.FinalStack

	if result.Won {
		s.Wins++
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.Showdowns++
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB
}

// Merge folds o into s.
func (s *Statistics) Merge(o *Statistics) {
	s.Hands += o.Hands
	s.SumBB += o.SumBB
	s.SumBB2 += o.SumBB2
	s.Values = append(s.Values, o.Values...)
	s.Wins += o.Wins
	s.Showdowns += o.Showdowns
	s.NetChips += o.NetChips
	s.FinalStack += o.FinalStack
	s.ShowdownWins += o.ShowdownWins
	s.NonShowdownWins += o.NonShowdownWins
	s.ShowdownBB += o.ShowdownBB
	s.NonShowdownBB += o.NonShowdownBB
	s.AllBB += o.AllBB
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	if s.ShowdownWins+s.NonShowdownWins != s.Wins {
		return fmt.Errorf("showdown (%d) and non-showdown (%d) wins do not add up to %d",
			s.ShowdownWins, s.NonShowdownWins, s.Wins)
	}

	if s.Wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", s.Wins, s.Hands)
	}

	return nil
}
