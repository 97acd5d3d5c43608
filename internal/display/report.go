package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/holdemsim/internal/phh"
	"github.com/lox/holdemsim/internal/simulator"
	"github.com/lox/holdemsim/internal/statistics"
	"github.com/lox/holdemsim/poker"
)

// Card renders a card with its suit symbol, hearts and diamonds in red.
func Card(c poker.Card) string {
	if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
		return RedCardStyle.Render(c.Symbol())
	}
	return BlackCardStyle.Render(c.Symbol())
}

// Cards renders cards separated by spaces.
func Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Chips renders a signed chip amount, green for gains and red for losses.
func Chips(n int) string {
	s := fmt.Sprintf("%+d", n)
	switch {
	case n > 0:
		return WinStyle.Render(s)
	case n < 0:
		return LossStyle.Render(s)
	default:
		return ValueStyle.Render(s)
	}
}

func row(label, value string) string {
	return LabelStyle.Render(fmt.Sprintf("%-14s", label)) + " " + ValueStyle.Render(value)
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}

// Report renders the summary of a simulation run.
func Report(r *simulator.Report) string {
	t := r.Stats
	sections := []string{
		HeaderStyle.Render("Simulation Results"),
		"",
		row("Hands", fmt.Sprintf("%d", r.Hands)),
		row("Tables", fmt.Sprintf("%d", len(r.Tables))),
		row("Elapsed", r.Elapsed.String()),
		row("Showdowns", fmt.Sprintf("%d (%.1f%%)", t.Showdowns, percent(t.Showdowns, t.Hands))),
		row("Fold-outs", fmt.Sprintf("%d (%.1f%%)", t.FoldOuts, percent(t.FoldOuts, t.Hands))),
		row("Average pot", fmt.Sprintf("%.1f", t.AveragePot())),
		row("Largest pot", fmt.Sprintf("%d", t.MaxPotChips)),
	}
	if r.History != "" {
		sections = append(sections, row("History", r.History))
	}

	sections = append(sections, SectionStyle.Render("Players"), TableStyle.Render(playerTable(t)))
	if len(t.Categories) > 0 {
		sections = append(sections, SectionStyle.Render("Showdown hands"), TableStyle.Render(categoryTable(t)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func playerTable(t *statistics.Table) string {
	lines := []string{
		LabelStyle.Render(fmt.Sprintf("%-12s %7s %6s %9s %9s %17s %8s", "Player", "Hands", "Won", "Net", "bb/hand", "95% CI", "Stack")),
	}
	for _, name := range t.Names() {
		s := t.Players[name]
		low, high := s.ConfidenceInterval95()
		lines = append(lines, fmt.Sprintf("%-12s %7d %5.1f%% %s %9.3f %17s %8d",
			name,
			s.Hands,
			s.WinRate()*100,
			lipgloss.NewStyle().Width(9).Align(lipgloss.Right).Render(Chips(s.NetChips)),
			s.Mean(),
			fmt.Sprintf("[%.2f, %.2f]", low, high),
			s.FinalStack))
	}
	return strings.Join(lines, "\n")
}

func categoryTable(t *statistics.Table) string {
	cats := make([]poker.Category, 0, len(t.Categories))
	for c := range t.Categories {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	slices.Reverse(cats)

	lines := []string{LabelStyle.Render(fmt.Sprintf("%-16s %7s %7s", "Hand", "Shown", "Won"))}
	for _, c := range cats {
		lines = append(lines, fmt.Sprintf("%-16s %7d %7d", c, t.Categories[c], t.Winning[c]))
	}
	return strings.Join(lines, "\n")
}

// HandHistory renders one decoded PHH hand.
func HandHistory(h phh.HandHistory) string {
	lines := []string{HeaderStyle.Render("Hand " + h.HandID)}
	if h.Table != "" {
		lines = append(lines, row("Table", h.Table))
	}
	lines = append(lines, row("Blinds", fmt.Sprintf("%v", h.BlindsOrStraddles)))

	for i, name := range h.Players {
		net := 0
		if i < len(h.FinishingStacks) && i < len(h.StartingStacks) {
			net = h.FinishingStacks[i] - h.StartingStacks[i]
		}
		lines = append(lines, fmt.Sprintf("  p%d %-12s %6d %s", i+1, name, h.StartingStacks[i], Chips(net)))
	}

	if board, err := phh.ParseCards(strings.Join(h.Board, "")); err == nil && len(board) > 0 {
		lines = append(lines, row("Board", Cards(board)))
	}
	for _, action := range h.Actions {
		lines = append(lines, "  "+ActionStyle.Render(action))
	}
	return strings.Join(lines, "\n")
}
