package equity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokertrainer/analysis"
	"github.com/lox/pokertrainer/poker"
)

var (
	// ErrInvalidHoleCards is returned when the hero does not hold exactly two cards.
	ErrInvalidHoleCards = errors.New("hero must hold exactly two cards")
	// ErrInvalidBoard is returned for boards other than 0, 3, 4 or 5 cards.
	ErrInvalidBoard = errors.New("board must have 0, 3, 4 or 5 cards")
	// ErrUnknownAction is returned by ParseAction.
	ErrUnknownAction = errors.New("unknown action")
)

// Action is the last action a seat took this street.
type Action string

const (
	ActionNone  Action = ""
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
	ActionAllIn Action = "allin"
)

// ParseAction converts a string to an Action. The empty string and "none"
// both map to ActionNone.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionNone, "none":
		return ActionNone, nil
	case ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise, ActionAllIn:
		return a, nil
	case "all-in", "all_in":
		return ActionAllIn, nil
	default:
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}
	return string(a)
}

// Seat is the read-only state of one player at the table.
type Seat struct {
	Name   string
	Range  []string
	Action Action
	Bet    float64
	Hero   bool
}

// SelectOpponent returns the non-hero seat with the strictly largest bet.
// The earliest seat wins ties and seats that have not bet are never chosen.
func SelectOpponent(seats []Seat) (Seat, bool) {
	best := -1
	for i, s := range seats {
		if s.Hero || s.Bet <= 0 {
			continue
		}
		if best < 0 || s.Bet > seats[best].Bet {
			best = i
		}
	}
	if best < 0 {
		return Seat{}, false
	}
	return seats[best], true
}

// OpponentRange returns the range of the selected opponent, or every hand
// class when no opponent is selected or it has no action or range.
func OpponentRange(seats []Seat) []string {
	opp, ok := SelectOpponent(seats)
	if !ok || opp.Action == ActionNone || len(opp.Range) == 0 {
		return analysis.FullRange().Tokens()
	}
	return slices.Clone(opp.Range)
}

// HeroEquity resolves the opponent range for the table and returns the
// hero's equity against it. Board cards are used as blockers only. Without
// hole cards it reports no result.
func (c *Calculator) HeroEquity(hole, board []poker.Card, seats []Seat) (float64, bool, error) {
	hole = present(hole)
	board = present(board)
	if len(hole) == 0 {
		return 0, false, nil
	}
	if len(hole) != 2 {
		return 0, false, fmt.Errorf("%w: got %d", ErrInvalidHoleCards, len(hole))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return 0, false, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(board))
	}

	known := append(slices.Clone(hole), board...)
	seen := poker.NewCardSet()
	for _, card := range known {
		if !card.Valid() {
			return 0, false, fmt.Errorf("%w: %v", poker.ErrMalformedCard, card)
		}
		if seen.Contains(card) {
			return 0, false, fmt.Errorf("%w: %s", poker.ErrDuplicateCard, card)
		}
		seen.Add(card)
	}

	tokens := OpponentRange(seats)
	opponents := analysis.Filter(analysis.ExpandMany(tokens), known)
	hero := analysis.NewCombination(hole[0], hole[1])

	c.logger.Debug("Resolved opponent range", "hero", hero.Notation(), "classes", len(tokens), "combos", len(opponents))

	eq, ok := c.Equity(hero, opponents)
	return eq, ok, nil
}

func present(cards []poker.Card) []poker.Card {
	out := make([]poker.Card, 0, len(cards))
	for _, card := range cards {
		if !card.IsZero() {
			out = append(out, card)
		}
	}
	return out
}
