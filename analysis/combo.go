package analysis

import (
	"slices"

	"github.com/lox/pokertrainer/poker"
)

// Combination is one concrete two-card holding of a hand class.
type Combination struct {
	First  poker.Card
	Second poker.Card
}

// NewCombination pairs two cards.
func NewCombination(first, second poker.Card) Combination {
	return Combination{First: first, Second: second}
}

// String returns both card tokens separated by a space.
func (c Combination) String() string {
	return c.First.String() + " " + c.Second.String()
}

// Cards returns both cards as a slice.
func (c Combination) Cards() []poker.Card {
	return []poker.Card{c.First, c.Second}
}

// Contains reports whether card is one of the two cards.
func (c Combination) Contains(card poker.Card) bool {
	return c.First == card || c.Second == card
}

// Overlaps reports whether c and other share at least one card.
func (c Combination) Overlaps(other Combination) bool {
	return c.Contains(other.First) || c.Contains(other.Second)
}

// Blocked reports whether either card is in the set.
func (c Combination) Blocked(set poker.CardSet) bool {
	return set.Contains(c.First) || set.Contains(c.Second)
}

// Notation classifies the combination into its hand class.
func (c Combination) Notation() Notation {
	return ClassifyCombo(c)
}

// ClassifyCombo returns the hand class a combination belongs to.
func ClassifyCombo(c Combination) Notation {
	hi, lo := c.First.Rank, c.Second.Rank
	if hi < lo {
		hi, lo = lo, hi
	}
	switch {
	case hi == lo:
		return Notation{High: hi, Low: lo, Kind: Pair}
	case c.First.Suit == c.Second.Suit:
		return Notation{High: hi, Low: lo, Kind: Suited}
	default:
		return Notation{High: hi, Low: lo, Kind: Offsuit}
	}
}

// combosByIndex holds the expansion of every class, built once.
var combosByIndex = func() [NotationCount][]Combination {
	var table [NotationCount][]Combination
	for _, n := range allNotations {
		table[n.Index()] = buildCombos(n)
	}
	return table
}()

func buildCombos(n Notation) []Combination {
	combos := make([]Combination, 0, n.Combos())
	switch n.Kind {
	case Pair:
		// one per unordered pair of distinct suits
		for i, s1 := range poker.Suits {
			for _, s2 := range poker.Suits[i+1:] {
				combos = append(combos, NewCombination(poker.NewCard(n.High, s1), poker.NewCard(n.Low, s2)))
			}
		}
	case Suited:
		for _, s := range poker.Suits {
			combos = append(combos, NewCombination(poker.NewCard(n.High, s), poker.NewCard(n.Low, s)))
		}
	case Offsuit:
		// one per ordered pair of differing suits
		for _, s1 := range poker.Suits {
			for _, s2 := range poker.Suits {
				if s1 != s2 {
					combos = append(combos, NewCombination(poker.NewCard(n.High, s1), poker.NewCard(n.Low, s2)))
				}
			}
		}
	}
	return combos
}

// Combinations returns the concrete combinations of the class.
func (n Notation) Combinations() []Combination {
	return slices.Clone(combosByIndex[n.Index()])
}

// Expand returns the combinations denoted by a single notation token.
// Malformed tokens yield an empty result.
func Expand(token string) []Combination {
	n, err := ParseNotation(token)
	if err != nil {
		return nil
	}
	return n.Combinations()
}

// ExpandMany concatenates the expansion of every token in order. Overlapping
// tokens are not deduplicated.
func ExpandMany(tokens []string) []Combination {
	var out []Combination
	for _, t := range tokens {
		n, err := ParseNotation(t)
		if err != nil {
			continue
		}
		out = append(out, combosByIndex[n.Index()]...)
	}
	return out
}

// Filter returns the combinations that share no card with blockers.
// The input slice is not modified.
func Filter(combos []Combination, blockers []poker.Card) []Combination {
	dead := poker.NewCardSet(blockers...)
	out := make([]Combination, 0, len(combos))
	for _, c := range combos {
		if !c.Blocked(dead) {
			out = append(out, c)
		}
	}
	return out
}
