// Package analysis expands abbreviated hand notation into concrete two-card
// combinations and filters them against known cards.
package analysis

import (
	"errors"
	"fmt"

	"github.com/lox/pokertrainer/poker"
)

// ErrInvalidNotation is returned when a token is not a valid hand class.
var ErrInvalidNotation = errors.New("invalid hand notation")

// NotationCount is the number of distinct starting hand classes.
const NotationCount = 169

// Kind distinguishes pocket pairs, suited and offsuit hand classes.
type Kind uint8

const (
	Pair Kind = iota
	Suited
	Offsuit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// Notation is one of the 169 starting hand classes, e.g. AA, AKs or AKo.
// High is always >= Low.
type Notation struct {
	High poker.Rank
	Low  poker.Rank
	Kind Kind
}

// ParseNotation parses a single hand class. Rank order is normalised so
// "KAs" and "AKs" are the same class.
func ParseNotation(token string) (Notation, error) {
	if len(token) < 2 || len(token) > 3 {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}
	r1, ok1 := poker.ParseRank(token[0])
	r2, ok2 := poker.ParseRank(token[1])
	if !ok1 || !ok2 {
		return Notation{}, fmt.Errorf("%w: invalid rank in %q", ErrInvalidNotation, token)
	}
	if r1 < r2 {
		r1, r2 = r2, r1
	}

	if r1 == r2 {
		if len(token) == 3 {
			return Notation{}, fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %q", ErrInvalidNotation, token)
		}
		return Notation{High: r1, Low: r2, Kind: Pair}, nil
	}
	if len(token) == 2 {
		return Notation{}, fmt.Errorf("%w: %q needs an s or o suffix", ErrInvalidNotation, token)
	}

	switch token[2] {
	case 's', 'S':
		return Notation{High: r1, Low: r2, Kind: Suited}, nil
	case 'o', 'O':
		return Notation{High: r1, Low: r2, Kind: Offsuit}, nil
	default:
		return Notation{}, fmt.Errorf("%w: invalid modifier %q in %q", ErrInvalidNotation, token[2], token)
	}
}

// MustParseNotation parses a notation and panics on error (for tests and tables).
func MustParseNotation(token string) Notation {
	n, err := ParseNotation(token)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the canonical token, e.g. "AKs".
func (n Notation) String() string {
	s := n.High.String() + n.Low.String()
	switch n.Kind {
	case Suited:
		s += "s"
	case Offsuit:
		s += "o"
	}
	return s
}

// IsPair reports whether n is a pocket pair.
func (n Notation) IsPair() bool { return n.Kind == Pair }

// IsSuited reports whether n is a suited class.
func (n Notation) IsSuited() bool { return n.Kind == Suited }

// IsOffsuit reports whether n is an offsuit class.
func (n Notation) IsOffsuit() bool { return n.Kind == Offsuit }

// Combos returns the number of concrete combinations of the class.
func (n Notation) Combos() int {
	switch n.Kind {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// Index returns the dense position of n in the 13x13 starting hand grid:
// pairs on the diagonal, suited hands above it and offsuit hands below.
func (n Notation) Index() int {
	hi, lo := int(poker.Ace-n.High), int(poker.Ace-n.Low)
	if n.Kind == Offsuit {
		return lo*13 + hi
	}
	return hi*13 + lo
}

// SharedRanks counts the distinct ranks n and other have in common.
func (n Notation) SharedRanks(other Notation) int {
	shared := 0
	for _, r := range n.ranks() {
		if r == other.High || r == other.Low {
			shared++
		}
	}
	return shared
}

func (n Notation) ranks() []poker.Rank {
	if n.High == n.Low {
		return []poker.Rank{n.High}
	}
	return []poker.Rank{n.High, n.Low}
}

var allNotations = func() [NotationCount]Notation {
	var all [NotationCount]Notation
	for hi := poker.Ace; hi >= poker.Two; hi-- {
		for lo := poker.Ace; lo >= poker.Two; lo-- {
			var n Notation
			switch {
			case hi == lo:
				n = Notation{High: hi, Low: lo, Kind: Pair}
			case hi > lo:
				n = Notation{High: hi, Low: lo, Kind: Suited}
			default:
				n = Notation{High: lo, Low: hi, Kind: Offsuit}
			}
			all[n.Index()] = n
		}
	}
	return all
}()

// AllNotations returns the 169 hand classes once each in grid order
// (AA, AKs, AQs, ... AKo, KK, KQs, ... 22).
func AllNotations() []Notation {
	out := make([]Notation, NotationCount)
	copy(out, allNotations[:])
	return out
}

// NotationAt returns the class at a grid index from Notation.Index.
func NotationAt(index int) Notation {
	return allNotations[index]
}
