// Package poker provides the card model, a standard deck and a five-to-seven
// card hand evaluator.
package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrMalformedCard is returned when a token cannot be decoded into a rank and suit.
var ErrMalformedCard = errors.New("malformed card")

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in canonical order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = [4]string{"hearts", "diamonds", "clubs", "spades"}

// String returns the suit name used in card tokens (e.g. "hearts").
func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return "?"
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, Two (2) through Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single-character rank (e.g. "T", "A").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// ParseRank converts a rank character to a Rank.
func ParseRank(c byte) (Rank, bool) {
	switch c {
	case 't':
		c = 'T'
	case 'j':
		c = 'J'
	case 'q':
		c = 'Q'
	case 'k':
		c = 'K'
	case 'a':
		c = 'A'
	}
	idx := strings.IndexByte(rankChars, c)
	if idx < 0 {
		return 0, false
	}
	return Two + Rank(idx), true
}

// Card is an immutable playing card. The zero value means "no card".
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from its rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsZero reports whether c is the empty card slot.
func (c Card) IsZero() bool {
	return c.Rank == 0
}

// Valid reports whether c holds a real rank and suit.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit <= Spades
}

// String returns the canonical token, e.g. "Ahearts" or "Tspades".
func (c Card) String() string {
	if c.IsZero() {
		return ""
	}
	return c.Rank.String() + c.Suit.String()
}

// Short returns the two-character form, e.g. "Ah".
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.String()[:1]
}

// Pretty returns the rank followed by the suit glyph, e.g. "A♥".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Index returns a dense index in [0, 52): rank-major, suit-minor.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return Card{Rank: Two + Rank(i/4), Suit: Suit(i % 4)}
}

// ParseCard decodes a card token. The suit is found by matching the longest
// known suit-name suffix; the remaining prefix must be a single rank
// character. The two-character short form ("Ah") is accepted as well.
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)
	suit, prefix, ok := matchSuitName(token)
	if !ok {
		suit, prefix, ok = matchSuitLetter(token)
	}
	if !ok {
		return Card{}, fmt.Errorf("%w: %q has no known suit", ErrMalformedCard, token)
	}
	if len(prefix) != 1 {
		return Card{}, fmt.Errorf("%w: %q has invalid rank %q", ErrMalformedCard, token, prefix)
	}
	rank, ok := ParseRank(prefix[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: %q has invalid rank %q", ErrMalformedCard, token, prefix)
	}
	return NewCard(rank, suit), nil
}

func matchSuitName(token string) (Suit, string, bool) {
	lower := strings.ToLower(token)
	best := -1
	for i, name := range suitNames {
		if strings.HasSuffix(lower, name) && (best < 0 || len(name) > len(suitNames[best])) {
			best = i
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return Suit(best), token[:len(token)-len(suitNames[best])], true
}

func matchSuitLetter(token string) (Suit, string, bool) {
	if len(token) != 2 {
		return 0, "", false
	}
	switch token[1] {
	case 'h', 'H':
		return Hearts, token[:1], true
	case 'd', 'D':
		return Diamonds, token[:1], true
	case 'c', 'C':
		return Clubs, token[:1], true
	case 's', 'S':
		return Spades, token[:1], true
	}
	return 0, "", false
}

// ParseCards decodes every token, stopping at the first malformed one.
// Empty tokens decode to the zero card.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t) == "" {
			cards = append(cards, Card{})
			continue
		}
		c, err := ParseCard(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(tokens ...string) []Card {
	cards, err := ParseCards(tokens)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %v: %v", tokens, err))
	}
	return cards
}

// CardSet is a set of cards stored as a 52-bit mask.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards, skipping empty slots.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add inserts a card into the set.
func (cs *CardSet) Add(c Card) {
	if c.IsZero() {
		return
	}
	*cs |= 1 << c.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c Card) bool {
	if c.IsZero() {
		return false
	}
	return cs&(1<<c.Index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// FormatCards joins card tokens with spaces.
func FormatCards(cards []Card, format func(Card) string) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.IsZero() {
			continue
		}
		parts = append(parts, format(c))
	}
	return strings.Join(parts, " ")
}
