package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokertrainer/poker"
)

// Range is an ordered set of hand classes. Adding a class twice keeps the
// first position.
type Range struct {
	order []Notation
	seen  [NotationCount]bool
}

// NewRange creates a range from notation tokens.
func NewRange(tokens ...string) (*Range, error) {
	r := &Range{}
	for _, t := range tokens {
		n, err := ParseNotation(strings.TrimSpace(t))
		if err != nil {
			return nil, err
		}
		r.Add(n)
	}
	return r, nil
}

// FullRange returns every hand class once, in grid order.
func FullRange() *Range {
	r := &Range{}
	for _, n := range allNotations {
		r.Add(n)
	}
	return r
}

// Add inserts a class if it is not already present.
func (r *Range) Add(n Notation) {
	idx := n.Index()
	if r.seen[idx] {
		return
	}
	r.seen[idx] = true
	r.order = append(r.order, n)
}

// Contains reports whether the class is in the range.
func (r *Range) Contains(n Notation) bool {
	return r.seen[n.Index()]
}

// ContainsCombo reports whether the combination's class is in the range.
func (r *Range) ContainsCombo(c Combination) bool {
	return r.Contains(ClassifyCombo(c))
}

// Len returns the number of classes.
func (r *Range) Len() int {
	return len(r.order)
}

// Size returns the number of concrete combinations.
func (r *Range) Size() int {
	total := 0
	for _, n := range r.order {
		total += n.Combos()
	}
	return total
}

// Notations returns the classes in insertion order.
func (r *Range) Notations() []Notation {
	return slices.Clone(r.order)
}

// Tokens returns the classes as notation strings in insertion order.
func (r *Range) Tokens() []string {
	tokens := make([]string, len(r.order))
	for i, n := range r.order {
		tokens[i] = n.String()
	}
	return tokens
}

// String joins the tokens with commas.
func (r *Range) String() string {
	return strings.Join(r.Tokens(), ",")
}

// Combinations expands every class in order.
func (r *Range) Combinations() []Combination {
	out := make([]Combination, 0, r.Size())
	for _, n := range r.order {
		out = append(out, combosByIndex[n.Index()]...)
	}
	return out
}

// ParseRange creates a range from standard poker shorthand.
// Examples: "AA,KK", "AKs,AKo", "AK", "TT+", "A5s-A2s", "KTs+", "22-66"
func ParseRange(notation string) (*Range, error) {
	r := &Range{}
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}
	return r, nil
}

// addRangePart adds a single range notation part to the range.
func (r *Range) addRangePart(part string) error {
	switch {
	case strings.HasSuffix(part, "+"):
		return r.addPlusRange(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return r.addDashRange(part)
	default:
		return r.addBase(part)
	}
}

// base is a parsed token without the +/- operators. Unpaired two-character
// tokens such as "AK" cover both the suited and offsuit class.
type base struct {
	high, low       poker.Rank
	suited, offsuit bool
}

func parseBase(token string) (base, error) {
	if len(token) == 2 {
		r1, ok1 := poker.ParseRank(token[0])
		r2, ok2 := poker.ParseRank(token[1])
		if ok1 && ok2 && r1 != r2 {
			if r1 < r2 {
				r1, r2 = r2, r1
			}
			return base{high: r1, low: r2, suited: true, offsuit: true}, nil
		}
	}
	n, err := ParseNotation(token)
	if err != nil {
		return base{}, err
	}
	return base{high: n.High, low: n.Low, suited: n.Kind == Suited, offsuit: n.Kind == Offsuit}, nil
}

func (b base) pair() bool { return b.high == b.low }

func (r *Range) addUnpaired(high, low poker.Rank, b base) {
	if b.suited {
		r.Add(Notation{High: high, Low: low, Kind: Suited})
	}
	if b.offsuit {
		r.Add(Notation{High: high, Low: low, Kind: Offsuit})
	}
}

func (r *Range) addBase(token string) error {
	b, err := parseBase(token)
	if err != nil {
		return err
	}
	if b.pair() {
		r.Add(Notation{High: b.high, Low: b.low, Kind: Pair})
		return nil
	}
	r.addUnpaired(b.high, b.low, b)
	return nil
}

// addPlusRange handles "TT+" (TT and every higher pair) and "KTs+" (the
// kicker climbs up to one below the top card).
func (r *Range) addPlusRange(token string) error {
	b, err := parseBase(token)
	if err != nil {
		return err
	}
	if b.pair() {
		for rank := b.high; rank <= poker.Ace; rank++ {
			r.Add(Notation{High: rank, Low: rank, Kind: Pair})
		}
		return nil
	}
	for kicker := b.low; kicker < b.high; kicker++ {
		r.addUnpaired(b.high, kicker, b)
	}
	return nil
}

// addDashRange handles "22-66" and "A5s-A2s".
func (r *Range) addDashRange(token string) error {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return fmt.Errorf("%w: invalid dash range format", ErrInvalidNotation)
	}
	start, err := parseBase(strings.TrimSpace(parts[0]))
	if err != nil {
		return err
	}
	end, err := parseBase(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}

	if start.pair() && end.pair() {
		for rank := min(start.high, end.high); rank <= max(start.high, end.high); rank++ {
			r.Add(Notation{High: rank, Low: rank, Kind: Pair})
		}
		return nil
	}

	if start.pair() || end.pair() || start.high != end.high || start.suited != end.suited || start.offsuit != end.offsuit {
		return fmt.Errorf("%w: unsupported range format %q", ErrInvalidNotation, token)
	}
	for kicker := min(start.low, end.low); kicker <= max(start.low, end.low); kicker++ {
		r.addUnpaired(start.high, kicker, start)
	}
	return nil
}
