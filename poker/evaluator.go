package poker

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInsufficientCards is returned when fewer than five usable cards are supplied.
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrTooManyCards is returned when more than seven cards are supplied.
	ErrTooManyCards = errors.New("too many cards")
	// ErrDuplicateCard is returned when the same card appears twice in one hand.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Tier is the category of a poker hand. Higher tiers beat lower tiers.
type Tier uint8

const (
	HighCard Tier = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the tier name, e.g. "Three of a Kind".
func (t Tier) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandEvaluation is the best five-card hand found in a set of cards.
type HandEvaluation struct {
	Tier    Tier
	Cards   [5]Card // hand order: made cards first, then kickers
	Label   string
	Kickers []Rank // tie-break ranks, most significant first
}

// String returns the label followed by the five cards.
func (h HandEvaluation) String() string {
	return fmt.Sprintf("%s [%s]", h.Label, FormatCards(h.Cards[:], Card.Short))
}

// Beats returns true if h is stronger than other.
func (h HandEvaluation) Beats(other HandEvaluation) bool {
	return Compare(h, other) > 0
}

// Compare returns 1 if a is stronger than b, -1 if weaker and 0 on a tie.
func Compare(a, b HandEvaluation) int {
	if a.Tier != b.Tier {
		if a.Tier > b.Tier {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate determines the best five-card hand among 5 to 7 cards.
// Zero cards are ignored.
func Evaluate(cards []Card) (HandEvaluation, error) {
	hand, err := collect(cards)
	if err != nil {
		return HandEvaluation{}, err
	}
	if len(hand) < 5 {
		return HandEvaluation{}, fmt.Errorf("%w: have %d, need 5", ErrInsufficientCards, len(hand))
	}
	if len(hand) > 7 {
		return HandEvaluation{}, fmt.Errorf("%w: have %d, max 7", ErrTooManyCards, len(hand))
	}
	return evaluate(hand), nil
}

// FindBestHand evaluates two hole cards with up to five board cards. With
// exactly seven cards every five-card subset is evaluated and the strongest
// one returned.
func FindBestHand(hole, board []Card) (HandEvaluation, error) {
	holeCards, err := collect(hole)
	if err != nil {
		return HandEvaluation{}, err
	}
	boardCards, err := collect(board)
	if err != nil {
		return HandEvaluation{}, err
	}
	if len(holeCards) > 2 || len(boardCards) > 5 {
		return HandEvaluation{}, fmt.Errorf("%w: %d hole and %d board cards", ErrTooManyCards, len(holeCards), len(boardCards))
	}

	all := append(holeCards, boardCards...)
	if len(all) < 7 {
		return Evaluate(all)
	}
	if err := checkDuplicates(all); err != nil {
		return HandEvaluation{}, err
	}

	var best HandEvaluation
	subset := make([]Card, 5)
	for skipA := 0; skipA < 7; skipA++ {
		for skipB := skipA + 1; skipB < 7; skipB++ {
			subset = subset[:0]
			for i, c := range all {
				if i != skipA && i != skipB {
					subset = append(subset, c)
				}
			}
			if h := evaluate(subset); best.Tier == 0 || h.Beats(best) {
				best = h
			}
		}
	}
	return best, nil
}

// collect drops empty slots and rejects invalid or repeated cards.
func collect(cards []Card) ([]Card, error) {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.IsZero() {
			continue
		}
		if !c.Valid() {
			return nil, fmt.Errorf("%w: rank %d suit %d", ErrMalformedCard, c.Rank, c.Suit)
		}
		out = append(out, c)
	}
	return out, checkDuplicates(out)
}

func checkDuplicates(cards []Card) error {
	var seen CardSet
	for _, c := range cards {
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
	}
	return nil
}

// evaluate assumes 5 to 7 distinct valid cards.
func evaluate(cards []Card) HandEvaluation {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return int(a.Suit) - int(b.Suit)
	})

	var bySuit [4][]Card
	var byRank [Ace + 1][]Card
	for _, c := range sorted {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	// Straight flush and royal flush
	for _, group := range bySuit {
		if len(group) < 5 {
			continue
		}
		if run, high := findStraight(group); high > 0 {
			if run[0].Rank == Ace && run[1].Rank == King {
				return makeHand(RoyalFlush, run, []Rank{Ace})
			}
			return makeHand(StraightFlush, run, []Rank{high})
		}
	}

	// Four of a kind
	for r := Ace; r >= Two; r-- {
		if len(byRank[r]) == 4 {
			rest := without(sorted, r)
			return makeHand(FourOfAKind, concat(byRank[r], rest[:1]), []Rank{r, rest[0].Rank})
		}
	}

	// Full house: highest triple, then highest other rank with two or more cards
	if trip := highestGroup(&byRank, 3, 0); trip > 0 {
		if pair := highestGroup(&byRank, 2, trip); pair > 0 {
			return makeHand(FullHouse, concat(byRank[trip], byRank[pair][:2]), []Rank{trip, pair})
		}
	}

	// Flush
	for _, group := range bySuit {
		if len(group) >= 5 {
			top := group[:5]
			return makeHand(Flush, top, ranksOf(top))
		}
	}

	// Straight
	if run, high := findStraight(sorted); high > 0 {
		return makeHand(Straight, run, []Rank{high})
	}

	// Three of a kind
	if trip := highestGroup(&byRank, 3, 0); trip > 0 {
		rest := without(sorted, trip)[:2]
		return makeHand(ThreeOfAKind, concat(byRank[trip], rest), append([]Rank{trip}, ranksOf(rest)...))
	}

	// Two pair and one pair
	if high := highestGroup(&byRank, 2, 0); high > 0 {
		if low := highestGroup(&byRank, 2, high); low > 0 {
			rest := without(without(sorted, high), low)[:1]
			made := concat(byRank[high], byRank[low])
			return makeHand(TwoPair, concat(made, rest), []Rank{high, low, rest[0].Rank})
		}
		rest := without(sorted, high)[:3]
		return makeHand(OnePair, concat(byRank[high], rest), append([]Rank{high}, ranksOf(rest)...))
	}

	top := sorted[:5]
	return makeHand(HighCard, top, ranksOf(top))
}

// findStraight returns five consecutive cards from rank-descending input and
// the straight's high rank, or a zero high rank when none exists. The wheel
// (A-2-3-4-5) is five-high and ordered 5-4-3-2-A.
func findStraight(sorted []Card) ([]Card, Rank) {
	var top [Ace + 1]Card
	for _, c := range sorted {
		if top[c.Rank].IsZero() {
			top[c.Rank] = c
		}
	}
	for high := Ace; high >= Six; high-- {
		run := make([]Card, 0, 5)
		for r := high; r > high-5; r-- {
			if top[r].IsZero() {
				break
			}
			run = append(run, top[r])
		}
		if len(run) == 5 {
			return run, high
		}
	}
	if !top[Ace].IsZero() && !top[Five].IsZero() && !top[Four].IsZero() && !top[Three].IsZero() && !top[Two].IsZero() {
		return []Card{top[Five], top[Four], top[Three], top[Two], top[Ace]}, Five
	}
	return nil, 0
}

// highestGroup returns the highest rank other than skip holding at least n cards.
func highestGroup(byRank *[Ace + 1][]Card, n int, skip Rank) Rank {
	for r := Ace; r >= Two; r-- {
		if r != skip && len(byRank[r]) >= n {
			return r
		}
	}
	return 0
}

func without(cards []Card, r Rank) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Rank != r {
			out = append(out, c)
		}
	}
	return out
}

func concat(a, b []Card) []Card {
	out := make([]Card, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

func ranksOf(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

func makeHand(tier Tier, cards []Card, kickers []Rank) HandEvaluation {
	h := HandEvaluation{Tier: tier, Kickers: kickers}
	copy(h.Cards[:], cards)
	h.Label = describe(tier, kickers)
	return h
}

var rankNames = [Ace + 1]string{
	Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six", Seven: "Seven",
	Eight: "Eight", Nine: "Nine", Ten: "Ten", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

func plural(r Rank) string {
	if r == Six {
		return "Sixes"
	}
	return rankNames[r] + "s"
}

func describe(tier Tier, k []Rank) string {
	switch tier {
	case RoyalFlush:
		return tier.String()
	case StraightFlush, Straight, Flush:
		return fmt.Sprintf("%s, %s high", tier, rankNames[k[0]])
	case FourOfAKind, ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s", tier, plural(k[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", tier, plural(k[0]), plural(k[1]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", tier, plural(k[0]), plural(k[1]))
	default:
		return fmt.Sprintf("%s, %s", tier, rankNames[k[0]])
	}
}
