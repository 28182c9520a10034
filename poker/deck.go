package poker

import (
	rand "math/rand/v2"
)

// FullDeck returns the 52 cards ordered by Card.Index.
func FullDeck() []Card {
	cards := make([]Card, 52)
	for i := range cards {
		cards[i] = CardFromIndex(i)
	}
	return cards
}

// Deck represents a standard 52-card deck with some cards optionally removed.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck that excludes the dead cards.
func NewDeck(rng *rand.Rand, dead CardSet) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset(dead)
	return d
}

// Reset refills the deck without the dead cards and shuffles it, reusing
// the deck's storage.
func (d *Deck) Reset(dead CardSet) {
	d.cards = d.cards[:0]
	for i := range 52 {
		if c := CardFromIndex(i); !dead.Contains(c) {
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if not enough remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
