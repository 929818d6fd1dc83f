// internal/game/deck.go
//
// Deck construction and shuffling.
//
// A Deck is an ordered slice of card pointers; the order is the board layout.
// Card identity is the pointer, so a shuffle keeps every *Card and only
// changes where it sits (and therefore its position on the board).

package game

import "math/rand/v2"

// DeckSize is the number of cards in a full deck.
const DeckSize = len(Suits) * ranksPerSuit

// Deck is the ordered board layout of cards.
type Deck []*Card

// BuildDeck returns the 52-card deck in suit-major, rank-minor order,
// each card placed at its index. No randomness.
func BuildDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, &Card{Rank: r, Suit: s})
		}
	}
	deck.place()
	return deck
}

// Shuffle returns a uniformly random permutation of deck as a new slice and
// re-places every card at its new index. The input slice should not be used
// afterwards. Face and found state are left alone. A nil rng uses the
// package-level source.
func Shuffle(deck Deck, rng *rand.Rand) Deck {
	out := make(Deck, len(deck))
	copy(out, deck)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	out.place()
	return out
}

// place assigns each card the position and color class for its index.
func (d Deck) place() {
	for i, c := range d {
		c.AssignPosition(i)
		c.SetColorClass()
	}
}

// CardAt returns the first card in deck order whose hit-box contains p,
// with its index, or (nil, -1).
func (d Deck) CardAt(p Point) (*Card, int) {
	for i, c := range d {
		if c.ContainsPoint(p) {
			return c, i
		}
	}
	return nil, -1
}

// IndexOf returns the index of c in the deck, or -1.
func (d Deck) IndexOf(c *Card) int {
	for i, x := range d {
		if x == c {
			return i
		}
	}
	return -1
}
