package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardKey struct {
	rank Rank
	suit Suit
}

func requireFullDeck(t *testing.T, deck Deck) {
	t.Helper()
	require.Len(t, deck, DeckSize)
	seen := make(map[cardKey]bool, DeckSize)
	for _, c := range deck {
		k := cardKey{c.Rank, c.Suit}
		require.False(t, seen[k], "duplicate %s", c)
		require.GreaterOrEqual(t, int(c.Rank), 1)
		require.LessOrEqual(t, int(c.Rank), 13)
		seen[k] = true
	}
}

func requireLaidOut(t *testing.T, deck Deck) {
	t.Helper()
	for i, c := range deck {
		want := &Card{}
		want.AssignPosition(i)
		require.Equal(t, want.Position, c.Position, "card %d (%s)", i, c)
		require.Equal(t, c.Suit.Color(), c.ColorClass(), "card %d (%s)", i, c)
	}
}

func TestBuildDeck(t *testing.T) {
	for n := 0; n < 3; n++ {
		deck := BuildDeck()
		requireFullDeck(t, deck)
		requireLaidOut(t, deck)
	}
}

func TestBuildDeckOrder(t *testing.T) {
	deck := BuildDeck()
	for i, c := range deck {
		assert.Equal(t, Suits[i/13], c.Suit, "index %d", i)
		assert.Equal(t, Rank(i%13+1), c.Rank, "index %d", i)
		assert.False(t, c.FaceUp)
		assert.False(t, c.Found)
	}
}

func TestShufflePreservesIdentity(t *testing.T) {
	deck := BuildDeck()
	before := make(map[*Card]bool, len(deck))
	for _, c := range deck {
		before[c] = true
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 5; round++ {
		deck = Shuffle(deck, rng)
		requireFullDeck(t, deck)
		requireLaidOut(t, deck)
		for _, c := range deck {
			require.True(t, before[c], "shuffle introduced a new card")
		}
	}
}

func TestShuffleReturnsNewSlice(t *testing.T) {
	orig := BuildDeck()
	snapshot := make(Deck, len(orig))
	copy(snapshot, orig)

	shuffled := Shuffle(orig, rand.New(rand.NewPCG(7, 7)))
	require.Len(t, shuffled, DeckSize)
	assert.NotSame(t, &orig[0], &shuffled[0])
	assert.NotEqual(t, snapshot, shuffled, "52 cards should not shuffle back to build order")
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := Shuffle(BuildDeck(), rand.New(rand.NewPCG(42, 0)))
	b := Shuffle(BuildDeck(), rand.New(rand.NewPCG(42, 0)))
	for i := range a {
		assert.Equal(t, a[i].String(), b[i].String())
	}
}

func TestShuffleKeepsFaceAndFound(t *testing.T) {
	deck := BuildDeck()
	up, found := deck[3], deck[20]
	up.FaceUp = true
	found.Found = true

	deck = Shuffle(deck, nil)
	assert.True(t, up.FaceUp)
	assert.True(t, found.Found)
	assert.Equal(t, up.Position, deck[deck.IndexOf(up)].Position)
}

func TestCardAt(t *testing.T) {
	deck := BuildDeck()

	c, i := deck.CardAt(Point{300, 100})
	require.NotNil(t, c)
	assert.Equal(t, 5, i)
	assert.Same(t, deck[5], c)

	c, i = deck.CardAt(Point{0, 0})
	assert.Nil(t, c)
	assert.Equal(t, -1, i)

	// gap between columns
	c, _ = deck.CardAt(Point{75, 100})
	assert.Nil(t, c)
}

func TestCardAtFirstInDeckOrderWins(t *testing.T) {
	a := NewCard(2, Clubs)
	b := NewCard(3, Clubs)
	a.Position = Point{100, 100}
	b.Position = Point{110, 100}
	deck := Deck{a, b}

	c, i := deck.CardAt(Point{105, 100})
	assert.Same(t, a, c)
	assert.Equal(t, 0, i)
}
