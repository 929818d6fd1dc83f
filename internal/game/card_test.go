package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLabel(t *testing.T) {
	tests := []struct {
		rank Rank
		want string
	}{
		{1, "Ace"},
		{2, "2"},
		{7, "7"},
		{10, "10"},
		{11, "Jack"},
		{12, "Queen"},
		{13, "King"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCard(tt.rank, Diamonds).RankLabel())
		})
	}
}

func TestAssignPosition(t *testing.T) {
	c := NewCard(Ace, Clubs)
	assert.Equal(t, Point{}, c.Position)

	tests := []struct {
		index int
		want  Point
	}{
		{0, Point{50, 100}},
		{5, Point{300, 100}},
		{12, Point{650, 100}},
		{13, Point{50, 200}},
		{51, Point{650, 400}},
		{52, Point{50, 500}},
	}
	for _, tt := range tests {
		c.AssignPosition(tt.index)
		assert.Equal(t, tt.want, c.Position, "index %d", tt.index)
	}
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Black, Clubs.Color())
	assert.Equal(t, Red, Diamonds.Color())
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Black, Spades.Color())
}

func TestSetColorClassIsCached(t *testing.T) {
	c := NewCard(5, Hearts)
	require.Equal(t, Red, c.ColorClass())

	// changing the suit afterwards does not recompute the class
	c.Suit = Spades
	assert.Equal(t, Red, c.ColorClass())

	c.SetColorClass()
	assert.Equal(t, Black, c.ColorClass())
}

func TestFlip(t *testing.T) {
	c := NewCard(2, Clubs)
	require.False(t, c.FaceUp)
	c.Flip()
	assert.True(t, c.FaceUp)
	c.Flip()
	assert.False(t, c.FaceUp)

	// the primitive itself does not guard found cards
	c.Found = true
	c.Flip()
	assert.True(t, c.FaceUp)
}

func TestFace(t *testing.T) {
	c := NewCard(Ace, Clubs)
	assert.Equal(t, FaceDown, c.Face())
	c.FaceUp = true
	assert.Equal(t, FaceUp, c.Face())
	c.Found = true
	assert.Equal(t, FaceFound, c.Face())
	c.FaceUp = false
	assert.Equal(t, FaceFound, c.Face())
}

func TestContainsPoint(t *testing.T) {
	deck := BuildDeck()
	first, last := deck[0], deck[51]
	require.Equal(t, Point{50, 100}, first.Position)
	require.Equal(t, Point{650, 400}, last.Position)

	tests := []struct {
		name string
		card *Card
		p    Point
		want bool
	}{
		{"origin", first, Point{0, 0}, false},
		{"centre", first, Point{50, 100}, true},
		{"left of box", first, Point{29, 100}, false},
		{"right of box", first, Point{71, 100}, false},
		{"above box", first, Point{50, 69}, false},
		{"below box", first, Point{50, 131}, false},
		{"bottom right corner", first, Point{70, 130}, true},
		{"top left corner", first, Point{30, 70}, true},
		{"last centre", last, Point{650, 400}, true},
		{"last bottom right", last, Point{670, 430}, true},
		{"last top left", last, Point{630, 370}, true},
		{"last right edge out", last, Point{671, 400}, false},
		{"last left edge out", last, Point{629, 400}, false},
		{"last below", last, Point{650, 431}, false},
		{"last above", last, Point{650, 369}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.ContainsPoint(tt.p))
		})
	}
}

func TestMatches(t *testing.T) {
	deck := BuildDeck()

	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"different rank same suit", 0, 1, false},
		{"card with itself", 0, 0, false},
		{"ace clubs vs ace diamonds", 0, 13, false},
		{"ace clubs vs ace hearts", 0, 26, false},
		{"ace clubs vs ace spades", 0, 39, true},
		{"ace diamonds vs ace hearts", 13, 26, true},
		{"two clubs vs ace diamonds", 1, 13, false},
		{"two clubs vs two diamonds", 1, 14, false},
		{"two diamonds vs two hearts", 14, 27, true},
		{"two clubs vs two spades", 1, 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deck[tt.a].Matches(deck[tt.b]))
			assert.Equal(t, tt.want, deck[tt.b].Matches(deck[tt.a]), "symmetric")
		})
	}
}

func TestMatchesLiteralDuplicate(t *testing.T) {
	a := NewCard(Queen, Hearts)
	b := NewCard(Queen, Hearts)
	assert.False(t, a.Matches(b))
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "Queen♥", NewCard(Queen, Hearts).String())
	assert.Equal(t, "10♣", NewCard(10, Clubs).String())
}
