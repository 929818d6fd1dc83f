// internal/game/card.go
//
// Card model for the Concentration board.
// Defines:
//   - Suit / Rank / ColorClass: fixed enumerations (4 suits, 13 ranks, 2 colors).
//   - Point: integer board coordinate (pixels, origin top-left).
//   - Card: identity (rank, suit), face state, found state, board position.
//
// Notes:
//   - A card's color class is cached when the card is placed on the board and is
//     what Matches compares; it is never derived on the fly.
//   - Flip has no found-guard; the controller refuses clicks on found cards.

package game

import "strconv"

// Suit is one of the four French suits, in deck build order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck build order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Glyph returns the printable suit symbol.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Color reports the color class of the suit: diamonds and hearts are red.
func (s Suit) Color() ColorClass {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// ColorClass partitions suits into red and black.
type ColorClass uint8

const (
	Black ColorClass = iota
	Red
)

func (c ColorClass) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank is a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13

	ranksPerSuit = 13
)

// Label returns "Ace", "Jack", "Queen" or "King" for court ranks, else the number.
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(r))
	}
}

// Point is a board coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board grid geometry.
const (
	originX    = 50
	originY    = 100
	cellWidth  = 50
	cellHeight = 100

	// hit-box half extents around a card's position
	halfWidth  = 20
	halfHeight = 30
)

// Face is the render state of a card.
type Face string

const (
	FaceDown  Face = "down"
	FaceUp    Face = "up"
	FaceFound Face = "found"
)

// Card is a single playing card on the board.
type Card struct {
	Rank     Rank
	Suit     Suit
	FaceUp   bool  // false is face down
	Found    bool  // matched and removed from play
	Position Point // centre of the card on the board

	color ColorClass
}

// NewCard returns a face-down card with its color class set.
// The position stays zero until the card is placed in a deck.
func NewCard(rank Rank, suit Suit) *Card {
	c := &Card{Rank: rank, Suit: suit}
	c.SetColorClass()
	return c
}

// RankLabel returns the display label of the card's rank.
func (c *Card) RankLabel() string { return c.Rank.Label() }

// AssignPosition places the card at the grid cell for deck index i
// (13 columns, row-major). Indices past 51 extrapolate the same formula.
func (c *Card) AssignPosition(i int) {
	c.Position = Point{
		X: originX + cellWidth*(i%ranksPerSuit),
		Y: originY + cellHeight*(i/ranksPerSuit),
	}
}

// SetColorClass caches the color class derived from the suit.
func (c *Card) SetColorClass() { c.color = c.Suit.Color() }

// ColorClass returns the cached color class.
func (c *Card) ColorClass() ColorClass { return c.color }

// Flip toggles the card between face up and face down.
func (c *Card) Flip() { c.FaceUp = !c.FaceUp }

// ContainsPoint reports whether p lies inside the card's hit-box (inclusive).
func (c *Card) ContainsPoint(p Point) bool {
	return p.X >= c.Position.X-halfWidth && p.X <= c.Position.X+halfWidth &&
		p.Y >= c.Position.Y-halfHeight && p.Y <= c.Position.Y+halfHeight
}

// Matches reports whether two cards form a pair: same rank and color class
// but a different suit. A card never matches itself or a same-suit duplicate.
func (c *Card) Matches(other *Card) bool {
	if c.Rank == other.Rank && c.Suit == other.Suit {
		return false
	}
	return c.Rank == other.Rank && c.color == other.color
}

// Face reports how the card should be drawn.
func (c *Card) Face() Face {
	switch {
	case c.Found:
		return FaceFound
	case c.FaceUp:
		return FaceUp
	default:
		return FaceDown
	}
}

func (c *Card) String() string {
	return c.RankLabel() + c.Suit.Glyph()
}
