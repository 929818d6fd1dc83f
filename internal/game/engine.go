// internal/game/engine.go
//
// Game controller for a single Concentration session.
// Responsibilities:
//   - Create new games with a freshly shuffled 52-card deck and a score of 26.
//   - Dispatch click and key input: flip the targeted card, queue it, and run
//     the match resolver when the queue fills.
//   - Reset: reshuffle the deck, restore the score, turn every card face down.
//   - Report win state (score reached zero).
//
// Notes:
//   - Input handling is synchronous; a click that triggers resolution returns
//     only after the queue has collapsed back to one entry.
//   - Reset does not clear Found. Matched cards stay off the board after a
//     reshuffle, so a reset game with found cards can no longer reach zero.
//   - After the win, clicks are ignored until the next reset.

package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	// InitialScore is the number of pairs to find in a fresh game.
	InitialScore = DeckSize / 2

	// ResetKey is the key token that resets the game.
	ResetKey = "r"
)

// Option configures a new Game.
type Option func(*Game)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithDeck uses d as the board layout instead of a shuffled fresh deck.
// Cards are re-placed at their indices.
func WithDeck(d Deck) Option {
	return func(g *Game) { g.Deck = d }
}

// WithID overrides the generated game ID.
func WithID(id string) Option {
	return func(g *Game) { g.ID = id }
}

// New constructs a new game instance.
// Unless WithDeck is given, the deck is a shuffled BuildDeck().
func New(opts ...Option) *Game {
	g := &Game{
		ID:    uuid.NewString(),
		Score: InitialScore,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Deck == nil {
		g.Deck = Shuffle(BuildDeck(), g.rng)
	} else {
		g.Deck.place()
	}
	return g
}

// HandleClick applies a click at p.
//
// Non-primary buttons, clicks on empty board space, clicks on found cards and
// any click after the win are no-ops. Otherwise the first card in deck order
// under p is flipped and appended to the face-up queue; if the queue is then
// full the resolver runs before HandleClick returns.
func (g *Game) HandleClick(p Point, b Button) ClickResult {
	res := ClickResult{Index: -1}
	if b != ButtonPrimary || g.IsWon() {
		return res
	}
	c, i := g.Deck.CardAt(p)
	if c == nil || c.Found {
		return res
	}

	c.Flip()
	g.FaceUp = append(g.FaceUp, c)
	res.Card, res.Index = c, i

	if len(g.FaceUp) == TriggerSize {
		res.Resolution, res.Won = g.resolve()
	}
	return res
}

// HandleKey resets the game when key is ResetKey and reports whether it did.
// Every other key is ignored.
func (g *Game) HandleKey(key string) bool {
	if key != ResetKey {
		return false
	}
	g.HandleReset()
	return true
}

// HandleReset reshuffles the deck, restores the score, turns every card face
// down and drops the face-up queue. Found cards stay found.
func (g *Game) HandleReset() {
	g.Deck = Shuffle(g.Deck, g.rng)
	g.Score = InitialScore
	for _, c := range g.Deck {
		c.FaceUp = false
	}
	g.FaceUp = nil
	g.Resets++
}

// IsWon reports whether every pair has been found.
func (g *Game) IsWon() bool { return g.Score == 0 }

// State reports a coarse string representation of the game: "playing" or "won".
func (g *Game) State() string {
	if g.IsWon() {
		return "won"
	}
	return "playing"
}

// FaceUpIndices returns the deck index of every queued card, oldest first.
func (g *Game) FaceUpIndices() []int {
	out := make([]int, 0, len(g.FaceUp))
	for _, c := range g.FaceUp {
		out = append(out, g.Deck.IndexOf(c))
	}
	return out
}

// FoundCount returns how many cards have been removed from play.
func (g *Game) FoundCount() int {
	n := 0
	for _, c := range g.Deck {
		if c.Found {
			n++
		}
	}
	return n
}
