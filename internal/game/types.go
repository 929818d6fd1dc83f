// internal/game/types.go
//
// Core type definitions for the Concentration game controller.
// Defines:
//   - Button: which mouse button produced a click.
//   - Resolution: outcome of one match evaluation.
//   - ClickResult: what a single click did.
//   - Game: the owned state of one game (deck, face-up queue, score).

package game

import (
	"math/rand/v2"
	"strings"
)

// Button identifies the mouse button of a click event.
type Button uint8

const (
	ButtonOther Button = iota
	ButtonPrimary
)

// ParseButton maps a wire button name to a Button.
// "LeftButton", "left" and "primary" (any case) are primary; all else is other.
func ParseButton(s string) Button {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leftbutton", "left", "primary":
		return ButtonPrimary
	default:
		return ButtonOther
	}
}

// Resolution describes one run of the match resolver.
type Resolution struct {
	First   *Card
	Second  *Card
	Matched bool // true: both removed; false: both flipped back down
}

// ClickResult reports the effect of HandleClick.
type ClickResult struct {
	Card       *Card       // card flipped by the click, nil for a no-op
	Index      int         // deck index of Card, -1 for a no-op
	Resolution *Resolution // non-nil when the click triggered the resolver
	Won        bool        // true only on the click that brought the score to zero
}

// Game holds the state of a single Concentration game.
type Game struct {
	ID     string  // Unique game identifier (uuid).
	Deck   Deck    // Board layout; replaced wholesale on reset.
	FaceUp []*Card // Face-up queue, at most TriggerSize entries.
	Score  int     // Pairs left to find; zero is a win.
	Resets int     // Number of resets performed.

	rng *rand.Rand // nil uses the package-level source
}
