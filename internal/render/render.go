// internal/render/render.go
//
// Presentation boundary for the Concentration board.
// Turns game state into plain drawable descriptions (tiles and text) that a
// client paints onto a 700x500 canvas. Nothing in this package mutates the game.
//
// Appearance:
//   - found card:     42x62 solid white tile (erases the card)
//   - face-up card:   40x60 black outline, rank label (size 10) offset (10,-30),
//                     suit glyph (size 15) red for ♦♥, black for ♣♠
//   - face-down card: 40x60 solid black tile
//   - scoreboard:     "Score: N", size 20, at (600,50)
//   - win scene:      message only, size 50, green, centred

package render

import (
	"strconv"

	"github.com/robalobadob/concentration/apps/go-server/internal/game"
)

const (
	SceneWidth  = 700
	SceneHeight = 500

	WinText = "You win!"
)

// Colors used by drawables.
const (
	ColorBlack = "black"
	ColorRed   = "red"
	ColorWhite = "white"
	ColorGreen = "green"
)

// Fill modes for rectangles.
const (
	FillSolid   = "solid"
	FillOutline = "outline"
)

// Text is a piece of text anchored at its centre.
type Text struct {
	Text  string `json:"text"`
	Size  int    `json:"size"`
	Color string `json:"color"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Tile is one card drawn as a rectangle centred at (X, Y), with optional
// rank label and suit glyph for face-up cards.
type Tile struct {
	Index  int       `json:"index"`
	Face   game.Face `json:"face"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Fill   string    `json:"fill"`
	Color  string    `json:"color"`
	Label  *Text     `json:"label,omitempty"` // offset from the tile centre
	Glyph  *Text     `json:"glyph,omitempty"` // offset from the tile centre
}

// Scene is a full frame.
type Scene struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Tiles   []Tile `json:"tiles"`
	Score   *Text  `json:"score,omitempty"`
	Message *Text  `json:"message,omitempty"`
}

// Card returns the drawable for c at its board position.
// Hidden and found cards never expose rank or suit.
func Card(c *game.Card) Tile {
	t := Tile{Index: -1, Face: c.Face(), X: c.Position.X, Y: c.Position.Y}
	switch t.Face {
	case game.FaceFound:
		t.Width, t.Height, t.Fill, t.Color = 42, 62, FillSolid, ColorWhite
	case game.FaceUp:
		t.Width, t.Height, t.Fill, t.Color = 40, 60, FillOutline, ColorBlack
		t.Label = &Text{Text: c.RankLabel(), Size: 10, Color: ColorBlack, X: 10, Y: -30}
		t.Glyph = &Text{Text: c.Suit.Glyph(), Size: 15, Color: suitColor(c.Suit)}
	default:
		t.Width, t.Height, t.Fill, t.Color = 40, 60, FillSolid, ColorBlack
	}
	return t
}

// Scoreboard returns the score text.
func Scoreboard(score int) Text {
	return Text{Text: "Score: " + strconv.Itoa(score), Size: 20, Color: ColorBlack, X: 600, Y: 50}
}

// WinMessage returns the end-of-game message centred in the scene.
func WinMessage(text string) Text {
	return Text{Text: text, Size: 50, Color: ColorGreen, X: SceneWidth / 2, Y: SceneHeight / 2}
}

// Frame builds the scene for the current game state. A won game renders only
// the win message.
func Frame(g *game.Game) Scene {
	s := Scene{Width: SceneWidth, Height: SceneHeight, Tiles: []Tile{}}
	if g.IsWon() {
		msg := WinMessage(WinText)
		s.Message = &msg
		return s
	}
	s.Tiles = make([]Tile, 0, len(g.Deck))
	for i, c := range g.Deck {
		t := Card(c)
		t.Index = i
		s.Tiles = append(s.Tiles, t)
	}
	score := Scoreboard(g.Score)
	s.Score = &score
	return s
}

func suitColor(s game.Suit) string {
	if s.Color() == game.Red {
		return ColorRed
	}
	return ColorBlack
}
