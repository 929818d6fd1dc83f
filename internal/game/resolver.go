// internal/game/resolver.go
//
// Match resolution over the face-up queue.
//
// The resolver runs when the queue reaches TriggerSize entries. It compares
// only the two oldest entries; the newest flip stays face up in the queue and
// becomes the first card of the next comparison window.

package game

// TriggerSize is the face-up queue length that triggers resolution.
const TriggerSize = 3

// resolve evaluates FaceUp[0] against FaceUp[1] and drops both from the queue.
// On a match both cards are marked found and the score drops by one; otherwise
// both are flipped back down. won is true when this resolution took the score
// to zero. Returns (nil, false) if the queue is not at TriggerSize.
func (g *Game) resolve() (res *Resolution, won bool) {
	if len(g.FaceUp) != TriggerSize {
		return nil, false
	}
	first, second := g.FaceUp[0], g.FaceUp[1]
	res = &Resolution{First: first, Second: second}

	if first.Matches(second) {
		g.Score--
		first.Found, second.Found = true, true
		res.Matched = true
		won = g.Score == 0
	} else {
		first.Flip()
		second.Flip()
	}

	g.FaceUp = append(g.FaceUp[:0], g.FaceUp[2:]...)
	return res, won
}
