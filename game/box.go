package game

import (
	"math"

	"boxgame/meta"
)

// box carries the weight bookkeeping shared by both variants. The
// weight only ever changes through Absorb.
type box struct {
	weight float64
}

func (b *box) Weight() float64 {
	return b.weight
}

// greenBox scores as the square of the mean of the tokens in its
// sliding window of the most recently absorbed tokens.
type greenBox struct {
	box
	recent [meta.WINDOW_SIZE]float64
	count  int
}

// MakeGreenBox creates a green box with the given initial weight.
func MakeGreenBox(initialWeight float64) Box {
	return &greenBox{box: box{weight: initialWeight}}
}

func (g *greenBox) Absorb(token float64) float64 {
	g.weight += token
	if g.count < len(g.recent) {
		g.recent[g.count] = token
		g.count++
	} else {
		// Window full: evict the oldest token
		copy(g.recent[:], g.recent[1:])
		g.recent[len(g.recent)-1] = token
	}
	m := Mean(g.recent[:g.count])
	return m * m
}

// blueBox scores as Cantor's pairing function of the smallest and
// largest token it has absorbed so far. The initial weight never
// participates in the min/max.
type blueBox struct {
	box
	minToken float64
	maxToken float64
	absorbed bool
}

// MakeBlueBox creates a blue box with the given initial weight.
func MakeBlueBox(initialWeight float64) Box {
	return &blueBox{box: box{weight: initialWeight}}
}

func (b *blueBox) Absorb(token float64) float64 {
	b.weight += token
	if b.absorbed {
		b.minToken = math.Min(b.minToken, token)
		b.maxToken = math.Max(b.maxToken, token)
	} else {
		b.minToken, b.maxToken = token, token
		b.absorbed = true
	}
	return CantorPairing(b.minToken, b.maxToken)
}
