package game

// Player accumulates a running score across turns. The score never
// decreases for non-negative tokens.
type Player struct {
	score float64
}

// NewPlayer creates a new Player instance with a zero score.
func NewPlayer() *Player {
	return &Player{}
}

// TakeTurn lets the currently lightest box absorb the token and adds
// the returned score to the player's total. Exactly one box mutates
// per turn. The per-turn result is returned for callers that record
// turns.
func (p *Player) TakeTurn(token float64, boxes *BoxSet) float64 {
	result := boxes.SelectLightest().Absorb(token)
	p.score += result
	return result
}

// Score returns the player's accumulated score.
func (p *Player) Score() float64 {
	return p.score
}
