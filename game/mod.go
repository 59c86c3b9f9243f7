package game

// Box is the shared capability of both box variants: absorb one token
// weight into the box's own weight and return the resulting score.
// Absorb is total over all float64 inputs; token weights are not
// validated.
type Box interface {
	Absorb(token float64) float64
	Weight() float64
}
