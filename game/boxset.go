package game

import "boxgame/meta"

// BoxSet is the fixed ordered collection a game is played over: two
// green and two blue boxes, created once and never resized or
// reordered. Only the boxes' internal state mutates during a game.
type BoxSet struct {
	boxes []Box
}

// NewBoxSet creates the standard set in its fixed creation order.
func NewBoxSet() *BoxSet {
	return &BoxSet{boxes: []Box{
		MakeGreenBox(meta.GREEN_WEIGHT_1),
		MakeGreenBox(meta.GREEN_WEIGHT_2),
		MakeBlueBox(meta.BLUE_WEIGHT_1),
		MakeBlueBox(meta.BLUE_WEIGHT_2),
	}}
}

// LightestIndex returns the index of the box with the smallest current
// weight. A later box must be strictly lighter to displace an earlier
// one, so ties resolve to the earliest box in creation order.
func (bs *BoxSet) LightestIndex() int {
	lightest := 0
	for i := 1; i < len(bs.boxes); i++ {
		if bs.boxes[i].Weight() < bs.boxes[lightest].Weight() {
			lightest = i
		}
	}
	return lightest
}

// SelectLightest returns the box with the smallest current weight.
func (bs *BoxSet) SelectLightest() Box {
	return bs.boxes[bs.LightestIndex()]
}

// At returns the box at index i in creation order.
func (bs *BoxSet) At(i int) Box {
	return bs.boxes[i]
}

// Len returns the number of boxes in the set.
func (bs *BoxSet) Len() int {
	return len(bs.boxes)
}
