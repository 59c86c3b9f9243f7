// meta/meta.go
package meta

// WINDOW_SIZE defines how many recently absorbed tokens a green box scores over.
const WINDOW_SIZE = 3

// GREEN_WEIGHT_1 defines the initial weight of the first green box.
const GREEN_WEIGHT_1 = 0.0

// GREEN_WEIGHT_2 defines the initial weight of the second green box.
const GREEN_WEIGHT_2 = 0.1

// BLUE_WEIGHT_1 defines the initial weight of the first blue box.
const BLUE_WEIGHT_1 = 0.2

// BLUE_WEIGHT_2 defines the initial weight of the second blue box.
const BLUE_WEIGHT_2 = 0.3
