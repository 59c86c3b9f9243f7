package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoxSet(t *testing.T) {
	boxes := NewBoxSet()

	require.Equal(t, 4, boxes.Len(), "Set should hold exactly four boxes")
	require.Equal(t, 0.0, boxes.At(0).Weight(), "First green box should start at 0.0")
	require.Equal(t, 0.1, boxes.At(1).Weight(), "Second green box should start at 0.1")
	require.Equal(t, 0.2, boxes.At(2).Weight(), "First blue box should start at 0.2")
	require.Equal(t, 0.3, boxes.At(3).Weight(), "Second blue box should start at 0.3")
}

func TestSelectLightest(t *testing.T) {
	t.Run("fresh set selects the first box", func(t *testing.T) {
		boxes := NewBoxSet()

		require.Equal(t, 0, boxes.LightestIndex(), "Box with weight 0.0 should be lightest")
		require.Equal(t, boxes.At(0), boxes.SelectLightest(), "SelectLightest should return the lightest box")
	})

	t.Run("selection follows weight changes", func(t *testing.T) {
		boxes := NewBoxSet()
		boxes.At(0).Absorb(10.0)

		require.Equal(t, 1, boxes.LightestIndex(), "Second box should be lightest once the first gets heavy")

		boxes.At(1).Absorb(10.0)
		require.Equal(t, 2, boxes.LightestIndex(), "First blue box should be lightest next")
	})

	t.Run("ties resolve to the earliest box in creation order", func(t *testing.T) {
		boxes := NewBoxSet()
		boxes.At(0).Absorb(0.1)

		// Boxes 0 and 1 both weigh 0.1 now
		require.Equal(t, boxes.At(0).Weight(), boxes.At(1).Weight(), "Tie setup")
		require.Equal(t, 0, boxes.LightestIndex(), "Earlier box should win the tie")
	})

	t.Run("lightest box weighs no more than any other", func(t *testing.T) {
		boxes := NewBoxSet()
		for _, token := range []float64{1, 1, 2, 3, 5, 8} {
			lightest := boxes.SelectLightest()
			for i := 0; i < boxes.Len(); i++ {
				require.LessOrEqual(t, lightest.Weight(), boxes.At(i).Weight(),
					"Selected box should weigh no more than any other box")
			}
			lightest.Absorb(token)
		}
	})
}
