package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 210, B: 220}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, a, Lerp(a, b, -5))
	assert.Equal(t, b, Lerp(a, b, 5))
}

func TestCycleTStaysInRange(t *testing.T) {
	var c Cycle
	for i := 0; i < 10000; i++ {
		c.Advance(0.005)
		v := c.T()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCycleOscillates(t *testing.T) {
	var c Cycle
	min, max := 1.0, 0.0
	// A bit more than one full period.
	period := 2 * math.Pi / 0.005
	steps := int(period) + 10
	for i := 0; i < steps; i++ {
		c.Advance(0.005)
		v := c.T()
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	assert.Less(t, min, 0.05)
	assert.Greater(t, max, 0.95)
}

func TestWaterStaysBetweenDayAndNight(t *testing.T) {
	var c Cycle
	period := 2 * math.Pi / 0.005
	steps := int(period)
	for i := 0; i < steps; i++ {
		c.Advance(0.005)
		w := c.Water()
		assert.GreaterOrEqual(t, w.R, Palette.Night.R)
		assert.LessOrEqual(t, w.R, Palette.Day.R)
		assert.GreaterOrEqual(t, w.G, Palette.Night.G)
		assert.LessOrEqual(t, w.G, Palette.Day.G)
		assert.GreaterOrEqual(t, w.B, Palette.Night.B)
		assert.LessOrEqual(t, w.B, Palette.Day.B)

		// Sky blue channel spans 90..255 across the cycle, never wrapping.
		sky := c.Sky()
		assert.GreaterOrEqual(t, sky.B, uint8(90))
	}
}
