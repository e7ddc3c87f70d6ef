package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/ripple-tank/internal/config"
	"github.com/iburimskiy/ripple-tank/internal/sim"
)

func testGame() *Game {
	return &Game{
		field:     sim.NewField(config.WindowWidth, config.WindowHeight),
		rng:       sim.NewRand(1),
		intensity: config.DefaultIntensity,
	}
}

func TestAudioInfluenceZeroLevelIsBaseline(t *testing.T) {
	g := testGame()
	assert.Zero(t, g.applyAudioInfluence(0))
	assert.Zero(t, g.field.Energy(), "zero input must not disturb the surface")
}

func TestAudioInfluenceBelowThreshold(t *testing.T) {
	g := testGame()
	assert.Zero(t, g.applyAudioInfluence(config.AudioThreshold))
	assert.Zero(t, g.field.Energy())
}

func TestAudioInfluenceDisturbsSurface(t *testing.T) {
	g := testGame()
	n := g.applyAudioInfluence(0.02)
	assert.Equal(t, 4, n) // 0.02 * 200
	assert.Positive(t, g.field.Energy())
}

func TestAudioInfluenceDropCountCapped(t *testing.T) {
	g := testGame()
	assert.Equal(t, config.MaxAudioDrops, g.applyAudioInfluence(1.0))
}
