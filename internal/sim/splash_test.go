package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ripple-tank/internal/palette"
)

func TestSplashLifeDecreasesUntilRemoval(t *testing.T) {
	ss := NewSplashSystem(64, 1)
	ss.Spawn(100, 100, 1, 5, palette.Palette.Splash)
	require.Len(t, ss.P, 1)

	prev := ss.P[0].Life
	for i := 0; i < 4; i++ {
		ss.Update(0.2, 800, 600)
		require.Len(t, ss.P, 1)
		assert.Less(t, ss.P[0].Life, prev)
		prev = ss.P[0].Life
	}

	ss.Update(0.2, 800, 600)
	assert.Empty(t, ss.P)

	// Removed particles never come back.
	for i := 0; i < 10; i++ {
		ss.Update(0.2, 800, 600)
	}
	assert.Empty(t, ss.P)
}

func TestSplashGravityPullsDown(t *testing.T) {
	ss := NewSplashSystem(8, 7)
	ss.Spawn(50, 50, 1, 60, palette.Palette.Splash)
	vy := ss.P[0].VY
	ss.Update(0.2, 800, 600)
	assert.Greater(t, ss.P[0].VY, vy)
}

func TestSplashOffscreenCulled(t *testing.T) {
	ss := NewSplashSystem(8, 3)
	ss.P = append(ss.P, Splash{X: 50, Y: 650, VY: 5, Life: 60})
	ss.Update(0.2, 800, 600)
	assert.Empty(t, ss.P)
}

func TestSplashCapOverwritesOldest(t *testing.T) {
	ss := NewSplashSystem(4, 9)
	ss.Spawn(10, 10, 10, 60, palette.Palette.Splash)
	assert.Len(t, ss.P, 4)
}

func TestSplashRadiusShrinksAndStaysPositive(t *testing.T) {
	tests := []struct {
		life int
		want float64
	}{
		{60, 6},
		{35, 3},
		{10, 1},
		{5, 1},
		{1, 1},
	}
	for _, tt := range tests {
		p := Splash{Life: tt.life}
		assert.Equal(t, tt.want, p.Radius(), "life %d", tt.life)
	}
}
