package sim

import "github.com/iburimskiy/ripple-tank/internal/palette"

// Splash is a short-lived particle thrown up by a click. Life counts down in
// frames; the particle is removed when it reaches zero or leaves the screen.
type Splash struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Col    palette.RGB
}

type SplashSystem struct {
	Max    int
	P      []Splash
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewSplashSystem(max int, seed uint64) *SplashSystem {
	if max <= 0 {
		max = 1
	}
	return &SplashSystem{
		Max: max,
		P:   make([]Splash, 0, max),
		rng: NewRand(seed),
	}
}

// Spawn adds n particles bursting upward from (x, y).
func (ss *SplashSystem) Spawn(x, y float64, n, life int, col palette.RGB) {
	for i := 0; i < n; i++ {
		ss.add(Splash{
			X:    x,
			Y:    y,
			VX:   ss.rng.RangeF(-2, 2),
			VY:   ss.rng.RangeF(-5, -1),
			Life: life,
			Col:  col,
		})
	}
}

func (ss *SplashSystem) add(p Splash) {
	if len(ss.P) < ss.Max {
		ss.P = append(ss.P, p)
		return
	}
	// Circular overwrite.
	if ss.ovrIdx >= ss.Max {
		ss.ovrIdx = 0
	}
	ss.P[ss.ovrIdx] = p
	ss.ovrIdx++
}

// Update integrates one frame of motion and removes dead or off-screen
// particles. Removal is swap-with-last, order is not preserved.
func (ss *SplashSystem) Update(gravity, w, h float64) {
	for i := 0; i < len(ss.P); {
		p := &ss.P[i]
		p.VY += gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--

		if p.Life <= 0 || p.X < -10 || p.X > w+10 || p.Y > h+10 {
			ss.P[i] = ss.P[len(ss.P)-1]
			ss.P = ss.P[:len(ss.P)-1]
			continue
		}
		i++
	}
}

// Radius maps remaining life to a draw radius, shrinking as the particle dies.
func (p *Splash) Radius() float64 {
	r := float64(p.Life / 10)
	if r < 1 {
		r = 1
	}
	return r
}
