package audio

import (
	"math"
	"sync"

	"github.com/charmbracelet/harmonica"
)

// Meter folds capture chunks into a single level scalar. The capture goroutine
// keeps the peak level seen since the last Poll; the frame loop drains it once
// per tick and runs the result through a spring for a smooth on-screen value.
type Meter struct {
	mu   sync.Mutex
	peak float64

	spring harmonica.Spring
	smooth float64
	vel    float64
}

func NewMeter(fps int, frequency, damping float64) *Meter {
	return &Meter{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// chunkLevel measures a chunk as its L2 norm divided by the frame count.
func chunkLevel(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSq float64
	for _, s := range samples {
		sumSq += float64(s) * float64(s)
	}
	return math.Sqrt(sumSq) / float64(len(samples))
}

func (m *Meter) ingest(samples []float32) {
	v := chunkLevel(samples)
	m.mu.Lock()
	if v > m.peak {
		m.peak = v
	}
	m.mu.Unlock()
}

// Consume drains ch on its own goroutine until the channel closes. A nil
// channel blocks forever, which is exactly the NullDevice silence contract.
func (m *Meter) Consume(ch <-chan []float32) {
	go func() {
		for chunk := range ch {
			m.ingest(chunk)
		}
	}()
}

// Poll returns the peak level since the previous Poll and resets it.
func (m *Meter) Poll() float64 {
	m.mu.Lock()
	v := m.peak
	m.peak = 0
	m.mu.Unlock()
	return v
}

// Smooth advances the display spring one frame toward target and returns the
// new smoothed value, floored at zero.
func (m *Meter) Smooth(target float64) float64 {
	m.smooth, m.vel = m.spring.Update(m.smooth, m.vel, target)
	if m.smooth < 0 {
		m.smooth = 0
	}
	return m.smooth
}
