package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ripple-tank/internal/sim"
)

// droplet is a beep.Streamer producing a short decaying sine with a downward
// pitch glide, the classic water-drop "plop".
type droplet struct {
	sr        beep.SampleRate
	pos       int
	length    int
	phase     float64
	startFreq float64
	endFreq   float64
}

func (d *droplet) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if d.pos >= d.length {
			break
		}
		t := float64(d.pos) / float64(d.length)
		freq := d.startFreq + (d.endFreq-d.startFreq)*t
		d.phase += 2 * math.Pi * freq / float64(d.sr)
		v := math.Sin(d.phase) * math.Exp(-6*t) * 0.35
		samples[i][0] = v
		samples[i][1] = v
		d.pos++
		n++
	}
	return n, true
}

func (d *droplet) Err() error { return nil }

// Droplets synthesizes and plays drop sounds through the speaker. Pitch is
// jittered per click so repeated drops don't sound mechanical.
type Droplets struct {
	sr  beep.SampleRate
	rng *sim.Rand
}

func NewDroplets(sampleRate int, seed uint64) (*Droplets, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Droplets{sr: sr, rng: sim.NewRand(seed)}, nil
}

func (d *Droplets) Play() {
	start := 750.0 + d.rng.RangeF(-120, 220)
	speaker.Play(&droplet{
		sr:        d.sr,
		length:    d.sr.N(180 * time.Millisecond),
		startFreq: start,
		endFreq:   start * 0.4,
	})
}
