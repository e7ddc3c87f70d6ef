package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkLevel(t *testing.T) {
	tests := []struct {
		name    string
		samples []float32
		want    float64
	}{
		{"empty", nil, 0},
		{"silence", make([]float32, 1024), 0},
		{"constant half", []float32{0.5, 0.5, 0.5, 0.5}, math.Sqrt(4*0.25) / 4},
		{"single one", []float32{1, 0, 0, 0}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, chunkLevel(tt.samples), 1e-9)
		})
	}
}

func TestMeterPollDrainsPeak(t *testing.T) {
	m := NewMeter(60, 7.0, 0.8)
	m.ingest([]float32{0.1, 0.1})
	m.ingest([]float32{0.9, 0.9})
	m.ingest([]float32{0.2, 0.2})

	// Poll reports the loudest chunk seen since the last drain.
	want := chunkLevel([]float32{0.9, 0.9})
	assert.InDelta(t, want, m.Poll(), 1e-9)

	// Drained: next poll is silence.
	assert.Zero(t, m.Poll())
}

func TestMeterSmoothConverges(t *testing.T) {
	m := NewMeter(60, 7.0, 0.8)
	var v float64
	for i := 0; i < 600; i++ {
		v = m.Smooth(1.0)
	}
	assert.InDelta(t, 1.0, v, 0.01)

	for i := 0; i < 600; i++ {
		v = m.Smooth(0)
	}
	assert.InDelta(t, 0.0, v, 0.01)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestNullDeviceIsSilent(t *testing.T) {
	d := NewNullDevice(44100)
	ch, err := d.Start()
	assert.NoError(t, err)
	assert.Nil(t, ch)
	assert.Equal(t, 44100, d.SampleRate())
	assert.NoError(t, d.Stop())
}
