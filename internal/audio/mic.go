package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// MicDevice captures mono audio from the default input device via portaudio.
// Chunks are pushed to a buffered channel from the portaudio callback; if the
// consumer falls behind, chunks are dropped rather than blocking the callback.
type MicDevice struct {
	rate   int
	frames int
	queue  int

	stream *portaudio.Stream
	out    chan []float32
}

func NewMicDevice(sampleRate, framesPerChunk, queueSize int) *MicDevice {
	return &MicDevice{
		rate:   sampleRate,
		frames: framesPerChunk,
		queue:  queueSize,
	}
}

func (d *MicDevice) Start() (<-chan []float32, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	d.out = make(chan []float32, d.queue)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(d.rate), d.frames, func(in []float32) {
		chunk := make([]float32, len(in))
		copy(chunk, in)
		select {
		case d.out <- chunk:
		default: // consumer behind, drop
		}
	})
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}

	d.stream = stream
	return d.out, nil
}

func (d *MicDevice) Stop() error {
	if d.stream == nil {
		return nil
	}
	err := d.stream.Stop()
	if cerr := d.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	d.stream = nil
	close(d.out)
	return err
}

func (d *MicDevice) SampleRate() int { return d.rate }
