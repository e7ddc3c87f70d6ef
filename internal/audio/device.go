package audio

// CaptureDevice produces a stream of microphone sample chunks.
type CaptureDevice interface {
	// Start begins capture and returns a receive-only channel of sample chunks.
	Start() (<-chan []float32, error)
	// Stop terminates the stream and closes the channel.
	Stop() error
	// SampleRate returns the capture sample rate.
	SampleRate() int
}

// NullDevice stands in when no microphone is available. Its channel is nil, so
// receivers block forever and the visualization runs with a silent input.
type NullDevice struct {
	rate int
}

func NewNullDevice(sampleRate int) *NullDevice {
	return &NullDevice{rate: sampleRate}
}

func (d *NullDevice) Start() (<-chan []float32, error) { return nil, nil }

func (d *NullDevice) Stop() error { return nil }

func (d *NullDevice) SampleRate() int { return d.rate }
