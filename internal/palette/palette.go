package palette

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Lerp interpolates between two colours, t clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Colours used by the renderer.
var Palette = struct {
	Day    RGB // water base at noon
	Night  RGB // water base at midnight
	Splash RGB
	HUD    RGB
}{
	Day:    RGB{R: 200, G: 230, B: 255},
	Night:  RGB{R: 20, G: 30, B: 60},
	Splash: RGB{R: 255, G: 255, B: 255},
	HUD:    RGB{R: 255, G: 255, B: 255},
}

// Cycle tracks the day/night phase. T follows sin(phase) remapped to 0..1,
// where 0 is full day and 1 is full night.
type Cycle struct {
	phase float64
}

func (c *Cycle) Advance(step float64) {
	c.phase += step
	if c.phase > 2*math.Pi*1e6 {
		c.phase = math.Mod(c.phase, 2*math.Pi)
	}
}

func (c *Cycle) T() float64 {
	return (math.Sin(c.phase) + 1) / 2
}

// Water returns the base water colour for the current phase.
func (c *Cycle) Water() RGB {
	return Lerp(Palette.Day, Palette.Night, c.T())
}

// Sky returns the backdrop colour for the current phase, brightest at day.
func (c *Cycle) Sky() RGB {
	t := c.T()
	return RGB{
		R: clampChan(30 + 100*(1-t)),
		G: clampChan(60 + 120*(1-t)),
		B: clampChan(90 + 165*t),
	}
}
