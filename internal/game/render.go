package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-tank/internal/palette"
	"github.com/iburimskiy/ripple-tank/internal/sim"
)

// Light direction for normal shading, pre-normalized.
var lightX, lightY, lightZ = normalize3(0.5, -0.5, 1.0)

func normalize3(x, y, z float64) (float64, float64, float64) {
	n := math.Sqrt(x*x + y*y + z*z)
	return x / n, y / n, z / n
}

// renderField shades the height field into an RGBA byte buffer.
//
// Each pixel is base water colour (day/night lerp) plus a height tint
// (positive heights warm the pixel, negative heights push it blue) plus a
// diffuse term from the surface normal when shading is on.
func renderField(pixels []byte, f *sim.Field, cycle *palette.Cycle, shading bool, intensity float64) {
	w, h := f.Width(), f.Height()
	heights := f.Heights()
	base := cycle.Water()
	baseR := float64(base.R)
	baseG := float64(base.G)
	baseB := float64(base.B)

	for y := 0; y < h; y++ {
		row := y * w
		// One-sided differences at the borders, central elsewhere.
		rowUp := row - w
		if y == 0 {
			rowUp = row
		}
		rowDown := row + w
		if y == h-1 {
			rowDown = row
		}

		for x := 0; x < w; x++ {
			i := row + x

			dot := 0.7
			if shading {
				xl := i - 1
				if x == 0 {
					xl = i
				}
				xr := i + 1
				if x == w-1 {
					xr = i
				}
				gx := float64(heights[xr]-heights[xl]) * 0.5
				gy := float64(heights[rowDown+x]-heights[rowUp+x]) * 0.5

				nx, ny, nz := -gx, -gy, 0.5
				n := math.Sqrt(nx*nx+ny*ny+nz*nz) + 1e-8
				dot = clamp01((nx*lightX + ny*lightY + nz*lightZ) / n)
			}

			hn := float64(heights[i]) * intensity / 10.0
			if hn > 1 {
				hn = 1
			} else if hn < -1 {
				hn = -1
			}

			lift := dot * 80.0
			r := baseR + 60*hn + lift
			g := baseG + 80*hn + lift
			b := baseB - 120*hn + lift

			o := i * 4
			pixels[o] = clampByte(r)
			pixels[o+1] = clampByte(g)
			pixels[o+2] = clampByte(b)
			pixels[o+3] = 0xff
		}
	}
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func (g *Game) drawSplashes(dst *ebiten.Image) {
	for i := range g.splashes.P {
		p := &g.splashes.P[i]
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius()), toColor(p.Col), false)
	}
}
