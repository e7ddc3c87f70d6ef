package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-tank/internal/config"
)

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Normal shading (M): %s", onOff(g.shading)),
		fmt.Sprintf("Audio (A): %s  Level: %.3f", onOff(g.audioOn), g.rawLevel),
		fmt.Sprintf("Intensity (+/-): %.2f", g.intensity),
		"Pause (P), Save (S), Quit (Esc/Q)",
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	if g.statusMsg != "" {
		lines = append(lines, g.statusMsg)
	}

	y := config.HUDMarginY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, config.HUDMarginX, y)
		y += config.HUDLineHeight
	}
}

// drawLevelMeter draws a bar for the smoothed input level plus a short trace
// of recent levels, hue shifting from green (quiet) to red (loud).
func (g *Game) drawLevelMeter(dst *ebiten.Image) {
	x := float32(config.MeterX)
	y := float32(config.MeterY)
	w := float32(config.MeterWidth)
	h := float32(config.MeterHeight)

	vector.DrawFilledRect(dst, x, y, w, h, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(dst, x, y, w, h, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	// Current level bar. Levels above ~0.25 saturate the bar.
	frac := clamp01(g.level * 4)
	r, gr, b := hsvToRgb(120-120*frac, 0.85, 0.9)
	barH := h * 0.4
	vector.DrawFilledRect(dst, x+2, y+2, (w-4)*float32(frac), barH, color.RGBA{R: r, G: gr, B: b, A: 230}, false)

	// History trace along the bottom half.
	trace := g.history.Snapshot(int(w) - 4)
	baseY := y + h - 3
	maxRise := h*0.5 - 4
	for i, v := range trace {
		rise := float32(clamp01(v*4)) * maxRise
		if rise < 1 {
			rise = 1
		}
		tx := x + 2 + float32(i)
		vector.StrokeLine(dst, tx, baseY, tx, baseY-rise, 1, color.RGBA{R: r, G: gr, B: b, A: 160}, false)
	}
}
