package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/ripple-tank/internal/audio"
	"github.com/iburimskiy/ripple-tank/internal/config"
	"github.com/iburimskiy/ripple-tank/internal/palette"
	"github.com/iburimskiy/ripple-tank/internal/sim"
)

// Game owns all simulation and render state. Everything here runs on the
// ebiten game-loop goroutine; the only outside input is the audio level meter.
type Game struct {
	field    *sim.Field
	splashes *sim.SplashSystem
	cycle    palette.Cycle
	rng      *sim.Rand

	meter   *audio.Meter
	history *audio.History
	drops   *Droplets // nil when sound output is disabled

	log *zap.Logger

	// frame buffers
	pixels    []byte
	offscreen *ebiten.Image

	// toggles and tuning
	shading   bool
	audioOn   bool
	paused    bool
	intensity float64

	// per-frame audio state
	rawLevel float64
	level    float64

	// drag tracking
	dragging   bool
	lastMouseX int
	lastMouseY int

	// pending screenshot path, consumed at the end of Draw
	shotPath string

	statusMsg string
}

func New(log *zap.Logger, meter *audio.Meter, drops *Droplets, seed uint64) *Game {
	w, h := config.WindowWidth, config.WindowHeight
	return &Game{
		field:     sim.NewField(w, h),
		splashes:  sim.NewSplashSystem(config.MaxSplashes, seed),
		rng:       sim.NewRand(seed ^ 0xA4D10),
		meter:     meter,
		history:   audio.NewHistory(config.LevelHistorySize),
		drops:     drops,
		log:       log,
		pixels:    make([]byte, w*h*4),
		offscreen: ebiten.NewImage(w, h),
		shading:   true,
		audioOn:   true,
		intensity: config.DefaultIntensity,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.shading = !g.shading
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.audioOn = !g.audioOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.intensity = math.Min(config.IntensityMax, g.intensity+config.IntensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.intensity = math.Max(config.IntensityMin, g.intensity-config.IntensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.requestScreenshot()
	}

	g.handleMouse()

	// Drain the capture side once per tick, spring-smooth for display.
	g.rawLevel = g.meter.Poll()
	g.level = g.meter.Smooth(g.rawLevel)
	g.history.Push(g.level)

	if !g.paused {
		if g.audioOn {
			g.applyAudioInfluence(g.rawLevel)
		}
		g.cycle.Advance(config.CycleStep)
		g.field.Step(config.WaveSpeed, config.Damping)
		g.splashes.Update(config.SplashGravity, float64(config.WindowWidth), float64(config.WindowHeight))
	}

	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.field.Disturb(mx, my, config.ClickMagnitude)
		g.splashes.Spawn(float64(mx), float64(my), config.SplashPerClick, config.SplashLife, palette.Palette.Splash)
		if g.drops != nil {
			g.drops.Play()
		}
		g.dragging = true
		g.lastMouseX, g.lastMouseY = mx, my
		return
	}

	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := float64(mx - g.lastMouseX)
		dy := float64(my - g.lastMouseY)
		mag := math.Min(config.DragMagnitudeCap, math.Hypot(dx, dy))
		if mag > 0 {
			g.field.Disturb(mx, my, mag*config.DragMagnitudeScale)
		}
		g.lastMouseX, g.lastMouseY = mx, my
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
}

// applyAudioInfluence scatters disturbances across the surface in proportion
// to the measured input level. Returns the number of drops spawned.
func (g *Game) applyAudioInfluence(level float64) int {
	if level <= config.AudioThreshold {
		return 0
	}
	n := int(math.Min(config.MaxAudioDrops, level*config.AudioDropScale))
	for i := 0; i < n; i++ {
		x := g.rng.Intn(config.WindowWidth)
		y := g.rng.Intn(config.WindowHeight)
		g.field.Disturb(x, y, level*config.AudioDropScale*g.intensity)
	}
	return n
}

func (g *Game) Draw(screen *ebiten.Image) {
	renderField(g.pixels, g.field, &g.cycle, g.shading, g.intensity)
	g.offscreen.WritePixels(g.pixels)

	g.drawSplashes(g.offscreen)
	g.drawLevelMeter(g.offscreen)
	g.drawHUD(g.offscreen)

	screen.DrawImage(g.offscreen, nil)

	if g.shotPath != "" {
		g.writeScreenshot()
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
