package config

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	TPS          = 60
)

// Wave simulation.
const (
	Damping   = 0.995
	WaveSpeed = 0.5 // laplacian coefficient in the discrete wave step

	ClickMagnitude     = 50.0
	DragMagnitudeCap   = 100.0
	DragMagnitudeScale = 0.5
)

// Day/night cycle. Phase advances per simulated frame; a full cycle is
// 2*pi/CycleStep frames (~21s at 60 TPS).
const CycleStep = 0.005

// Intensity control (the +/- keys).
const (
	IntensityMin     = 0.1
	IntensityMax     = 5.0
	IntensityStep    = 0.1
	DefaultIntensity = 1.0
)

// Audio capture and influence.
const (
	SampleRate     = 44100
	FramesPerChunk = 1024
	ChunkQueueSize = 16

	AudioThreshold = 0.01  // levels below this never disturb the surface
	AudioDropScale = 200.0 // level -> disturbance count and magnitude
	MaxAudioDrops  = 10

	// Spring parameters for the displayed (smoothed) level.
	LevelSpringFrequency = 7.0
	LevelSpringDamping   = 0.8

	LevelHistorySize = 256
)

// Splash particles.
const (
	MaxSplashes    = 2048
	SplashPerClick = 8
	SplashLife     = 60 // frames
	SplashGravity  = 0.2
)

// HUD layout.
const (
	HUDMarginX    = 8
	HUDMarginY    = 8
	HUDLineHeight = 20

	MeterX      = 8
	MeterY      = 100
	MeterWidth  = 180
	MeterHeight = 34
)
