package main

import (
	"errors"
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/ripple-tank/internal/audio"
	"github.com/iburimskiy/ripple-tank/internal/config"
	"github.com/iburimskiy/ripple-tank/internal/game"
)

var (
	noAudioFlag = flag.Bool("no-audio", false, "run without microphone capture")
	noSoundFlag = flag.Bool("no-sound", false, "disable droplet sound output")
	seedFlag    = flag.Uint64("seed", 0, "particle RNG seed (0 = derive from clock)")
	debugFlag   = flag.Bool("debug", false, "verbose logging")
)

func main() {
	flag.Parse()

	log := newLogger(*debugFlag)
	defer log.Sync()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Microphone capture. Any failure degrades to the silent null device
	// rather than terminating; the visualization just loses audio influence.
	var device audio.CaptureDevice
	if *noAudioFlag {
		device = audio.NewNullDevice(config.SampleRate)
	} else {
		device = audio.NewMicDevice(config.SampleRate, config.FramesPerChunk, config.ChunkQueueSize)
	}
	ch, err := device.Start()
	if err != nil {
		log.Warn("microphone unavailable, continuing without audio input", zap.Error(err))
		device = audio.NewNullDevice(config.SampleRate)
		ch, _ = device.Start()
	}
	defer device.Stop()

	meter := audio.NewMeter(config.TPS, config.LevelSpringFrequency, config.LevelSpringDamping)
	meter.Consume(ch)

	var drops *game.Droplets
	if !*noSoundFlag {
		drops, err = game.NewDroplets(config.SampleRate, seed^0xD0B)
		if err != nil {
			log.Warn("speaker unavailable, continuing without sound", zap.Error(err))
			drops = nil
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ripple Tank - click/drag to disturb, M/A/P/S, Esc/Q: quit")
	ebiten.SetTPS(config.TPS)

	g := game.New(log, meter, drops, seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
