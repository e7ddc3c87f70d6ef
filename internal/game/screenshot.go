package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/ripple-tank/internal/config"
)

// requestScreenshot runs the save dialog and records the chosen path; the
// actual pixel readback happens at the end of the next Draw so the saved
// frame includes particles and the HUD.
func (g *Game) requestScreenshot() {
	name := fmt.Sprintf("ripple_%s.png", time.Now().Format("20060102_150405"))
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.log.Warn("screenshot dialog failed", zap.Error(err))
		g.statusMsg = "Screenshot failed: " + err.Error()
		return
	}
	g.shotPath = path
}

func (g *Game) writeScreenshot() {
	path := g.shotPath
	g.shotPath = ""

	w, h := config.WindowWidth, config.WindowHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	g.offscreen.ReadPixels(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		g.log.Warn("screenshot create failed", zap.Error(err))
		g.statusMsg = "Screenshot failed: " + err.Error()
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		g.log.Warn("screenshot encode failed", zap.Error(err))
		g.statusMsg = "Screenshot failed: " + err.Error()
		return
	}

	g.log.Info("screenshot saved", zap.String("path", path))
	g.statusMsg = "Saved " + path
}
