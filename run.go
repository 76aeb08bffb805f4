package emblem

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/emblem/config"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the logical resolution to get the window size.
	Scale int
	TPS   int
	Icon  image.Image
}

// Run opens a window and runs e until the window is closed or Update returns
// an error.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = config.DefaultTitle
	}
	if cfg.Scale < 1 {
		cfg.Scale = config.DefaultScale
	}
	if cfg.TPS < 1 {
		cfg.TPS = config.DefaultTPS
	}
	e.tps = cfg.TPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(config.ScreenWidth*cfg.Scale, config.ScreenHeight*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Icon != nil {
		ebiten.SetWindowIcon([]image.Image{cfg.Icon})
	}
	return ebiten.RunGame(e)
}

// LoadIcon decodes a PNG window icon.
func LoadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	return img, nil
}
