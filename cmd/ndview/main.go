// Command ndview opens an interactive window on an N-dimensional wireframe.
//
// Keys: Right/Left rotate while held, Up/Down cycle the rotation plane,
// Q toggles scale correction, R toggles auto rotation, +/- change the
// perspective depth, [ and ] change the rotation speed, P cycles palettes,
// Tab toggles the info overlay, Ctrl+S saves a screenshot, Ctrl+E exports
// an STL solid and Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/ndwire/pkg/scene"
	"github.com/chazu/ndwire/pkg/session"
	"github.com/chazu/ndwire/pkg/shapefile"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	dims := flag.Int("dims", scene.DefaultConfig().Dimensions, "number of dimensions")
	presetName := flag.String("preset", "", "preset to load at startup (hypercube, hyperpyramid)")
	load := flag.String("load", "", "saved shape to load at startup")
	script := flag.String("script", "", "command script to run at startup")
	shapes := flag.String("shapes", shapefile.DefaultDir, "shape library directory")
	shots := flag.String("screenshots", session.DefaultScreenshotDir, "screenshot directory")
	verbose := flag.Bool("log", false, "log state changes to the console")
	flag.Parse()

	cfg, err := configFor(*dims)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	s := session.New(session.Options{
		Config:        cfg,
		ShapeDir:      *shapes,
		ScreenshotDir: *shots,
		Logging:       *verbose,
	})

	if err := startup(s, *presetName, *load, *script); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	ebiten.SetWindowTitle("ndwire")
	ebiten.SetWindowSize(int(cfg.SurfaceSide), int(cfg.SurfaceSide))
	ebiten.SetTPS(s.TPS())
	if err := ebiten.RunGame(newGame(s, cfg.SurfaceSide)); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// startup applies the optional preset, shape and script in that order.
func startup(s *session.Session, presetName, load, script string) error {
	if presetName != "" {
		if _, err := s.Preset(presetName); err != nil {
			return err
		}
	}
	if load != "" {
		if _, err := s.LoadShape(load); err != nil {
			return err
		}
	}
	if script != "" {
		src, err := os.ReadFile(script)
		if err != nil {
			return err
		}
		res, err := s.Evaluate(string(src))
		if err != nil {
			return err
		}
		if len(res.Errors) > 0 {
			return res.Errors[0]
		}
	}
	return nil
}

// configFor returns the default configuration at dims dimensions.
func configFor(dims int) (scene.Config, error) {
	cfg := scene.DefaultConfig()
	if dims < 2 {
		return cfg, fmt.Errorf("%w: got %d", scene.ErrDimensions, dims)
	}
	cfg.Dimensions = dims
	return cfg, nil
}
