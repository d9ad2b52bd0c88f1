package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	config "github.com/edward-ap/smoothscroll/internal/config"
	"github.com/edward-ap/smoothscroll/internal/ebitenhost"
	"github.com/edward-ap/smoothscroll/label"
	"github.com/edward-ap/smoothscroll/scroller"
)

func main() {
	cfgPath := flag.String("config", "", "load settings from this JSON or YAML file instead of the user config")
	text := flag.String("text", "", "override the configured text")
	direction := flag.String("direction", "", "override the scroll direction: left, right, up or down")
	speed := flag.Float64("speed", 0, "override the speed in pixels per second")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Println("config load error:", err)
		cfg = config.Default()
	}
	applyOverrides(flag.CommandLine, cfg, *text, *direction, *speed)

	opts, err := cfg.ScrollerOptions()
	if err != nil {
		log.Fatal(err)
	}
	clock := &scroller.ManualClock{}
	opts = append(opts, scroller.WithDirection(cfg.Direction), scroller.WithClock(clock))
	sc, err := scroller.New(cfg.Text, cfg.Display(), opts...)
	if err != nil {
		log.Fatal(err)
	}
	bg, err := label.ParseHex(cfg.Background)
	if err != nil {
		bg = label.RGB(0x000000)
	}

	game := ebitenhost.NewGame(sc, clock, cfg.Display(), bg)
	ebiten.SetWindowSize(cfg.DisplayW*cfg.PixelScale, cfg.DisplayH*cfg.PixelScale)
	ebiten.SetWindowTitle("SmoothScroll")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// applyOverrides copies the flags given on the command line onto cfg. Zero is
// a valid speed, so presence is checked rather than the value.
func applyOverrides(fs *flag.FlagSet, cfg *config.Config, text, direction string, speed float64) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = text
		case "direction":
			cfg.Direction = direction
		case "speed":
			cfg.Speed = speed
		}
	})
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
