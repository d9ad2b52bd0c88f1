package main

import (
	"flag"
	"log"

	config "github.com/edward-ap/smoothscroll/internal/config"
	"github.com/edward-ap/smoothscroll/internal/termhost"
	"github.com/edward-ap/smoothscroll/scroller"
)

func main() {
	cfgPath := flag.String("config", "", "load text, direction and colors from this JSON or YAML file")
	text := flag.String("text", "", "override the configured text")
	direction := flag.String("direction", "", "override the scroll direction: left, right, up or down")
	speed := flag.Float64("speed", 20, "speed in cells per second")
	cols := flag.Int("cols", 60, "display width in cells")
	rows := flag.Int("rows", 9, "display height in cells")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		c, err := config.LoadFile(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	if *text != "" {
		cfg.Text = *text
	}
	if *direction != "" {
		cfg.Direction = *direction
	}

	bg := cfg.Background
	if bg == config.DefaultBackground {
		// keep the terminal's own background
		bg = ""
	}
	m, err := termhost.NewModel(cfg.Text, *cols, *rows, termhost.DefaultStyles(cfg.Color, bg),
		scroller.WithDirection(cfg.Direction),
		scroller.WithSpeed(*speed),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := termhost.Run(m); err != nil {
		log.Fatal(err)
	}
}
