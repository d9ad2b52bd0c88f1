package main

import (
	"flag"
	"log"

	config "github.com/edward-ap/smoothscroll/internal/config"
	scrollapp "github.com/edward-ap/smoothscroll/internal/scrollapp"
)

func main() {
	cfgPath := flag.String("config", "", "load settings from this JSON or YAML file instead of the user config")
	trace := flag.Bool("traceLog", false, "log scroller boundaries, wraps and frame timing to stderr")
	text := flag.String("text", "", "override the configured text")
	flag.Parse()
	scrollapp.SetTraceLogEnabled(*trace)

	var (
		cfg *config.Config
		err error
	)
	persist := *cfgPath == ""
	if persist {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(*cfgPath)
	}
	if err != nil {
		log.Println("config load error:", err)
		cfg = config.Default()
	}
	if *text != "" {
		cfg.Text = *text
	}

	app, err := scrollapp.NewApp(cfg, persist)
	if err != nil {
		log.Fatal(err)
	}
	app.Run()
}
