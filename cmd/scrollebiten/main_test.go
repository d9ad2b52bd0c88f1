package main

import (
	"flag"
	"io"
	"testing"

	config "github.com/edward-ap/smoothscroll/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantSpeed float64
		wantDir   string
		wantText  string
	}{
		{"nothing given", nil, 120, "left", config.DefaultText},
		{"zero speed freezes", []string{"-speed", "0"}, 0, "left", config.DefaultText},
		{"all given", []string{"-speed", "30", "-direction", "up", "-text", "hi"}, 30, "up", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("scrollebiten", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			text := fs.String("text", "", "")
			direction := fs.String("direction", "", "")
			speed := fs.Float64("speed", 0, "")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cfg := config.Default()
			applyOverrides(fs, cfg, *text, *direction, *speed)
			if cfg.Speed != tt.wantSpeed || cfg.Direction != tt.wantDir || cfg.Text != tt.wantText {
				t.Fatalf("got speed=%v dir=%q text=%q", cfg.Speed, cfg.Direction, cfg.Text)
			}
		})
	}
}
