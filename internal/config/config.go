// Package config defines the SmoothScroll configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edward-ap/smoothscroll/label"
	"github.com/edward-ap/smoothscroll/scroller"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "smoothscroll"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "SmoothScroll"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultText is shown when no text is configured.
	DefaultText = "Hello from SmoothScroll"
	// DefaultDirection matches the scroller default.
	DefaultDirection = "left"
	// DefaultColor is white, the scroller's default text color.
	DefaultColor = "#FFFFFF"
	// DefaultBackground is the frame buffer fill.
	DefaultBackground = "#000000"
	// DefaultDisplayWidth and DefaultDisplayHeight describe a small TFT panel.
	DefaultDisplayWidth  = 160
	DefaultDisplayHeight = 128
	// DefaultPixelScale enlarges the simulated panel on a desktop monitor.
	DefaultPixelScale = 4
	// DefaultFontSize is used for font files when no size is configured.
	DefaultFontSize = 12
	// MaxPixelScale keeps the preview window on screen.
	MaxPixelScale = 8
)

// Config aggregates every preference persisted between sessions.
type Config struct {
	Text        string      `json:"text" yaml:"text"`
	Speed       float64     `json:"speed" yaml:"speed"`
	Direction   string      `json:"direction" yaml:"direction"`
	Color       string      `json:"color" yaml:"color"`
	Background  string      `json:"background" yaml:"background"`
	Position    *int        `json:"position,omitempty" yaml:"position,omitempty"`
	AnchorPoint *[2]float64 `json:"anchorPoint,omitempty" yaml:"anchor_point,omitempty"`
	FontPath    string      `json:"fontPath,omitempty" yaml:"font_path,omitempty"`
	FontSize    float64     `json:"fontSize,omitempty" yaml:"font_size,omitempty"`
	LabelScale  int         `json:"labelScale" yaml:"label_scale"`
	DisplayW    int         `json:"displayW" yaml:"display_width"`
	DisplayH    int         `json:"displayH" yaml:"display_height"`
	PixelScale  int         `json:"pixelScale" yaml:"pixel_scale"`
	Paused      bool        `json:"paused,omitempty" yaml:"paused,omitempty"`
	// WindowPos is the last desktop window corner, where the platform reports it.
	WindowPos *[2]int `json:"windowPos,omitempty" yaml:"window_pos,omitempty"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from the user config directory, writing defaults on
// first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// LoadFile reads an explicit config file. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	default:
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	cfg := &Config{
		Text:       DefaultText,
		Speed:      scroller.DefaultSpeed,
		Direction:  DefaultDirection,
		Color:      DefaultColor,
		Background: DefaultBackground,
		LabelScale: 1,
		DisplayW:   DefaultDisplayWidth,
		DisplayH:   DefaultDisplayHeight,
		PixelScale: DefaultPixelScale,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed. Speed is left as configured: zero and negative rates are
// valid scroller input.
func (c *Config) applyRuntimeDefaults() {
	if c.Text == "" {
		c.Text = DefaultText
	}
	if _, err := scroller.ParseDirection(c.Direction); err != nil {
		c.Direction = DefaultDirection
	}
	if _, err := label.ParseHex(c.Color); err != nil {
		c.Color = DefaultColor
	}
	if _, err := label.ParseHex(c.Background); err != nil {
		c.Background = DefaultBackground
	}
	if c.DisplayW <= 0 {
		c.DisplayW = DefaultDisplayWidth
	}
	if c.DisplayH <= 0 {
		c.DisplayH = DefaultDisplayHeight
	}
	if c.PixelScale <= 0 {
		c.PixelScale = DefaultPixelScale
	}
	if c.PixelScale > MaxPixelScale {
		c.PixelScale = MaxPixelScale
	}
	if c.LabelScale < 1 {
		c.LabelScale = 1
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
}

// SetDirection changes the scroll direction. Position is a cross-axis
// coordinate, so it is dropped when the new direction scrolls along the other
// axis and the scroller falls back to centring.
func (c *Config) SetDirection(dir string) {
	prev, errPrev := scroller.ParseDirection(c.Direction)
	next, errNext := scroller.ParseDirection(dir)
	if errPrev != nil || errNext != nil || prev.Horizontal() != next.Horizontal() {
		c.Position = nil
	}
	c.Direction = dir
}

// Display returns the configured display surface.
func (c *Config) Display() scroller.Surface {
	return scroller.Surface{W: c.DisplayW, H: c.DisplayH}
}

// ScrollerOptions converts the config into scroller construction options.
// The font file, when set, is loaded here so a bad path surfaces early.
func (c *Config) ScrollerOptions() ([]scroller.Option, error) {
	scale := c.LabelScale
	opts := []scroller.Option{
		scroller.WithSpeed(c.Speed),
		scroller.WithDirection(c.Direction),
		scroller.WithElementFactory(func(o label.Options) scroller.TextElement {
			o.Scale = scale
			return label.New(o)
		}),
	}
	if col, err := label.ParseHex(c.Color); err == nil {
		opts = append(opts, scroller.WithColor(col))
	}
	if c.Position != nil {
		opts = append(opts, scroller.WithPosition(*c.Position))
	}
	if c.AnchorPoint != nil {
		opts = append(opts, scroller.WithAnchorPoint(label.AnchorPoint{X: c.AnchorPoint[0], Y: c.AnchorPoint[1]}))
	}
	if c.FontPath != "" {
		face, err := label.LoadFaceFile(c.FontPath, c.FontSize)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", c.FontPath, err)
		}
		opts = append(opts, scroller.WithFont(face))
	}
	return opts, nil
}
