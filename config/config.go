// Package config holds the runtime settings of glgrid and loads them from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

const (
	HostGLFW = "glfw"
	HostGTK  = "gtk"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Host    string  `toml:"host"`
	Program string  `toml:"program"`
	Debug   bool    `toml:"debug"`
	Window  Window  `toml:"window"`
	Colours Colours `toml:"colours"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Colours struct {
	Clear mgl32.Vec4 `toml:"clear"`
	// Lines is uploaded to the program's colour uniform. The solid
	// program always draws black and ignores it.
	Lines mgl32.Vec4 `toml:"lines"`
}

// Default returns the built-in settings: an 800x600 GLFW window
// drawing black lines on white.
func Default() Config {
	return Config{
		Host:    HostGLFW,
		Program: "solid",
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "OpenGL",
		},
		Colours: Colours{
			Clear: mgl32.Vec4{1, 1, 1, 1},
			Lines: mgl32.Vec4{0, 0, 0, 1},
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch c.Host {
	case HostGLFW, HostGTK:
	default:
		return fmt.Errorf("%w: unknown host %q", ErrInvalid, c.Host)
	}

	if c.Program == "" {
		return fmt.Errorf("%w: no program", ErrInvalid)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	for name, colour := range map[string]mgl32.Vec4{"clear": c.Colours.Clear, "lines": c.Colours.Lines} {
		for _, v := range colour {
			if !(v >= 0 && v <= 1) {
				return fmt.Errorf("%w: %s colour %v out of range", ErrInvalid, name, colour)
			}
		}
	}

	return nil
}
