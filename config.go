package rowan

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// optionsFile is the on-disk TOML shape of Options.
type optionsFile struct {
	Window windowConfig `toml:"window"`
	Input  inputConfig  `toml:"input"`
	Debug  bool         `toml:"debug"`
}

type windowConfig struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Title      string    `toml:"title"`
	Scale      float64   `toml:"scale"`
	ClearColor []float64 `toml:"clear_color"` // [r g b] or [r g b a], components in [0, 1]
}

type inputConfig struct {
	ClickDelay float64 `toml:"click_delay"`
}

// LoadOptions reads engine options from TOML:
//
//	[window]
//	width = 320
//	height = 180
//	title = "My Game"
//	scale = 3.0
//	clear_color = [0.1, 0.1, 0.2]
//
//	[input]
//	click_delay = 0.25
//
// Unknown keys are rejected so typos surface during development. The result
// has the same defaulting behavior as a literal Options value; validation
// happens in NewEngine.
func LoadOptions(r io.Reader) (Options, error) {
	var file optionsFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}

	opts := Options{
		Width:       file.Window.Width,
		Height:      file.Window.Height,
		Title:       file.Window.Title,
		WindowScale: file.Window.Scale,
		ClickDelay:  file.Input.ClickDelay,
		Debug:       file.Debug,
	}

	switch n := len(file.Window.ClearColor); n {
	case 0:
	case 3, 4:
		c := Color{
			R: file.Window.ClearColor[0],
			G: file.Window.ClearColor[1],
			B: file.Window.ClearColor[2],
			A: 1,
		}
		if n == 4 {
			c.A = file.Window.ClearColor[3]
		}
		opts.ClearColor = &c
	default:
		return Options{}, fmt.Errorf("parse options: clear_color wants 3 or 4 components, got %d", n)
	}
	return opts, nil
}
