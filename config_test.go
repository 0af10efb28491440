package rowan

import (
	"strings"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	src := `
debug = true

[window]
width = 320
height = 180
title = "Demo"
scale = 3.0
clear_color = [0.1, 0.2, 0.3]

[input]
click_delay = 0.25
`
	opts, err := LoadOptions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}

	if opts.Width != 320 || opts.Height != 180 {
		t.Errorf("size = %dx%d, want 320x180", opts.Width, opts.Height)
	}
	if opts.Title != "Demo" {
		t.Errorf("title = %q, want Demo", opts.Title)
	}
	if opts.WindowScale != 3 {
		t.Errorf("window scale = %v, want 3", opts.WindowScale)
	}
	if opts.ClickDelay != 0.25 {
		t.Errorf("click delay = %v, want 0.25", opts.ClickDelay)
	}
	if !opts.Debug {
		t.Error("debug should be true")
	}
	want := Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	if opts.ClearColor == nil || *opts.ClearColor != want {
		t.Errorf("clear color = %v, want %v", opts.ClearColor, want)
	}
}

func TestLoadOptionsRGBA(t *testing.T) {
	src := `
[window]
width = 64
height = 64
clear_color = [1.0, 1.0, 1.0, 0.5]
`
	opts, err := LoadOptions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.ClearColor.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", opts.ClearColor.A)
	}
}

func TestLoadOptionsDefaultsPreserved(t *testing.T) {
	src := `
[window]
width = 64
height = 64
`
	opts, err := LoadOptions(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	// Untouched fields stay zero so NewEngine applies its defaults.
	if opts.ClearColor != nil || opts.ClickDelay != 0 || opts.WindowScale != 0 {
		t.Error("unset fields should stay zero for NewEngine defaulting")
	}

	e := NewEngine(opts)
	if e.opts.ClickDelay != defaultClickDelay {
		t.Errorf("engine click delay = %v, want default", e.opts.ClickDelay)
	}
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	src := `
[window]
width = 64
height = 64
widht = 320
`
	if _, err := LoadOptions(strings.NewReader(src)); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestLoadOptionsBadClearColor(t *testing.T) {
	src := `
[window]
width = 64
height = 64
clear_color = [1.0, 1.0]
`
	if _, err := LoadOptions(strings.NewReader(src)); err == nil {
		t.Error("two-component clear_color should be rejected")
	}
}

func TestLoadOptionsBadTOML(t *testing.T) {
	if _, err := LoadOptions(strings.NewReader("[window")); err == nil {
		t.Error("malformed TOML should be rejected")
	}
}
