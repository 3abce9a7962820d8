package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/colornames"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 480 {
		t.Errorf("canvas size = %dx%d, want 640x480", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.History.MaxEntries != 0 {
		t.Errorf("MaxEntries = %d, want 0", cfg.History.MaxEntries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketchpad.toml")
	content := `
[canvas]
width = 200
background = "#000080"

[history]
max_entries = 50
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Canvas.Width != 200 {
		t.Errorf("Width = %d, want 200", cfg.Canvas.Width)
	}
	// Not in file: keeps default.
	if cfg.Canvas.Height != 480 {
		t.Errorf("Height = %d, want 480", cfg.Canvas.Height)
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("MaxEntries = %d, want 50", cfg.History.MaxEntries)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
	if cfg.BackgroundColor() != colornames.Navy {
		t.Errorf("BackgroundColor() = %v, want navy", cfg.BackgroundColor())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = %+v, %v", cfg, err)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[canvas\nwidth = 1"))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if pe.Path != "<reader>" {
		t.Errorf("Path = %q", pe.Path)
	}
	if pe.Line == 0 {
		t.Error("line not set")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[canvas]\nwdth = 10\n"))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !strings.Contains(pe.Message, "wdth") {
		t.Errorf("Message = %q, want mention of wdth", pe.Message)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "canvas.width"},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, "canvas.height"},
		{"bad background", func(c *Config) { c.Canvas.Background = "plaid" }, "canvas.background"},
		{"negative max", func(c *Config) { c.History.MaxEntries = -1 }, "history.max_entries"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("error path = %v, want %s", err, tt.path)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[log]\nlevel = \"verbose\"\n"))
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}
