package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/sketchpad/internal/canvas"
)

// Config holds all sketchpad settings.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// CanvasConfig controls the rendered canvas.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// HistoryConfig controls undo history.
type HistoryConfig struct {
	// MaxEntries bounds the history; 0 means unbounded.
	MaxEntries int `toml:"max_entries"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      640,
			Height:     480,
			Background: "white",
		},
		History: HistoryConfig{
			MaxEntries: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil // File doesn't exist, not an error
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader over the defaults.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

// parse decodes TOML data onto the defaults and validates the result.
func parse(source string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, newParseError(source, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{
		Path:    source,
		Message: err.Error(),
		Err:     err,
	}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		first := strict.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
		return pe
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return pe
}

// Validate checks that every setting holds a usable value.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 {
		return &ValidationError{Path: "canvas.width", Message: "must be positive"}
	}
	if c.Canvas.Height <= 0 {
		return &ValidationError{Path: "canvas.height", Message: "must be positive"}
	}
	if _, err := canvas.ParseColor(c.Canvas.Background); err != nil {
		return &ValidationError{Path: "canvas.background", Message: err.Error()}
	}
	if c.History.MaxEntries < 0 {
		return &ValidationError{Path: "history.max_entries", Message: "must not be negative"}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
		// Valid
	default:
		return &ValidationError{
			Path:    "log.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", c.Log.Level),
		}
	}

	return nil
}

// BackgroundColor returns the parsed canvas background.
// Falls back to white if the setting does not parse.
func (c Config) BackgroundColor() color.RGBA {
	bg, err := canvas.ParseColor(c.Canvas.Background)
	if err != nil {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return bg
}
