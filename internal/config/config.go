// Package config loads graphite settings.
//
// Settings are layered: built-in defaults, then an optional TOML file, then
// GRAPHITE_* environment variables. Later layers only override the keys
// they actually set.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/pelletier/go-toml/v2"
)

// Config is the complete graphite configuration.
type Config struct {
	Pencil Pencil `toml:"pencil"`
	Desk   Desk   `toml:"desk"`
	Log    Log    `toml:"log"`
}

// Pencil holds the resources a new pencil starts with.
type Pencil struct {
	PointDurability  int `toml:"point_durability" env:"GRAPHITE_POINT_DURABILITY"`
	Length           int `toml:"length" env:"GRAPHITE_LENGTH"`
	EraserDurability int `toml:"eraser_durability" env:"GRAPHITE_ERASER_DURABILITY"`
}

type Desk struct {
	// Text already on the paper when the desk opens.
	Text     string `toml:"text" env:"GRAPHITE_TEXT"`
	ShowHelp bool   `toml:"show_help" env:"GRAPHITE_SHOW_HELP"`
}

type Log struct {
	Level string `toml:"level" env:"GRAPHITE_LOG_LEVEL"`
	// File receives log output. Empty disables logging.
	File  string `toml:"file" env:"GRAPHITE_LOG_FILE"`
}

func Default() Config {
	return Config{
		Pencil: Pencil{
			PointDurability:  40000,
			Length:           10,
			EraserDurability: 400,
		},
		Desk: Desk{ShowHelp: true},
		Log:  Log{Level: "info"},
	}
}

// Load builds a Config from defaults, the TOML file at path and the
// environment. An empty path or a missing file skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data, cfg)
}

func parse(source string, data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

func loadEnv(cfg *Config) error {
	err := envdecode.Decode(cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Pencil.PointDurability < 0:
		return &ValidationError{Key: "pencil.point_durability", Message: "must not be negative"}
	case c.Pencil.Length < 0:
		return &ValidationError{Key: "pencil.length", Message: "must not be negative"}
	case c.Pencil.EraserDurability < 0:
		return &ValidationError{Key: "pencil.eraser_durability", Message: "must not be negative"}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &ValidationError{Key: "log.level", Message: err.Error()}
	}
	return nil
}

// SlogLevel parses Level. An empty level means info.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", l.Level)
	}
	return lvl, nil
}
