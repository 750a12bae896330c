// Package config loads game settings from YAML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/parameter"
)

var (
	ErrInvalidPlayers  = errors.New("config: players must be 1 or 2")
	ErrInvalidTickRate = errors.New("config: tick rate out of range")
	ErrInvalidVolume   = errors.New("config: volume must be within [0, 1]")
	ErrInvalidKeys     = errors.New("config: invalid key bindings")
)

const (
	MinTickRate = 10
	MaxTickRate = 240
)

// Config is the full game configuration
type Config struct {
	Players  int   `yaml:"players"`
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 seeds from the clock

	Audio AudioConfig   `yaml:"audio"`
	Keys  []KeyBindings `yaml:"keys"` // One entry per player slot
	Log   logger.Config `yaml:"log"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// KeyBindings names the keys for one player
// Names are single characters or one of: up, down, left, right, enter, space, tab
type KeyBindings struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Rescue string `yaml:"rescue"`
	Shield string `yaml:"shield"`
}

// Names returns the bindings in a fixed order
func (k KeyBindings) Names() []string {
	return []string{k.Up, k.Down, k.Left, k.Right, k.Rescue, k.Shield}
}

// DefaultKeys returns the stock bindings for both player slots
func DefaultKeys() []KeyBindings {
	return []KeyBindings{
		{Up: "w", Down: "s", Left: "a", Right: "d", Rescue: "e", Shield: "q"},
		{Up: "up", Down: "down", Left: "left", Right: "right", Rescue: "enter", Shield: "/"},
	}
}

// Default returns a valid single player configuration
func Default() *Config {
	return &Config{
		Players:  1,
		TickRate: parameter.TickRate,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
		Keys: DefaultKeys(),
		Log:  logger.DefaultConfig(),
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks ranges and key bindings for the active players
func (c *Config) Validate() error {
	if c.Players != 1 && c.Players != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidPlayers, c.Players)
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidTickRate, c.TickRate, MinTickRate, MaxTickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidVolume, c.Audio.Volume)
	}
	return c.validateKeys()
}

func (c *Config) validateKeys() error {
	if len(c.Keys) < c.Players {
		return fmt.Errorf("%w: %d players but %d binding sets", ErrInvalidKeys, c.Players, len(c.Keys))
	}

	seen := make(map[string]int)
	for i, k := range c.Keys[:c.Players] {
		for _, name := range k.Names() {
			if name == "" {
				return fmt.Errorf("%w: player %d has an empty binding", ErrInvalidKeys, i+1)
			}
			if owner, dup := seen[name]; dup {
				return fmt.Errorf("%w: %q bound twice (players %d and %d)", ErrInvalidKeys, name, owner+1, i+1)
			}
			seen[name] = i
		}
	}
	return nil
}
