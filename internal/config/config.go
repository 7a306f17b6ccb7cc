package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/coachlab/tactics-board/internal/board"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxHistoryCapacity bounds the configurable undo depth.
const MaxHistoryCapacity = 500

// Config represents the application configuration.
type Config struct {
	// Window geometry
	Window WindowConfig `toml:"window"`

	// Board defaults
	Board BoardConfig `toml:"board"`

	// Player photo loading
	Photos PhotosConfig `toml:"photos"`
}

// WindowConfig contains the initial window settings.
type WindowConfig struct {
	Width   int     `toml:"width"`   // Layout width in pixels
	Height  int     `toml:"height"`  // Layout height in pixels
	Density float64 `toml:"density"` // Device pixel density, 0 = ask the monitor
}

// BoardConfig contains the board's initial toolbar and view settings.
type BoardConfig struct {
	Tool            string `toml:"tool"`             // e.g. "select", "arrow"
	Color           string `toml:"color"`            // "#rrggbb"
	Filled          bool   `toml:"filled"`           // Fill new shapes
	HistoryCapacity int    `toml:"history_capacity"` // Undo depth
	ShowNames       bool   `toml:"show_names"`
	ShowZones       bool   `toml:"show_zones"`
	LightField      bool   `toml:"light_field"`
	TeamA           string `toml:"team_a"` // Display name, empty keeps "Team A"
	TeamB           string `toml:"team_b"`
}

// PhotosConfig contains the player photo directory settings.
type PhotosConfig struct {
	Directory string `toml:"directory"` // Watched for a1.png .. b11.jpg, empty disables
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1050,
			Height:  680,
			Density: 0,
		},
		Board: BoardConfig{
			Tool:            board.ToolSelect.String(),
			Color:           board.HexColor(board.DefaultColor),
			Filled:          false,
			HistoryCapacity: board.DefaultHistoryCapacity,
			ShowNames:       true,
			ShowZones:       false,
			LightField:      false,
		},
	}
}

// DefaultPath returns ~/.coachlab/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".coachlab", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Density < 0 || c.Window.Density > board.MaxDensity {
		return fmt.Errorf("%w: density %v outside [0,%v]", ErrInvalid, c.Window.Density, board.MaxDensity)
	}
	if _, ok := board.ParseTool(c.Board.Tool); !ok {
		return fmt.Errorf("%w: unknown tool %q", ErrInvalid, c.Board.Tool)
	}
	if _, err := board.ParseHexColor(c.Board.Color); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Board.HistoryCapacity < 1 || c.Board.HistoryCapacity > MaxHistoryCapacity {
		return fmt.Errorf("%w: history capacity %d outside [1,%d]", ErrInvalid, c.Board.HistoryCapacity, MaxHistoryCapacity)
	}
	return nil
}

// View returns the board display toggles.
func (c *Config) View() board.ViewOptions {
	return board.ViewOptions{
		ShowNames:  c.Board.ShowNames,
		ShowZones:  c.Board.ShowZones,
		LightField: c.Board.LightField,
	}
}

// NewBoard builds a board from a validated configuration on surface s.
func (c *Config) NewBoard(s board.Surface, opts ...board.Option) *board.Board {
	opts = append([]board.Option{
		board.WithHistoryCapacity(c.Board.HistoryCapacity),
		board.WithView(c.View()),
		board.WithSurface(s),
	}, opts...)
	b := board.New(opts...)
	if tool, ok := board.ParseTool(c.Board.Tool); ok {
		b.SetTool(tool)
	}
	if col, err := board.ParseHexColor(c.Board.Color); err == nil {
		b.SetColor(col)
	}
	b.SetFilled(c.Board.Filled)
	b.SetTeamName(board.TeamA, c.Board.TeamA)
	b.SetTeamName(board.TeamB, c.Board.TeamB)
	return b
}
