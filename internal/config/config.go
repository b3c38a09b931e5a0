package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/prxssh/mutator/internal/state"
)

var ErrInvalid = errors.New("invalid config")

// ValidLogLevels lists the accepted values of log.level.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the mutator configuration.
type Config struct {
	// State the program starts from
	Initial InitialState `yaml:"initial"`

	Log LogConfig `yaml:"log"`

	// Color theme of the interactive UI
	Theme string `yaml:"theme" env:"MUTATOR_THEME"`
}

// InitialState mirrors state.State in a file-friendly shape.
type InitialState struct {
	Width   uint64   `yaml:"width"`
	Height  uint64   `yaml:"height"`
	X       uint64   `yaml:"x"`
	Y       uint64   `yaml:"y"`
	Message string   `yaml:"message"`
	Color   [3]uint8 `yaml:"color,flow"`
}

// InteractiveLogFile is where the interactive UI logs when no file is
// configured, since it owns the terminal.
const InteractiveLogFile = "mutator.log"

// LogConfig configures logging. An empty File logs to stderr.
type LogConfig struct {
	Level string `yaml:"level" env:"MUTATOR_LOG_LEVEL"`
	File  string `yaml:"file" env:"MUTATOR_LOG_FILE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Initial: InitialState{Message: "hello world"},
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeGruvbox,
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

func (c *Config) Validate() error {
	if !slices.Contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalid, c.Log.Level, ValidLogLevels)
	}
	if !slices.Contains(Themes(), c.Theme) {
		return fmt.Errorf("%w: theme %q (valid: %v)", ErrInvalid, c.Theme, Themes())
	}
	return nil
}

// State builds the state the program starts from.
func (i InitialState) State() state.State {
	return state.State{
		Width:    i.Width,
		Height:   i.Height,
		Position: state.Position{X: i.X, Y: i.Y},
		Message:  i.Message,
		Color:    state.Color{R: i.Color[0], G: i.Color[1], B: i.Color[2]},
	}
}
