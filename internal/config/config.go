// Package config loads the viewer's YAML configuration
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leterax/go-planets/internal/logger"
	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/input"
)

var (
	// ErrInvalidBinding is returned when a control binding is missing,
	// unknown or shared between actions
	ErrInvalidBinding = errors.New("invalid binding")
	// ErrInvalidConfig is returned for out-of-range settings
	ErrInvalidConfig = errors.New("invalid config")
)

// DefaultWorldScale is how many metres one world unit represents
const DefaultWorldScale = 250000.0

// MaxWorldScale bounds world_scale
const MaxWorldScale = 500000.0

// Config is the full application configuration
type Config struct {
	Bindings   map[string]string `yaml:"bindings"`
	WorldScale float64           `yaml:"world_scale"`
	Camera     CameraConfig      `yaml:"camera"`
	Window     WindowConfig      `yaml:"window"`
	Logging    logger.Config     `yaml:"logging"`
}

// CameraConfig tunes the fly camera
type CameraConfig struct {
	Sensitivity  float32 `yaml:"sensitivity"`
	Acceleration float32 `yaml:"acceleration"`
	MaxSpeed     float32 `yaml:"max_speed"`
	Deceleration float32 `yaml:"deceleration"`
}

// Apply copies the tuning onto s, leaving orientation and velocity alone
func (c CameraConfig) Apply(s *camera.State) {
	s.Sensitivity = c.Sensitivity
	s.Acceleration = c.Acceleration
	s.MaxSpeed = c.MaxSpeed
	s.Deceleration = c.Deceleration
}

// WindowConfig describes the main window
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Bindings:   bindingNames(input.DefaultBindings()),
		WorldScale: DefaultWorldScale,
		Camera: CameraConfig{
			Sensitivity:  camera.DefaultSensitivity,
			Acceleration: camera.DefaultAcceleration,
			MaxSpeed:     camera.DefaultMaxSpeed,
			Deceleration: camera.DefaultDeceleration,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Planet Simulator",
			VSync:  true,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set
func Parse(data []byte, cfg *Config) error {
	defaults := cfg.Bindings
	cfg.Bindings = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Bindings = defaults
		return err
	}

	if cfg.Bindings == nil {
		cfg.Bindings = make(map[string]string, len(defaults))
	}
	for action, control := range defaults {
		if _, ok := cfg.Bindings[action]; !ok {
			cfg.Bindings[action] = control
		}
	}
	return nil
}

// Validate checks bindings and numeric settings
func (c *Config) Validate() error {
	for name := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("%w: unknown action %q", ErrInvalidBinding, name)
		}
	}

	owner := make(map[string]input.Action, len(c.Bindings))
	for _, a := range input.Actions {
		control := strings.TrimSpace(c.Bindings[a.String()])
		if control == "" {
			return fmt.Errorf("%w: action %q has no control", ErrInvalidBinding, a)
		}
		key := strings.ToLower(control)
		if prev, ok := owner[key]; ok {
			return fmt.Errorf("%w: %q is bound to both %q and %q", ErrInvalidBinding, control, prev, a)
		}
		owner[key] = a
	}

	if c.WorldScale <= 0 || c.WorldScale > MaxWorldScale || math.IsNaN(c.WorldScale) {
		return fmt.Errorf("%w: world_scale must be in (0, %v], got %v", ErrInvalidConfig, MaxWorldScale, c.WorldScale)
	}
	for name, v := range map[string]float32{
		"sensitivity":  c.Camera.Sensitivity,
		"acceleration": c.Camera.Acceleration,
		"max_speed":    c.Camera.MaxSpeed,
		"deceleration": c.Camera.Deceleration,
	} {
		f := float64(v)
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: camera.%s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// InputBindings converts the validated name map into action bindings
func (c *Config) InputBindings() input.Bindings {
	out := make(input.Bindings, len(c.Bindings))
	for name, control := range c.Bindings {
		if a, ok := input.ParseAction(name); ok {
			out[a] = strings.TrimSpace(control)
		}
	}
	return out
}

// Summary lists the bindings in a stable order for logging
func (c *Config) Summary() []string {
	out := make([]string, 0, len(c.Bindings))
	for name, control := range c.Bindings {
		out = append(out, name+"="+control)
	}
	sort.Strings(out)
	return out
}

func bindingNames(b input.Bindings) map[string]string {
	out := make(map[string]string, len(b))
	for a, control := range b {
		out[a.String()] = control
	}
	return out
}
