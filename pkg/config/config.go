package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"gldemos/internal/logger"
	"gldemos/pkg/camera"
	"gldemos/pkg/mesh"
)

// Config represents the main configuration
type Config struct {
	LogLevel string        `yaml:"log_level" toml:"log_level"`
	LogFile  string        `yaml:"log_file" toml:"log_file"` // optional, also logs to console
	Demo     string        `yaml:"demo" toml:"demo"`
	Window   WindowConfig  `yaml:"window" toml:"window"`
	Camera   CameraConfig  `yaml:"camera" toml:"camera"`
	Cubes    CubesConfig   `yaml:"cubes" toml:"cubes"`
	Letters  LettersConfig `yaml:"letters" toml:"letters"`
	Flag     FlagConfig    `yaml:"flag" toml:"flag"`
}

// WindowConfig contains window and loop configuration
type WindowConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Title      string `yaml:"title" toml:"title"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	FrameRate  int    `yaml:"framerate" toml:"framerate"` // 0 means uncapped
}

// CameraConfig mirrors camera.Settings for the free-look demos
type CameraConfig struct {
	MovementSpeed    float32 `yaml:"movement_speed" toml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity" toml:"mouse_sensitivity"`
	Zoom             float32 `yaml:"zoom" toml:"zoom"`
	MinZoom          float32 `yaml:"min_zoom" toml:"min_zoom"`
	MaxZoom          float32 `yaml:"max_zoom" toml:"max_zoom"`
	MaxPitch         float32 `yaml:"max_pitch" toml:"max_pitch"`
	InvertY          bool    `yaml:"invert_y" toml:"invert_y"`
}

// CubesConfig contains the free-look cubes scene
type CubesConfig struct {
	Positions [][3]float32 `yaml:"positions,flow" toml:"positions"`
	Colors    [][3]float32 `yaml:"colors,flow" toml:"colors"` // cycled over the cubes
	Size      float32      `yaml:"size" toml:"size"`
	SpinRate  float32      `yaml:"spin_rate" toml:"spin_rate"` // degrees per second, times cube index+1
	AutoMove  bool         `yaml:"auto_move" toml:"auto_move"` // start on the scripted path
}

// LettersConfig contains the extruded text scene
type LettersConfig struct {
	Text           string     `yaml:"text" toml:"text"`
	Depth          float32    `yaml:"depth" toml:"depth"`
	Advance        float32    `yaml:"advance" toml:"advance"`                 // x distance between letters
	RevealInterval float32    `yaml:"reveal_interval" toml:"reveal_interval"` // seconds between letters
	StartZ         float32    `yaml:"start_z" toml:"start_z"`
	SlideSpeed     float32    `yaml:"slide_speed" toml:"slide_speed"` // units per second
	FrontColor     [3]float32 `yaml:"front_color,flow" toml:"front_color"`
	BackColor      [3]float32 `yaml:"back_color,flow" toml:"back_color"`
	Background     [3]float32 `yaml:"background,flow" toml:"background"`
}

// FlagConfig contains the waving flag scene
type FlagConfig struct {
	Density      int          `yaml:"density" toml:"density"`
	Spacing      string       `yaml:"spacing" toml:"spacing"` // full or density
	Width        float32      `yaml:"width" toml:"width"`
	Height       float32      `yaml:"height" toml:"height"`
	Stripes      [][3]float32 `yaml:"stripes,flow" toml:"stripes"` // top to bottom
	Emblem       [3]float32   `yaml:"emblem,flow" toml:"emblem"`
	TextureSize  int          `yaml:"texture_size" toml:"texture_size"`
	OrbitRadius  float32      `yaml:"orbit_radius" toml:"orbit_radius"`
	StartHeight  float32      `yaml:"start_height" toml:"start_height"`
	EndHeight    float32      `yaml:"end_height" toml:"end_height"`
	RiseRate     float32      `yaml:"rise_rate" toml:"rise_rate"`
	AngularSpeed float32      `yaml:"angular_speed" toml:"angular_speed"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Demo:     "cubes",
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "GL Demos",
			VSync:     true,
			FrameRate: 60,
		},
		Camera: CameraConfig{
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			Zoom:             45,
			MinZoom:          1,
			MaxZoom:          45,
			MaxPitch:         89,
		},
		Cubes: CubesConfig{
			Positions: [][3]float32{
				{0, 0, 0}, {30, 30, -50}, {-1, -1, 0}, {1, 1, 0}, {1, -1, 0}, {-1, 1, 0},
			},
			Colors: [][3]float32{
				{0.9, 0.3, 0.3}, {0.3, 0.9, 0.3}, {0.3, 0.3, 0.9},
				{0.9, 0.9, 0.3}, {0.9, 0.3, 0.9}, {0.3, 0.9, 0.9},
			},
			Size:     1,
			SpinRate: 20,
		},
		Letters: LettersConfig{
			Text:           "UDAY",
			Depth:          0.6,
			Advance:        1,
			RevealInterval: 2,
			StartZ:         -50,
			SlideSpeed:     3,
			FrontColor:     [3]float32{1, 1, 1},
			BackColor:      [3]float32{0.2, 0.2, 0.6},
			Background:     [3]float32{0.9, 0.4, 0.4},
		},
		Flag: FlagConfig{
			Density: 100,
			Spacing: "full",
			Width:   1.5,
			Height:  1,
			Stripes: [][3]float32{
				{1, 0.6, 0.2}, {1, 1, 1}, {0.07, 0.53, 0.03},
			},
			Emblem:       [3]float32{0, 0, 0.5},
			TextureSize:  256,
			OrbitRadius:  10,
			StartHeight:  -50,
			EndHeight:    1,
			RiseRate:     0.3,
			AngularSpeed: 0.05,
		},
	}
}

// Format is a config file encoding
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatOf picks the encoding from the file extension; anything that is
// not .toml is read as YAML
func FormatOf(filePath string) Format {
	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		return TOML
	}
	return YAML
}

func unmarshal(f Format, data []byte, v interface{}) error {
	if f == TOML {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func marshal(f Format, v interface{}) ([]byte, error) {
	if f == TOML {
		return toml.Marshal(v)
	}
	return yaml.Marshal(v)
}

// LoadConfig loads the configuration from a YAML or TOML file. A missing
// file returns the defaults together with an error wrapping os.ErrNotExist.
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := unmarshal(FormatOf(filePath), data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return config, nil
}

// IsNotExist reports whether err came from a missing config file
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// SaveConfig saves the configuration in the format matching the extension
func SaveConfig(config *Config, filePath string) error {
	data, err := marshal(FormatOf(filePath), config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	// Write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks ranges that would otherwise break the demos at runtime
func (c *Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("framerate must not be negative, got %d", c.Window.FrameRate)
	}

	cam := c.Camera
	if cam.MovementSpeed <= 0 || cam.MouseSensitivity <= 0 {
		return fmt.Errorf("camera speed and sensitivity must be positive")
	}
	if cam.MinZoom <= 0 || cam.MinZoom > cam.MaxZoom || cam.MaxZoom >= 180 {
		return fmt.Errorf("camera zoom bounds [%v, %v] out of range", cam.MinZoom, cam.MaxZoom)
	}
	if cam.MaxPitch <= 0 || cam.MaxPitch >= 90 {
		return fmt.Errorf("camera max pitch must be in (0, 90), got %v", cam.MaxPitch)
	}

	if len(c.Cubes.Colors) == 0 {
		return fmt.Errorf("cubes need at least one color")
	}
	if c.Cubes.Size <= 0 {
		return fmt.Errorf("cube size must be positive, got %v", c.Cubes.Size)
	}

	for _, r := range c.Letters.Text {
		if !mesh.HasGlyph(r) {
			return fmt.Errorf("letters text: %w: %q", mesh.ErrUnknownGlyph, r)
		}
	}
	if c.Letters.Depth <= 0 {
		return fmt.Errorf("letter depth must be positive, got %v", c.Letters.Depth)
	}
	if c.Letters.SlideSpeed <= 0 || c.Letters.RevealInterval < 0 {
		return fmt.Errorf("letter slide speed must be positive and reveal interval not negative")
	}

	if c.Flag.Density < 2 {
		return fmt.Errorf("flag density must be at least 2, got %d", c.Flag.Density)
	}
	if _, ok := mesh.ParseStripSpacing(c.Flag.Spacing); !ok {
		return fmt.Errorf("unknown flag spacing %q", c.Flag.Spacing)
	}
	if c.Flag.Width <= 0 || c.Flag.Height <= 0 {
		return fmt.Errorf("flag size must be positive")
	}
	if len(c.Flag.Stripes) == 0 || c.Flag.TextureSize < len(c.Flag.Stripes) {
		return fmt.Errorf("flag needs at least one stripe and a texture that fits them")
	}

	return nil
}

// Settings converts the camera section into camera.Settings
func (c CameraConfig) Settings() camera.Settings {
	return camera.Settings{
		MovementSpeed:    c.MovementSpeed,
		MouseSensitivity: c.MouseSensitivity,
		Zoom:             c.Zoom,
		MinZoom:          c.MinZoom,
		MaxZoom:          c.MaxZoom,
		MaxPitch:         c.MaxPitch,
		InvertY:          c.InvertY,
	}
}

// Orbit converts the flag camera fields into a camera path
func (f FlagConfig) Orbit() camera.RisingOrbit {
	return camera.RisingOrbit{
		Radius:       f.OrbitRadius,
		StartHeight:  f.StartHeight,
		EndHeight:    f.EndHeight,
		RiseRate:     f.RiseRate,
		AngularSpeed: f.AngularSpeed,
	}
}

// Strip converts the flag fields into a mesh description. The flag hangs
// from the origin to +X with its top edge at Height/2.
func (f FlagConfig) Strip() mesh.FlagStrip {
	spacing, _ := mesh.ParseStripSpacing(f.Spacing)
	half := f.Height / 2
	s := mesh.FlagStrip{Density: f.Density, Spacing: spacing}
	s.UpperLeft = [3]float32{0, half, 0}
	s.UpperRight = [3]float32{f.Width, half, 0}
	s.BottomLeft = [3]float32{0, -half, 0}
	return s
}
