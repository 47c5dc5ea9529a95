package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gldemos/pkg/mesh"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	s := cfg.Camera.Settings()
	assert.Equal(t, float32(45), s.Zoom)
	assert.Equal(t, float32(89), s.MaxPitch)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.yaml")
	data := `
demo: flag
log_level: debug
window:
  width: 800
  height: 600
flag:
  density: 12
  spacing: density
letters:
  text: "HELLO"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.Demo)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 12, cfg.Flag.Density)
	assert.Equal(t, "HELLO", cfg.Letters.Text)

	// Untouched sections keep their defaults
	assert.Equal(t, DefaultConfig().Camera, cfg.Camera)
	assert.Equal(t, float32(1.5), cfg.Flag.Width)

	strip := cfg.Flag.Strip()
	assert.Equal(t, mesh.SpanDensity, strip.Spacing)
	assert.Len(t, mesh.BuildFlagStrip(strip), 6*11)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"density":  "flag:\n  density: 1\n",
		"pitch":    "camera:\n  max_pitch: 90\n",
		"zoom":     "camera:\n  min_zoom: 50\n",
		"glyph":    "letters:\n  text: \"U?\"\n",
		"window":   "window:\n  width: 0\n",
		"loglevel": "log_level: loud\n",
		"spacing":  "flag:\n  spacing: diagonal\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
			assert.False(t, IsNotExist(err))
		})
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "error parsing config")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Demo = "letters"
	cfg.Camera.InvertY = true

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFlagOrbit(t *testing.T) {
	o := DefaultConfig().Flag.Orbit()
	assert.Equal(t, float32(10), o.Radius)
	assert.InDelta(t, 170, o.RiseDuration(), 1e-3)
}

func TestTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.toml")
	cfg := DefaultConfig()
	cfg.Demo = "flag"
	cfg.Flag.Density = 40

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadTOMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.TOML")
	data := `
demo = "letters"

[letters]
text = "HI"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "letters", cfg.Demo)
	assert.Equal(t, "HI", cfg.Letters.Text)
	assert.Equal(t, float32(0.6), cfg.Letters.Depth)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, TOML, FormatOf("a/b.toml"))
	assert.Equal(t, YAML, FormatOf("a/b.yaml"))
	assert.Equal(t, YAML, FormatOf("config"))
}
