package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{Defs: "/defs", Graphics: "/gfx"},
		Output: OutputConfig{
			DataDir: "./data",
			PageDir: "./page",
			DocsDir: "./docs",
		},
		Exclude: ExcludeConfig{
			Backstories: []string{"Special.xml"},
		},
		Atlas: AtlasConfig{
			TileWidth:     128,
			TileHeight:    128,
			GenesFile:     "genes.png",
			BodyPartsFile: "bodyparts.png",
		},
		Conventions: ConventionsConfig{KeepEmptyDegrees: true},
		Watch:       WatchConfig{Debounce: 500 * time.Millisecond},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./data", cfg.Output.DataDir)
	assert.Equal(t, "./page", cfg.Output.PageDir)
	assert.Equal(t, "./docs", cfg.Output.DocsDir)
	assert.Equal(t, []string{"Special.xml", "TynanCustom.xml"}, cfg.Exclude.Backstories)
	assert.Empty(t, cfg.Exclude.Traits)
	assert.Equal(t, 128, cfg.Atlas.TileWidth)
	assert.Equal(t, 128, cfg.Atlas.TileHeight)
	assert.True(t, cfg.Conventions.KeepEmptyDegrees)
	assert.False(t, cfg.Conventions.MergeExclusionTags)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
paths:
  defs: /games/defs
  graphics: /games/textures
output:
  data_dir: out/data
exclude:
  genes:
    - Obsolete.xml
atlas:
  tile_width: 64
  tile_height: 64
conventions:
  keep_empty_degrees: false
watch:
  debounce: 2s
logging:
  level: debug
  format: json
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/games/defs", cfg.Paths.Defs)
	assert.Equal(t, "/games/textures", cfg.Paths.Graphics)
	assert.Equal(t, "out/data", cfg.Output.DataDir)
	assert.Equal(t, "./page", cfg.Output.PageDir)
	assert.Equal(t, []string{"Obsolete.xml"}, cfg.Exclude.Genes)
	assert.Equal(t, 64, cfg.Atlas.TileWidth)
	assert.False(t, cfg.Conventions.KeepEmptyDegrees)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PAWN_OUTPUT_PAGE_DIR", "/srv/page")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/page", cfg.Output.PageDir)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateOutputDirsEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Output = OutputConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.data_dir")
	assert.Contains(t, err.Error(), "output.page_dir")
	assert.Contains(t, err.Error(), "output.docs_dir")
}

func TestValidateAtlasFileExtension(t *testing.T) {
	cfg := validConfig()
	cfg.Atlas.GenesFile = "genes.jpg"
	assert.Error(t, cfg.Validate())
	cfg.Atlas.GenesFile = "GENES.PNG"
	assert.NoError(t, cfg.Validate())
}

func TestValidateNegativeDebounce(t *testing.T) {
	cfg := validConfig()
	cfg.Watch.Debounce = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateTileSizeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(-64, 512).Draw(rt, "width")
		h := rapid.IntRange(-64, 512).Draw(rt, "height")
		cfg := validConfig()
		cfg.Atlas.TileWidth = w
		cfg.Atlas.TileHeight = h
		err := cfg.Validate()
		if w >= 1 && h >= 1 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
