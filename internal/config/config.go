// Package config provides Viper-based configuration loading for the definition extractor.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// PathsConfig holds the input directories.
type PathsConfig struct {
	// Defs is the root directory of XML definition files.
	Defs string `mapstructure:"defs"`
	// Graphics is the root directory of PNG icon assets. Empty disables atlas packing.
	Graphics string `mapstructure:"graphics"`
}

// OutputConfig holds the directories emitted files are written to.
type OutputConfig struct {
	// DataDir receives the build-time .ts modules.
	DataDir string `mapstructure:"data_dir"`
	// PageDir receives the .js script files and atlas images.
	PageDir string `mapstructure:"page_dir"`
	// DocsDir receives the bodyparts script file.
	DocsDir string `mapstructure:"docs_dir"`
}

// ExcludeConfig lists file base names skipped by each extractor.
type ExcludeConfig struct {
	Backstories []string `mapstructure:"backstories"`
	Traits      []string `mapstructure:"traits"`
	Genes       []string `mapstructure:"genes"`
	BodyParts   []string `mapstructure:"bodyparts"`
}

// AtlasConfig holds icon sheet settings.
type AtlasConfig struct {
	TileWidth     int    `mapstructure:"tile_width"`
	TileHeight    int    `mapstructure:"tile_height"`
	GenesFile     string `mapstructure:"genes_file"`
	BodyPartsFile string `mapstructure:"bodyparts_file"`
}

// ConventionsConfig selects between output conventions that earlier revisions
// of the data files disagreed on.
type ConventionsConfig struct {
	// KeepEmptyDegrees emits "degrees":{} for traits without degree data
	// instead of omitting the key.
	KeepEmptyDegrees bool `mapstructure:"keep_empty_degrees"`
	// MergeExclusionTags folds trait exclusionTags into conflictingTraits and
	// conflictingPassions into forcedFlames, matching the legacy data files.
	MergeExclusionTags bool `mapstructure:"merge_exclusion_tags"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before a rerun.
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Paths       PathsConfig       `mapstructure:"paths"`
	Output      OutputConfig      `mapstructure:"output"`
	Exclude     ExcludeConfig     `mapstructure:"exclude"`
	Atlas       AtlasConfig       `mapstructure:"atlas"`
	Conventions ConventionsConfig `mapstructure:"conventions"`
	Watch       WatchConfig       `mapstructure:"watch"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAtlas(c.Atlas); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, "watch.debounce must not be negative")
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	var errs []string
	if o.DataDir == "" {
		errs = append(errs, "output.data_dir must not be empty")
	}
	if o.PageDir == "" {
		errs = append(errs, "output.page_dir must not be empty")
	}
	if o.DocsDir == "" {
		errs = append(errs, "output.docs_dir must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateAtlas(a AtlasConfig) error {
	var errs []string
	if a.TileWidth < 1 {
		errs = append(errs, fmt.Sprintf("atlas.tile_width must be >= 1, got %d", a.TileWidth))
	}
	if a.TileHeight < 1 {
		errs = append(errs, fmt.Sprintf("atlas.tile_height must be >= 1, got %d", a.TileHeight))
	}
	for key, name := range map[string]string{"atlas.genes_file": a.GenesFile, "atlas.bodyparts_file": a.BodyPartsFile} {
		if !strings.HasSuffix(strings.ToLower(name), ".png") {
			errs = append(errs, fmt.Sprintf("%s must name a .png file, got %q", key, name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment only.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PAWN_ prefix
	v.SetEnvPrefix("PAWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or environment overrides apply.
//
// Postcondition: the returned Config passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults are invalid: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.defs", "")
	v.SetDefault("paths.graphics", "")

	v.SetDefault("output.data_dir", "./data")
	v.SetDefault("output.page_dir", "./page")
	v.SetDefault("output.docs_dir", "./docs")

	v.SetDefault("exclude.backstories", []string{"Special.xml", "TynanCustom.xml"})
	v.SetDefault("exclude.traits", []string{})
	v.SetDefault("exclude.genes", []string{})
	v.SetDefault("exclude.bodyparts", []string{})

	v.SetDefault("atlas.tile_width", 128)
	v.SetDefault("atlas.tile_height", 128)
	v.SetDefault("atlas.genes_file", "genes.png")
	v.SetDefault("atlas.bodyparts_file", "bodyparts.png")

	v.SetDefault("conventions.keep_empty_degrees", true)
	v.SetDefault("conventions.merge_exclusion_tags", false)

	v.SetDefault("watch.debounce", "500ms")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
