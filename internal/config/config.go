// Package config loads themegen configuration from files, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/solutivemind/themegen/internal/logging"
	"github.com/solutivemind/themegen/internal/palette"
	"github.com/solutivemind/themegen/internal/tokens"
)

// EnvPrefix prefixes every environment override, e.g. THEMEGEN_PALETTE.
const EnvPrefix = "THEMEGEN"

// ProjectConfigName is the config file looked up in the project directory.
const ProjectConfigName = "themegen.yaml"

// Config is the full themegen configuration.
type Config struct {
	// Palette selects the palette used when none is given on the command line.
	// Blank means the registry default.
	Palette     string          `mapstructure:"palette"`
	PaletteDirs []string        `mapstructure:"palette_dirs"`
	Generator   GeneratorConfig `mapstructure:"generator"`
	Output      OutputConfig    `mapstructure:"output"`
	Logging     LoggingConfig   `mapstructure:"logging"`
}

// GeneratorConfig holds the values the generator owns independently of any
// palette.
type GeneratorConfig struct {
	Radius string      `mapstructure:"radius"`
	Chart  ChartConfig `mapstructure:"chart"`
}

// ChartConfig holds the chart-4 and chart-5 colors per mode.
type ChartConfig struct {
	Light ChartPair `mapstructure:"light"`
	Dark  ChartPair `mapstructure:"dark"`
}

// ChartPair is one mode's chart extras.
type ChartPair struct {
	Chart4 string `mapstructure:"chart4"`
	Chart5 string `mapstructure:"chart5"`
}

// OutputConfig describes where the generated CSS is meant to be pasted.
type OutputConfig struct {
	StylesheetPath string `mapstructure:"stylesheet_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	opts := tokens.DefaultOptions()
	return &Config{
		Generator: GeneratorConfig{
			Radius: opts.Radius,
			Chart: ChartConfig{
				Light: ChartPair{Chart4: string(opts.Chart.Light.Chart4), Chart5: string(opts.Chart.Light.Chart5)},
				Dark:  ChartPair{Chart4: string(opts.Chart.Dark.Chart4), Chart5: string(opts.Chart.Dark.Chart5)},
			},
		},
		Output: OutputConfig{
			StylesheetPath: "src/app/globals.css",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// userConfigDirFunc is replaced in tests.
var userConfigDirFunc = func() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "themegen")
}

// Load reads configuration for projectDir. When explicitFile is set it is the
// only file read and must exist; otherwise the user config and then the
// project config are merged over the defaults. A .env file in projectDir is
// loaded into the environment before THEMEGEN_* overrides are applied.
func Load(projectDir, explicitFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if err := loadDotEnv(projectDir); err != nil {
		return nil, err
	}

	v.SetConfigType("yaml")
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicitFile, err)
		}
	} else {
		for _, path := range configFiles(projectDir) {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configFiles(projectDir string) []string {
	files := make([]string, 0, 2)
	if dir := userConfigDirFunc(); dir != "" {
		files = append(files, filepath.Join(dir, "config.yaml"))
	}
	if projectDir != "" {
		files = append(files, filepath.Join(projectDir, ProjectConfigName))
	}
	return files
}

func loadDotEnv(projectDir string) error {
	if projectDir == "" {
		return nil
	}
	path := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("palette", cfg.Palette)
	v.SetDefault("palette_dirs", cfg.PaletteDirs)
	v.SetDefault("generator.radius", cfg.Generator.Radius)
	v.SetDefault("generator.chart.light.chart4", cfg.Generator.Chart.Light.Chart4)
	v.SetDefault("generator.chart.light.chart5", cfg.Generator.Chart.Light.Chart5)
	v.SetDefault("generator.chart.dark.chart4", cfg.Generator.Chart.Dark.Chart4)
	v.SetDefault("generator.chart.dark.chart5", cfg.Generator.Chart.Dark.Chart5)
	v.SetDefault("output.stylesheet_path", cfg.Output.StylesheetPath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

func (c *Config) normalize() {
	c.Palette = strings.TrimSpace(c.Palette)
	var dirs []string
	for _, dir := range c.PaletteDirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	c.PaletteDirs = dirs
	c.Generator.Radius = strings.TrimSpace(c.Generator.Radius)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate checks values that would otherwise fail later with less context.
func (c *Config) Validate() error {
	var errs []error
	if c.Generator.Radius == "" {
		errs = append(errs, errors.New("generator.radius is required"))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// TokenOptions converts the generator section into tokens.Options.
func (c *Config) TokenOptions() tokens.Options {
	return tokens.Options{
		Radius: c.Generator.Radius,
		Chart: tokens.ChartDefaults{
			Light: tokens.ChartExtras{
				Chart4: palette.ColorValue(c.Generator.Chart.Light.Chart4),
				Chart5: palette.ColorValue(c.Generator.Chart.Light.Chart5),
			},
			Dark: tokens.ChartExtras{
				Chart4: palette.ColorValue(c.Generator.Chart.Dark.Chart4),
				Chart5: palette.ColorValue(c.Generator.Chart.Dark.Chart5),
			},
		},
	}
}

// LoggingOptions converts the logging section into logging.Config.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{Level: c.Logging.Level, Format: c.Logging.Format}
}
