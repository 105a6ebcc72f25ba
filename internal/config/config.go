// Package config loads the server settings from defaults, an optional YAML
// file, COLOR_MCP_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is looked up without extension in the search paths.
	DefaultConfigFileName = "color-mcp"
	// EnvPrefix prefixes every environment override, e.g. COLOR_MCP_LOGGING_LEVEL.
	EnvPrefix = "COLOR_MCP"

	maxSwatchSize = 1024
)

// Config is the complete server configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Swatch  SwatchConfig  `mapstructure:"swatch"`
	Palette PaletteConfig `mapstructure:"palette"`
}

// LoggingConfig selects the log level and destination. An empty File logs
// to stderr.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SwatchConfig holds the swatch size used when a request leaves it out.
type SwatchConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// PaletteConfig holds the palette size used when a request leaves it out.
type PaletteConfig struct {
	Count int `mapstructure:"count"`
}

// Load reads the configuration into v. A nil v gets a fresh instance.
//
// If cfgFile is empty, color-mcp.yaml is searched for in the current
// directory and then in $HOME/.config/color-mcp, and not finding it is not
// an error. An explicit cfgFile must exist and parse.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "color-mcp"))
		}
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	v.SetDefault("swatch.width", 64)
	v.SetDefault("swatch.height", 64)

	v.SetDefault("palette.count", 5)
}

// Validate rejects sizes the imaging layer cannot honor.
func (c *Config) Validate() error {
	if c.Swatch.Width < 1 || c.Swatch.Width > maxSwatchSize {
		return fmt.Errorf("swatch.width must be in range [1-%d], got %d", maxSwatchSize, c.Swatch.Width)
	}
	if c.Swatch.Height < 1 || c.Swatch.Height > maxSwatchSize {
		return fmt.Errorf("swatch.height must be in range [1-%d], got %d", maxSwatchSize, c.Swatch.Height)
	}
	if c.Palette.Count < 1 {
		return fmt.Errorf("palette.count must be positive, got %d", c.Palette.Count)
	}
	return nil
}
