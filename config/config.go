// Package config loads settings from flags, SYSFETCH_* environment variables
// and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jeffrom/sysfetch/facts"
	"github.com/jeffrom/sysfetch/render"
)

const envPrefix = "SYSFETCH"

type Config struct {
	Root         string `mapstructure:"root" json:"root"`
	Color        string `mapstructure:"color" json:"color"`
	MemoryUnit   string `mapstructure:"memory_unit" json:"memory_unit"`
	Lenient      bool   `mapstructure:"lenient" json:"lenient"`
	LineTemplate string `mapstructure:"line_template" json:"line_template"`
	Verbose      bool   `mapstructure:"verbose" json:"verbose"`
	Quiet        bool   `mapstructure:"quiet" json:"quiet"`

	// ConfigFile is the file settings were read from, if any.
	ConfigFile string `mapstructure:"-" json:"-"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"config":        "config",
	"root":          "root",
	"color":         "color",
	"memory-unit":   "memory_unit",
	"lenient":       "lenient",
	"line-template": "line_template",
	"verbose":       "verbose",
	"quiet":         "quiet",
}

// AddFlags registers the flags Load reads.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/sysfetch/config.yaml)")
	flags.String("root", "/", "read /proc, /sys and /etc relative to this directory")
	flags.String("color", string(render.ColorAuto), "colorize output: auto, always, or never")
	flags.String("memory-unit", string(facts.MemoryLegacy), "memory display: legacy (truncated, labeled MB) or mib")
	flags.Bool("lenient", false, "show placeholders instead of failing when a fact can't be read")
	flags.String("line-template", "", "text/template for each info line")
	flags.BoolP("verbose", "v", false, "print debug output to stderr")
	flags.BoolP("quiet", "q", false, "suppress warnings")
}

func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}

	if err := readConfigFile(v, v.GetString("config")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %s: %w", path, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, "sysfetch"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch render.ColorMode(c.Color) {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return fmt.Errorf("config: invalid color %q (want auto, always, or never)", c.Color)
	}
	if _, err := facts.ParseMemoryUnit(c.MemoryUnit); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) ColorMode() render.ColorMode { return render.ColorMode(c.Color) }

func (c *Config) Unit() facts.MemoryUnit {
	u, _ := facts.ParseMemoryUnit(c.MemoryUnit)
	return u
}

func (c *Config) Policy() facts.Policy {
	if c.Lenient {
		return facts.LenientPolicy()
	}
	return facts.DefaultPolicy()
}
