// Package config loads the settings of the triangle program. Values are
// layered: defaults, an optional YAML file, a .env file and finally the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window Window `yaml:"window"`

	// one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// log level of wgpu-native, empty to keep its default
	WGPULogLevel string `yaml:"wgpu_log_level"`

	ForceFallbackAdapter bool `yaml:"force_fallback_adapter"`

	// write a cpu profile to the working directory
	Profile bool `yaml:"profile"`

	// linear rgba
	ClearColor [4]float32 `yaml:"clear_color"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1000,
			Height: 600,
			Title:  "Triangle",
		},
		LogLevel:   "info",
		ClearColor: [4]float32{0.118, 0.118, 0.18, 1.0},
	}
}

// Load builds the configuration. path points to an optional YAML file and
// may be empty. envFile is loaded into the environment if it exists, without
// overriding variables that are already set.
func Load(path, envFile string) (Config, error) {
	conf := Default()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(buf, &conf); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("No env file found", slog.String("path", envFile))
		case err != nil:
			return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	if err := conf.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c *Config) applyEnv() error {
	if err := envInt("TRIANGLE_WIDTH", &c.Window.Width); err != nil {
		return err
	}

	if err := envInt("TRIANGLE_HEIGHT", &c.Window.Height); err != nil {
		return err
	}

	envString("TRIANGLE_TITLE", &c.Window.Title)
	envString("TRIANGLE_LOG_LEVEL", &c.LogLevel)
	envString("WGPU_LOG_LEVEL", &c.WGPULogLevel)

	if err := envBool("TRIANGLE_PROFILE", &c.Profile); err != nil {
		return err
	}

	if err := envBool("WGPU_FORCE_FALLBACK_ADAPTER", &c.ForceFallbackAdapter); err != nil {
		return err
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	for _, value := range c.ClearColor {
		if value < 0 || value > 1 {
			return fmt.Errorf("clear color %v out of range [0, 1]", c.ClearColor)
		}
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return level, nil
}

func envString(name string, target *string) {
	if value, ok := os.LookupEnv(name); ok {
		*target = value
	}
}

func envInt(name string, target *int) error {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	*target = parsed
	return nil
}

func envBool(name string, target *bool) error {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	*target = parsed
	return nil
}
