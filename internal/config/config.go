// Package config loads the settings of the arraylist command from the environment and an optional YAML file.
package config

import (
	"os"

	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"
)

const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

const (
	envLogLevel        = "ARRAYLIST_LOG_LEVEL"
	envInitialCapacity = "ARRAYLIST_INITIAL_CAPACITY"
)

type Config struct {
	// LogLevel is the minimum level of the emitted log entries.
	LogLevel logging.Level `env:"ARRAYLIST_LOG_LEVEL" enum:"debug;info;warn;error;fatal;" default:"info" yaml:"log_level"`
	// InitialCapacity is the capacity of the lists made by the command.
	// A negative value means the default lazy allocation.
	InitialCapacity int `env:"ARRAYLIST_INITIAL_CAPACITY" default:"-1" yaml:"initial_capacity"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// LoadFile reads the YAML file at path on top of the defaults.
// Explicitly set environment variables take precedence over the file.
func LoadFile(path string) (Config, error) {
	c, err := Load()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, ErrInvalidConfig.F("%s: %w", path, err)
	}
	if err := c.overlayEnv(); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

func (c *Config) overlayEnv() error {
	level, ok, err := env.Lookup[logging.Level](envLogLevel)
	if err != nil {
		return err
	}
	if ok {
		c.LogLevel = level
	}
	capacity, ok, err := env.Lookup[int](envInitialCapacity)
	if err != nil {
		return err
	}
	if ok {
		c.InitialCapacity = capacity
	}
	return nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
	default:
		return ErrInvalidConfig.F("unknown log level: %q", c.LogLevel)
	}
	return nil
}

// Logger makes a logger that writes to stderr with the configured level.
func (c Config) Logger() *logging.Logger {
	return &logging.Logger{Out: os.Stderr, Level: c.LogLevel}
}

// MakeList makes an empty list with the configured initial capacity.
func MakeList[T any](c Config, opts ...datastruct.Option[T]) (*datastruct.ArrayList[T], error) {
	if c.InitialCapacity < 0 {
		return datastruct.NewArrayList[T](opts...), nil
	}
	return datastruct.MakeArrayList[T](c.InitialCapacity, opts...)
}
