// Package config defines the noisegen configuration model and loads it with
// viper from defaults, an optional YAML file, NOISEGEN_* environment
// variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
)

// EnvPrefix is the prefix for environment overrides, e.g. NOISEGEN_NOISE_TYPE.
const EnvPrefix = "NOISEGEN"

var (
	// ErrNoSink is returned when neither a file, playback nor analysis is requested.
	ErrNoSink = errors.New("either --output, --play, or --fft must be specified")
	// ErrInvalid wraps all other validation failures.
	ErrInvalid = errors.New("invalid configuration")
)

// Config holds the complete application configuration.
type Config struct {
	Noise  NoiseConfig  `mapstructure:"noise" yaml:"noise"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// NoiseConfig selects what to generate.
type NoiseConfig struct {
	Type       string  `mapstructure:"type" yaml:"type"`
	Duration   float64 `mapstructure:"duration" yaml:"duration"`
	SampleRate int     `mapstructure:"sample_rate" yaml:"sample_rate"`
	// Frequency is the gray-noise envelope frequency in Hz; 0 means unset.
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"`
	// Seed makes the output reproducible; 0 draws a fresh seed.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// OutputConfig selects the consumers of the generated buffer.
type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
	Play bool   `mapstructure:"play" yaml:"play"`
	FFT  bool   `mapstructure:"fft" yaml:"fft"`
}

// Console color modes for LoggerConfig.Color. An empty mode means auto.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// Color colors console levels: auto (only on a terminal), always or never.
	Color string `mapstructure:"color" yaml:"color"`
	// File enables an additional JSON log file with rotation.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("noise.type", "")
	v.SetDefault("noise.duration", 5.0)
	v.SetDefault("noise.sample_rate", core.DefaultSampleRate)
	v.SetDefault("noise.frequency", 0.0)
	v.SetDefault("noise.seed", 0)

	v.SetDefault("output.path", "")
	v.SetDefault("output.play", false)
	v.SetDefault("output.fft", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.color", ColorAuto)
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.compress", false)
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path into v. With an empty path it looks for
// ./noisegen.yaml and silently continues when none exists.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("noisegen")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the generator cannot use.
func (c *Config) Validate() error {
	if c.Output.Path == "" && !c.Output.Play && !c.Output.FFT {
		return ErrNoSink
	}
	if _, err := c.NoiseType(); err != nil {
		return err
	}
	if !(c.Noise.Duration > 0) || math.IsInf(c.Noise.Duration, 0) {
		return fmt.Errorf("%w: duration must be > 0: %v", ErrInvalid, c.Noise.Duration)
	}
	if c.Noise.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalid, c.Noise.SampleRate)
	}
	if _, err := noise.SampleCount(c.Noise.SampleRate, c.Noise.Duration); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Noise.Frequency < 0 || math.IsNaN(c.Noise.Frequency) {
		return fmt.Errorf("%w: frequency must be >= 0: %v", ErrInvalid, c.Noise.Frequency)
	}
	switch c.Logger.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: log color must be auto, always or never: %q", ErrInvalid, c.Logger.Color)
	}
	return nil
}

// NoiseType parses the configured noise type.
func (c *Config) NoiseType() (noise.Type, error) {
	if strings.TrimSpace(c.Noise.Type) == "" {
		return 0, fmt.Errorf("%w: noise type is required", ErrInvalid)
	}
	t, err := noise.ParseType(c.Noise.Type)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return t, nil
}

// HasFrequency reports whether a gray-noise frequency was configured.
func (c *Config) HasFrequency() bool {
	return c.Noise.Frequency > 0
}
