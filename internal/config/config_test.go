package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-noise/dsp/noise"
)

func validConfig() Config {
	return Config{
		Noise:  NoiseConfig{Type: "pink", Duration: 1, SampleRate: 8000},
		Output: OutputConfig{FFT: true},
	}
}

func TestDefaults(t *testing.T) {
	v := NewViper()
	v.Set("noise.type", "white")
	v.Set("output.fft", true)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Noise.Duration)
	assert.Equal(t, 44100, cfg.Noise.SampleRate)
	assert.Zero(t, cfg.Noise.Frequency)
	assert.False(t, cfg.HasFrequency())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, ColorAuto, cfg.Logger.Color)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no sink", mutate: func(c *Config) { c.Output = OutputConfig{} }, wantErr: ErrNoSink},
		{name: "path only", mutate: func(c *Config) { c.Output = OutputConfig{Path: "x.wav"} }},
		{name: "play only", mutate: func(c *Config) { c.Output = OutputConfig{Play: true} }},
		{name: "missing type", mutate: func(c *Config) { c.Noise.Type = "" }, wantErr: ErrInvalid},
		{name: "unknown type", mutate: func(c *Config) { c.Noise.Type = "violet" }, wantErr: noise.ErrUnknownType},
		{name: "zero duration", mutate: func(c *Config) { c.Noise.Duration = 0 }, wantErr: ErrInvalid},
		{name: "negative duration", mutate: func(c *Config) { c.Noise.Duration = -2 }, wantErr: ErrInvalid},
		{name: "zero sample rate", mutate: func(c *Config) { c.Noise.SampleRate = 0 }, wantErr: ErrInvalid},
		{name: "negative frequency", mutate: func(c *Config) { c.Noise.Frequency = -1 }, wantErr: ErrInvalid},
		{name: "duration too long", mutate: func(c *Config) { c.Noise.Duration = 1e20 }, wantErr: ErrInvalid},
		{name: "duration too long is wrapped", mutate: func(c *Config) { c.Noise.Duration = 1e20 }, wantErr: noise.ErrTooLong},
		{name: "unknown log color", mutate: func(c *Config) { c.Logger.Color = "sometimes" }, wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestNoiseType(t *testing.T) {
	cfg := validConfig()
	cfg.Noise.Type = "Gray"
	typ, err := cfg.NoiseType()
	require.NoError(t, err)
	assert.Equal(t, noise.Gray, typ)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noisegen.yaml")
	content := []byte(`noise:
  type: gray
  duration: 2.5
  sample_rate: 8000
  frequency: 500
  seed: 7
output:
  path: out.wav
logger:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "gray", cfg.Noise.Type)
	assert.Equal(t, 2.5, cfg.Noise.Duration)
	assert.Equal(t, 8000, cfg.Noise.SampleRate)
	assert.Equal(t, 500.0, cfg.Noise.Frequency)
	assert.Equal(t, int64(7), cfg.Noise.Seed)
	assert.Equal(t, "out.wav", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.HasFrequency())
}

func TestReadFileMissingExplicitPath(t *testing.T) {
	v := NewViper()
	err := ReadFile(v, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadFileDefaultLocationOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	v := NewViper()
	assert.NoError(t, ReadFile(v, ""))
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("NOISEGEN_NOISE_TYPE", "brown")
	t.Setenv("NOISEGEN_NOISE_SAMPLE_RATE", "22050")
	t.Setenv("NOISEGEN_OUTPUT_FFT", "true")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "brown", cfg.Noise.Type)
	assert.Equal(t, 22050, cfg.Noise.SampleRate)
	assert.True(t, cfg.Output.FFT)
}
