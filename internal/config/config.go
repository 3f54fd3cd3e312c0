// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from a YAML file and SONIPIX_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/sonipix"
	"github.com/ik5/sonipix/formats/wav"
	"github.com/ik5/sonipix/signal"
)

var ErrInvalid = errors.New("invalid configuration")

// Plot targets.
const (
	PlotBraille = "braille"
	PlotPNG     = "png"
	PlotNone    = "none"
)

// Config holds everything the CLI and session need.
type Config struct {
	SampleRate int     `yaml:"sample_rate"`
	Peak       float64 `yaml:"peak"`
	FadeMS     float64 `yaml:"fade_ms"`

	Direction string  `yaml:"direction"`
	Waveform  string  `yaml:"waveform"`
	Frequency float64 `yaml:"frequency"`

	ImageDir     string `yaml:"image_dir"`
	ExportDir    string `yaml:"export_dir"`
	ExportFormat string `yaml:"export_format"`

	Playback bool   `yaml:"playback"`
	Plot     string `yaml:"plot"`
	PlotDir  string `yaml:"plot_dir"`

	LogLevel          string `yaml:"log_level"`
	MaxPromptAttempts int    `yaml:"max_prompt_attempts"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SampleRate:        sonipix.DefaultSampleRate,
		Peak:              signal.DefaultPeak,
		FadeMS:            signal.DefaultFadeSeconds * 1000,
		Direction:         signal.Bidirectional.String(),
		Waveform:          "sine",
		Frequency:         440,
		ImageDir:          "Greyscale Images",
		ExportDir:         "WAV Exports",
		ExportFormat:      wav.Float32.String(),
		Playback:          true,
		Plot:              PlotBraille,
		PlotDir:           "Plots",
		LogLevel:          "info",
		MaxPromptAttempts: 5,
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.SampleRate = envInt("SONIPIX_SAMPLE_RATE", c.SampleRate)
	c.Peak = envFloat("SONIPIX_PEAK", c.Peak)
	c.FadeMS = envFloat("SONIPIX_FADE_MS", c.FadeMS)
	c.Direction = envStr("SONIPIX_DIRECTION", c.Direction)
	c.Waveform = envStr("SONIPIX_WAVEFORM", c.Waveform)
	c.Frequency = envFloat("SONIPIX_FREQUENCY", c.Frequency)
	c.ImageDir = envStr("SONIPIX_IMAGE_DIR", c.ImageDir)
	c.ExportDir = envStr("SONIPIX_EXPORT_DIR", c.ExportDir)
	c.ExportFormat = envStr("SONIPIX_EXPORT_FORMAT", c.ExportFormat)
	c.Playback = envBool("SONIPIX_PLAYBACK", c.Playback)
	c.Plot = envStr("SONIPIX_PLOT", c.Plot)
	c.PlotDir = envStr("SONIPIX_PLOT_DIR", c.PlotDir)
	c.LogLevel = envStr("SONIPIX_LOG_LEVEL", c.LogLevel)
	c.MaxPromptAttempts = envInt("SONIPIX_MAX_PROMPT_ATTEMPTS", c.MaxPromptAttempts)
}

// Validate reports every out-of-range or unparsable field at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.SampleRate <= 0 {
		bad("sample_rate", "%d must be positive", c.SampleRate)
	}
	if c.Peak <= 0 || c.Peak > 1 {
		bad("peak", "%v must be in (0, 1]", c.Peak)
	}
	if c.FadeMS < 0 {
		bad("fade_ms", "%v must not be negative", c.FadeMS)
	}
	if _, err := signal.ParseScanDirection(c.Direction); err != nil {
		bad("direction", "%v", err)
	}
	if _, err := signal.ParseWaveform(c.Waveform); err != nil {
		bad("waveform", "%v", err)
	}
	if math.IsNaN(c.Frequency) || c.Frequency < signal.MinFrequency || c.Frequency > signal.MaxFrequency {
		bad("frequency", "%v outside [%v, %v] Hz", c.Frequency, signal.MinFrequency, signal.MaxFrequency)
	}
	if _, err := wav.ParseEncoding(c.ExportFormat); err != nil {
		bad("export_format", "%v", err)
	}
	switch c.Plot {
	case PlotBraille, PlotPNG, PlotNone:
	default:
		bad("plot", "%q is not one of braille, png, none", c.Plot)
	}
	if c.ExportDir == "" {
		bad("export_dir", "must not be empty")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		bad("log_level", "%q", c.LogLevel)
	}
	if c.MaxPromptAttempts < 1 {
		bad("max_prompt_attempts", "%d must be at least 1", c.MaxPromptAttempts)
	}

	return errors.Join(errs...)
}

// Options converts the numeric settings into pipeline options. Call it
// only on a validated Config.
func (c *Config) Options() sonipix.Options {
	dir, _ := signal.ParseScanDirection(c.Direction)

	return sonipix.Options{
		SampleRate: c.SampleRate,
		Peak:       c.Peak,
		FadeLength: signal.FadeLengthFor(c.SampleRate, c.FadeMS/1000),
		Direction:  dir,
	}
}

// Oscillator returns the configured waveform and frequency as a spec with
// no length yet.
func (c *Config) Oscillator() signal.OscillatorSpec {
	w, _ := signal.ParseWaveform(c.Waveform)

	return signal.OscillatorSpec{
		Waveform:   w,
		Frequency:  c.Frequency,
		SampleRate: c.SampleRate,
	}
}

// Encoding is the parsed export_format.
func (c *Config) Encoding() wav.Encoding {
	enc, _ := wav.ParseEncoding(c.ExportFormat)
	return enc
}

// Level is the parsed log_level, info when unparsable.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
