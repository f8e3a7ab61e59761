// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/stereosig/formats/pcm"
	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config holds the defaults every subcommand starts from. Command line flags
// override it.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`

	// SampleRate is used when nothing else names a rate: generated signals,
	// raw PCM input and durations printed by info.
	SampleRate int `yaml:"sample_rate"`

	Generate GenerateConfig `yaml:"generate"`
	Downmix  DownmixConfig  `yaml:"downmix"`
}

type GenerateConfig struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase"`
	Frames    int     `yaml:"frames"`
}

type DownmixConfig struct {
	// Rate is the target rate for decoded input; 0 keeps the source rate.
	Rate      int    `yaml:"rate"`
	PCMFormat string `yaml:"pcm_format"`
	Channels  int    `yaml:"channels"`
}

// DefaultConfigPath is read when -config is not given. Unlike an explicit
// path, it may be missing.
const DefaultConfigPath = "stereosig.yaml"

func Defaults() Config {
	return Config{
		LogLevel:   LogInfo,
		SampleRate: 44100,
		Generate: GenerateConfig{
			Frequency: 440,
			Amplitude: 0.5,
			Frames:    44100,
		},
		Downmix: DownmixConfig{
			PCMFormat: string(pcm.S16LE),
			Channels:  2,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file is
// only an error when explicit is set.
func LoadConfig(path string, explicit bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			slog.Debug("no config file, using defaults", "path", path)
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := decodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

func decodeConfig(r io.Reader) (Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	return cfg, nil
}

// Validate returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error

	if !c.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", c.LogLevel))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate %d must be positive", c.SampleRate))
	}

	g := c.Generate
	if g.Frequency < 0 || math.IsNaN(g.Frequency) || math.IsInf(g.Frequency, 0) {
		errs = append(errs, fmt.Errorf("generate.frequency %v must be a finite non-negative number", g.Frequency))
	}
	if math.IsNaN(g.Amplitude) || math.IsInf(g.Amplitude, 0) {
		errs = append(errs, fmt.Errorf("generate.amplitude %v must be finite", g.Amplitude))
	}
	if g.Frames <= 0 {
		errs = append(errs, fmt.Errorf("generate.frames %d must be positive", g.Frames))
	}

	d := c.Downmix
	if d.Rate < 0 {
		errs = append(errs, fmt.Errorf("downmix.rate %d must not be negative", d.Rate))
	}
	if _, err := pcm.ParseFormat(d.PCMFormat); err != nil {
		errs = append(errs, fmt.Errorf("downmix.pcm_format: %w", err))
	}
	if d.Channels <= 0 {
		errs = append(errs, fmt.Errorf("downmix.channels %d must be positive", d.Channels))
	}

	return errors.Join(errs...)
}

func newLogger(level LogLevel, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case LogDebug:
		lvl = slog.LevelDebug
	case LogWarn:
		lvl = slog.LevelWarn
	case LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
