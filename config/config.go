// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Note holds the parameters of synthesized note tones.
type Note struct {
	DurationMs    int  `yaml:"duration_ms"`
	Amplitude     int  `yaml:"amplitude"`
	Decay         bool `yaml:"decay"`
	DefaultOctave int  `yaml:"default_octave"`
}

// Config holds the composition settings.
type Config struct {
	SampleRate    int  `yaml:"sample_rate"`
	BitsPerSample int  `yaml:"bits_per_sample"`
	Note          Note `yaml:"note"`
	// EchoAttenuation scales the delayed copy produced by an echo command.
	EchoAttenuation float64 `yaml:"echo_attenuation"`
	MaxTracks       int     `yaml:"max_tracks"`
	// ResampleLoads converts loaded audio to SampleRate instead of keeping
	// the file's own rate.
	ResampleLoads bool `yaml:"resample_loads"`
}

func Default() Config {
	return Config{
		SampleRate:    8000,
		BitsPerSample: 16,
		Note: Note{
			DurationMs:    250,
			Amplitude:     8000,
			Decay:         true,
			DefaultOctave: 4,
		},
		EchoAttenuation: 0.25,
		MaxTracks:       64,
	}
}

// Parse overlays the YAML document in r on the defaults and validates the
// result. Keys absent from the document keep their default values.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	case !validBitDepth(c.BitsPerSample):
		return fmt.Errorf("%w: bits_per_sample must be 16, 24 or 32, got %d", ErrInvalidConfig, c.BitsPerSample)
	case c.Note.DurationMs <= 0:
		return fmt.Errorf("%w: note.duration_ms must be positive, got %d", ErrInvalidConfig, c.Note.DurationMs)
	case c.Note.Amplitude < 0:
		return fmt.Errorf("%w: note.amplitude must not be negative, got %d", ErrInvalidConfig, c.Note.Amplitude)
	case c.Note.DefaultOctave < 0 || c.Note.DefaultOctave > 9:
		return fmt.Errorf("%w: note.default_octave must be 0-9, got %d", ErrInvalidConfig, c.Note.DefaultOctave)
	case c.MaxTracks < 1:
		return fmt.Errorf("%w: max_tracks must be at least 1, got %d", ErrInvalidConfig, c.MaxTracks)
	}
	return nil
}

func validBitDepth(bits int) bool {
	switch bits {
	case 16, 24, 32:
		return true
	}
	return false
}
