// SPDX-License-Identifier: EPL-2.0

package notes

import (
	"fmt"
	"math"

	"github.com/ik5/audcompose/config"
	"github.com/ik5/audcompose/signal"
)

// Rest is the token for a note-length silence.
const Rest = "R"

const (
	referenceFrequency = 440.0
	referenceMIDI      = 69 // A4
)

// semitones within an octave, counted from C
var semitones = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// Frequency returns the equal temperament pitch of a note name such as
// "A", "C#5" or "G3". The octave defaults to defaultOctave when absent.
func Frequency(name string, defaultOctave int) (float64, error) {
	if len(name) == 0 || len(name) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}

	semitone, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}

	rest := name[1:]
	if len(rest) > 0 && rest[0] == '#' {
		semitone++
		rest = rest[1:]
	}

	octave := defaultOctave
	switch {
	case len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9':
		octave = int(rest[0] - '0')
	case len(rest) != 0:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}

	midi := (octave+1)*12 + semitone
	return referenceFrequency * math.Pow(2, float64(midi-referenceMIDI)/12), nil
}

// Maker renders note tokens into tones using the note settings of a config.
type Maker struct {
	cfg config.Config
}

func NewMaker(cfg config.Config) *Maker {
	return &Maker{cfg: cfg}
}

// Tone renders the note named by token. Token matching is case sensitive;
// the composer upper-cases tokens before calling.
func (m *Maker) Tone(token string) (*signal.Signal, error) {
	note := m.cfg.Note

	if token == Rest {
		return signal.Silence(note.DurationMs, m.cfg.SampleRate, m.cfg.BitsPerSample), nil
	}

	freq, err := Frequency(token, note.DefaultOctave)
	if err != nil {
		return nil, err
	}

	return signal.Synthesize(signal.Tone{
		Frequency:     freq,
		DurationMs:    note.DurationMs,
		Amplitude:     note.Amplitude,
		SampleRate:    m.cfg.SampleRate,
		BitsPerSample: m.cfg.BitsPerSample,
		Decay:         note.Decay,
	}), nil
}
