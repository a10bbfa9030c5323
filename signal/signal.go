// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"slices"
)

// Signal is an in-memory mono PCM buffer.
//
// BitsPerSample is informational only; samples are always stored as int16
// and are never checked against it.
type Signal struct {
	Samples       []int16
	SampleRate    int
	BitsPerSample int
}

// New returns an empty signal carrying the given metadata.
func New(sampleRate, bitsPerSample int) *Signal {
	return &Signal{
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}
}

// FromSamples wraps samples without copying them.
func FromSamples(sampleRate, bitsPerSample int, samples []int16) *Signal {
	return &Signal{
		Samples:       samples,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}
}

func (s *Signal) Len() int { return len(s.Samples) }

// Clone returns a deep copy.
func (s *Signal) Clone() *Signal {
	return &Signal{
		Samples:       slices.Clone(s.Samples),
		SampleRate:    s.SampleRate,
		BitsPerSample: s.BitsPerSample,
	}
}

// Equal reports whether both signals carry the same metadata and samples.
// A nil and an empty sample slice compare equal.
func (s *Signal) Equal(other *Signal) bool {
	return s.SampleRate == other.SampleRate &&
		s.BitsPerSample == other.BitsPerSample &&
		slices.Equal(s.Samples, other.Samples)
}

func (s *Signal) String() string {
	return fmt.Sprintf("Signal(rate=%d bits=%d samples=%d)", s.SampleRate, s.BitsPerSample, len(s.Samples))
}

// Duration returns the length in whole milliseconds.
// SampleRate must be positive; a zero rate panics with a division by zero.
func (s *Signal) Duration() int {
	return 1000 * len(s.Samples) / s.SampleRate
}

// samplesFor converts a millisecond span to a sample count at the signal rate.
func (s *Signal) samplesFor(ms int) int {
	return s.SampleRate * ms / 1000
}

// Mix adds a and b sample by sample into a new signal. The shorter operand
// is treated as silence past its end, so the result has the length of the
// longer one. Sums wrap at the int16 boundary.
//
// The result takes its metadata from a, or from b when a holds no samples.
func Mix(a, b *Signal) *Signal {
	meta := a
	if len(a.Samples) == 0 {
		meta = b
	}

	long, short := a.Samples, b.Samples
	if len(short) > len(long) {
		long, short = short, long
	}

	out := make([]int16, len(long))
	copy(out, long)
	for i, v := range short {
		out[i] += v
	}

	return &Signal{
		Samples:       out,
		SampleRate:    meta.SampleRate,
		BitsPerSample: meta.BitsPerSample,
	}
}

// Append concatenates other onto s in place and returns s.
// Both signals are expected to share sample rate and bit depth; s keeps its
// own metadata either way.
func (s *Signal) Append(other *Signal) *Signal {
	s.Samples = append(s.Samples, other.Samples...)
	return s
}

// Scale multiplies every sample by factor in place and returns s.
// Products are truncated toward zero, then wrapped to int16.
func (s *Signal) Scale(factor float64) *Signal {
	for i, v := range s.Samples {
		s.Samples[i] = truncate(float64(v) * factor)
	}
	return s
}

// Delay returns a copy of s with ms of silence inserted in front.
func (s *Signal) Delay(ms int) *Signal {
	n := s.samplesFor(ms)
	out := make([]int16, n+len(s.Samples))
	copy(out[n:], s.Samples)

	return &Signal{
		Samples:       out,
		SampleRate:    s.SampleRate,
		BitsPerSample: s.BitsPerSample,
	}
}

// TrimFront returns a copy of s without its first ms of audio.
// Trimming more than the signal holds panics.
func (s *Signal) TrimFront(ms int) *Signal {
	n := s.samplesFor(ms)

	return &Signal{
		Samples:       slices.Clone(s.Samples[n:]),
		SampleRate:    s.SampleRate,
		BitsPerSample: s.BitsPerSample,
	}
}

// truncate converts v toward zero and wraps it into int16. The detour
// through int64 keeps the wrap well defined for out-of-range values.
func truncate(v float64) int16 {
	return int16(int64(v))
}
