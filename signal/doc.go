// SPDX-License-Identifier: EPL-2.0

// Package signal implements the in-memory audio buffer used by the composer
// and the algebra defined on it.
//
// A Signal is a mono sequence of int16 samples plus sample rate and bit depth
// metadata. Operations fall into two groups and callers rely on the split:
//
// In place (mutate and return the receiver):
//   - Append: concatenation
//   - Scale: amplitude multiplication, truncated toward zero
//   - Retime: duration matching by prefix duplication or tail truncation
//
// New value (the receiver is left untouched):
//   - Mix: sample-wise addition, zero-padding the shorter operand
//   - Delay: silence inserted at the front
//   - TrimFront: leading samples removed
//   - Clone, Resample
//
// # Preconditions
//
// None of the operations validate their inputs. A zero SampleRate makes
// Duration divide by zero, trimming or growing by more samples than exist
// panics with an index error, and concatenating signals of different rates
// silently produces nonsense timing. Callers that accept untrusted input
// check first; see RetimeDelta.
//
// # Sample arithmetic
//
// All conversions from floating point truncate toward zero and then wrap at
// the int16 boundary, the same way sums do:
//
//	s := signal.FromSamples(8000, 16, []int16{7, -7, 32767})
//	s.Scale(0.5) // {3, -3, 16383}
//
// # Synthesis
//
//	tone := signal.Synthesize(signal.Tone{
//	    Frequency:     440,
//	    DurationMs:    250,
//	    Amplitude:     1000,
//	    SampleRate:    8000,
//	    BitsPerSample: 16,
//	})
//	// tone.Len() == 2000
package signal
