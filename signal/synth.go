// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Tone describes a sine tone to synthesize.
type Tone struct {
	Frequency     float64 // Hz
	DurationMs    int
	Amplitude     int // peak amplitude
	SampleRate    int
	BitsPerSample int
	// Decay applies an exponential envelope falling toward zero over the
	// length of the tone.
	Decay bool
}

// Synthesize renders t into a new signal of SampleRate*DurationMs/1000
// samples.
//
// Sample values are truncated toward zero and wrap at the int16 boundary;
// amplitudes above 32767 are not clipped. A tone with zero cycles over its
// duration renders as silence.
func Synthesize(t Tone) *Signal {
	numSamples := t.SampleRate * t.DurationMs / 1000
	cycles := t.Frequency * float64(t.DurationMs) / 1000
	period := float64(numSamples) / cycles

	samples := make([]int16, numSamples)
	amplitude := t.Amplitude
	for i := range numSamples {
		if t.Decay {
			// envelope is kept integral
			amplitude = int(float64(t.Amplitude) * math.Exp(-float64(i)/float64(numSamples)/0.5))
		}
		samples[i] = truncate(float64(amplitude) * math.Sin(2*math.Pi*float64(i)/period))
	}

	return &Signal{
		Samples:       samples,
		SampleRate:    t.SampleRate,
		BitsPerSample: t.BitsPerSample,
	}
}

// Silence returns durationMs of zero samples.
func Silence(durationMs, sampleRate, bitsPerSample int) *Signal {
	return &Signal{
		Samples:       make([]int16, sampleRate*durationMs/1000),
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}
}
