// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audcompose/utils"
)

// Resample returns a copy of s converted to rate using cubic interpolation.
// Interpolation overshoot is saturated at the int16 limits. Resampling to
// the current rate, or resampling an empty signal, returns a plain copy.
func (s *Signal) Resample(rate int) *Signal {
	if rate == s.SampleRate || len(s.Samples) == 0 {
		out := s.Clone()
		out.SampleRate = rate
		return out
	}

	ratio := float64(s.SampleRate) / float64(rate)
	n := int(int64(len(s.Samples)) * int64(rate) / int64(s.SampleRate))
	out := make([]int16, n)

	last := len(s.Samples) - 1
	at := func(i int) float64 {
		return float64(s.Samples[max(0, min(i, last))])
	}

	for j := range n {
		pos := float64(j) * ratio
		i := int(math.Floor(pos))
		x := pos - float64(i)
		out[j] = utils.ClampInt16(utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x))
	}

	return &Signal{
		Samples:       out,
		SampleRate:    rate,
		BitsPerSample: s.BitsPerSample,
	}
}
