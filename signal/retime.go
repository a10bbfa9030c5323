// SPDX-License-Identifier: EPL-2.0

package signal

import "slices"

// RetimeDelta returns how many samples Retime(targetMs) would add (positive)
// or remove (negative).
func (s *Signal) RetimeDelta(targetMs int) int {
	current := s.Duration()
	switch {
	case current < targetMs:
		return (targetMs - current) * s.SampleRate / 1000
	case current > targetMs:
		return -((current - targetMs) * s.SampleRate / 1000)
	default:
		return 0
	}
}

// Retime moves the duration of s toward targetMs in place.
//
// Growing duplicates the first delta samples and puts the copy in front of
// the signal. Shrinking drops delta samples from the tail. This is not time
// stretching: pitch and content are left as they are.
//
// Growing by more samples than s holds, which RetimeDelta lets callers
// detect, panics.
func (s *Signal) Retime(targetMs int) *Signal {
	delta := s.RetimeDelta(targetMs)
	switch {
	case delta > 0:
		s.Samples = slices.Insert(s.Samples, 0, slices.Clone(s.Samples[:delta])...)
	case delta < 0:
		s.Samples = s.Samples[:len(s.Samples)+delta]
	}
	return s
}
