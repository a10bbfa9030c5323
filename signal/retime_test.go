// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"slices"
	"testing"
)

func TestRetime_Grow(t *testing.T) {
	t.Parallel()

	// 1000 Hz: one sample per millisecond
	s := FromSamples(1000, 16, []int16{1, 2, 3, 4, 5})
	s.Retime(8)

	want := []int16{1, 2, 3, 1, 2, 3, 4, 5}
	if !slices.Equal(s.Samples, want) {
		t.Errorf("Retime(8) = %v, want %v", s.Samples, want)
	}
}

func TestRetime_Shrink(t *testing.T) {
	t.Parallel()

	s := FromSamples(1000, 16, []int16{1, 2, 3, 4, 5})
	s.Retime(2)

	want := []int16{1, 2}
	if !slices.Equal(s.Samples, want) {
		t.Errorf("Retime(2) = %v, want %v", s.Samples, want)
	}
}

func TestRetime_Equal(t *testing.T) {
	t.Parallel()

	s := ramp(8000, 2004) // 250 ms with a 4 sample remainder
	s.Retime(250)

	if s.Len() != 2004 {
		t.Errorf("Retime(250) changed length to %d", s.Len())
	}
}

func TestRetime_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rate, n, dst int
	}{
		{"grow", 8000, 800, 150},
		{"shrink", 8000, 8000, 300},
		{"noop", 16000, 1600, 100},
		{"grow odd length", 8000, 803, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			once := ramp(tt.rate, tt.n).Retime(tt.dst)
			twice := once.Clone().Retime(tt.dst)

			if !twice.Equal(once) {
				t.Errorf("Retime twice = %v, once = %v", twice, once)
			}
			if once.Duration() != tt.dst {
				t.Errorf("Duration() after Retime = %d, want %d", once.Duration(), tt.dst)
			}
		})
	}
}

func TestRetimeDelta(t *testing.T) {
	t.Parallel()

	s := ramp(8000, 800) // 100 ms

	for _, tt := range []struct{ target, want int }{
		{100, 0},
		{150, 400},
		{40, -480},
		{0, -800},
	} {
		if got := s.RetimeDelta(tt.target); got != tt.want {
			t.Errorf("RetimeDelta(%d) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestRetime_GrowPastLengthPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Retime() growing an empty signal did not panic")
		}
	}()

	New(8000, 16).Retime(10)
}
