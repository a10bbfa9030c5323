// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func intBuffer(channels, bitDepth int, data ...int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

func TestDownmix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		want []int16
	}{
		{"mono passthrough", intBuffer(1, 16, 1, -2, 3), []int16{1, -2, 3}},
		{"stereo average", intBuffer(2, 16, 100, 300, -100, -300, 7, 8), []int16{200, -200, 7}},
		{"quad average", intBuffer(4, 16, 4, 8, 12, 16), []int16{10}},
		{"stereo extremes", intBuffer(2, 16, 32767, 32767, -32768, -32768), []int16{32767, -32768}},
		{"8 bit mono", intBuffer(1, 8, 127, -128), []int16{127 << 8, -32768}},
		{"24 bit stereo", intBuffer(2, 24, 256, 768), []int16{2}},
		{"unset depth is 16", intBuffer(1, 0, 42), []int16{42}},
		{"empty", intBuffer(2, 16), []int16{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Downmix(tt.buf)
			if err != nil {
				t.Fatalf("Downmix() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Downmix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDownmix_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		want error
	}{
		{"no format", &goaudio.IntBuffer{Data: []int{1}}, ErrMissingFormat},
		{"no channels", intBuffer(0, 16, 1), ErrNoChannels},
		{"partial frame", intBuffer(2, 16, 1, 2, 3), ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Downmix(tt.buf); !errors.Is(err, tt.want) {
				t.Errorf("Downmix() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkDownmix_Stereo(b *testing.B) {
	data := make([]int, 44100*2)
	for i := range data {
		data[i] = i % 2000
	}
	buf := intBuffer(2, 16, data...)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Downmix(buf)
	}
}
