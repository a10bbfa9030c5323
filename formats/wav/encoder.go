// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Encode writes samples as a mono PCM WAV file at sampleRate and bitDepth.
// Samples are 16-bit values; they are shifted to the target depth, and for
// 8-bit output offset to unsigned as WAV requires.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []int16) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = widen(s, bitDepth)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	// Close patches the RIFF and data chunk sizes
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

func widen(s int16, bitDepth int) int {
	v := int(s)
	switch {
	case bitDepth == 8:
		return v>>8 + 128
	case bitDepth > 16:
		return v << (bitDepth - 16)
	}
	return v
}
