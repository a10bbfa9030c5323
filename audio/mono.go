// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audcompose/utils"
)

// Downmix averages the interleaved channels of buf into one channel and
// rescales the result to 16-bit. Mono buffers are only rescaled.
func Downmix(buf *goaudio.IntBuffer) ([]int16, error) {
	if buf.Format == nil {
		return nil, ErrMissingFormat
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if len(buf.Data)%channels != 0 {
		return nil, ErrPartialFrame
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	frames := len(buf.Data) / channels
	out := make([]int16, frames)

	if channels == 1 {
		for i, v := range buf.Data {
			out[i] = utils.PCMToInt16(v, bitDepth)
		}
		return out, nil
	}

	for f := range frames {
		sum := 0
		base := f * channels
		for c := range channels {
			sum += buf.Data[base+c]
		}
		out[f] = utils.PCMToInt16(sum/channels, bitDepth)
	}

	return out, nil
}
