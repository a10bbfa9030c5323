// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const formatPCM = 1

// pcmReader is the subset of wav.Decoder used here, to allow testing
type pcmReader interface {
	IsValidFile() bool
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode reads a complete integer PCM WAV file. 8-bit samples, which WAV
// stores unsigned, are re-centered around zero so every depth comes back
// signed.
func (Decoder) Decode(r io.Reader) (*goaudio.IntBuffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	return decode(dec, int(dec.BitDepth), int(dec.NumChans), int(dec.SampleRate))
}

func decode(dec pcmReader, bitDepth, channels, sampleRate int) (*goaudio.IntBuffer, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 {
		return nil, ErrNoChannels
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	if bitDepth == 8 {
		for i, v := range buf.Data {
			buf.Data[i] = v - 128
		}
	}

	buf.SourceBitDepth = bitDepth
	buf.Format = &goaudio.Format{
		NumChannels: channels,
		SampleRate:  sampleRate,
	}

	return buf, nil
}
