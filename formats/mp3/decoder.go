// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces 16-bit little-endian stereo PCM
const (
	channels = 2
	bitDepth = 16
)

var ErrTruncatedFrame = errors.New("mp3 stream ended mid-frame")

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode decodes a complete MP3 stream into an interleaved stereo buffer.
func (Decoder) Decode(r io.Reader) (*goaudio.IntBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readAll(dec)
}

func readAll(dec mp3Reader) (*goaudio.IntBuffer, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 samples: %w", err)
	}
	if len(raw)%(channels*2) != 0 {
		return nil, ErrTruncatedFrame
	}

	data := make([]int, len(raw)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  dec.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}
