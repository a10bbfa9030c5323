// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audcompose/utils"
)

// Vorbis decodes to float; samples are quantized to this depth
const bitDepth = 16

var ErrNoChannels = errors.New("vorbis stream has no channels")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode decodes a complete Ogg Vorbis stream into a 16-bit interleaved
// buffer.
func (Decoder) Decode(r io.Reader) (*goaudio.IntBuffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readAll(dec)
}

func readAll(dec oggReader) (*goaudio.IntBuffer, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	// whole frames only, so a read never splits a frame
	chunk := make([]float32, 4096/channels*channels)

	var data []int
	for {
		n, err := dec.Read(chunk)
		for _, v := range chunk[:n] {
			data = append(data, utils.FloatToPCM(v, bitDepth))
		}

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis samples: %w", err)
		}
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
