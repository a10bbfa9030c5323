// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing shared by the format decoders
// and the codec.
//
// # Decoders
//
// Every container format implements Decoder, which reads a whole input into
// a go-audio IntBuffer:
//
//	type Decoder interface {
//	    Decode(r io.Reader) (*goaudio.IntBuffer, error)
//	}
//
// The buffer's Format holds sample rate and channel count, SourceBitDepth
// the resolution of the signed values in Data.
//
// # Format Registry
//
// The registry maps format keys to decoders and resolves file paths by
// extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("intro.WAV")
//
// # Channel Mixing
//
// Downmix averages interleaved channels into one and rescales any bit depth
// to 16-bit:
//
//	mono, err := audio.Downmix(buf)
package audio
