// SPDX-License-Identifier: EPL-2.0

// Package codec converts between audio files and signals.
//
// Decoding accepts WAV, AIFF, MP3 and Ogg Vorbis, chosen by file extension.
// Whatever the source layout, the result is a mono signal of int16 samples
// at the file's sample rate, or at a fixed rate when WithResample is set.
// Deeper sources keep their bit depth as metadata while samples hold the top
// 16 bits; 8-bit sources are scaled up and reported as 16-bit.
//
// Encoding always produces a mono integer PCM WAV file of 16, 24 or 32 bits:
//
//	c := codec.New()
//	if err := c.Encode("song.wav", sig); err != nil {
//	    return err
//	}
package codec
