// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to floating point; the decoder quantizes every value to
// 16-bit PCM and returns the whole stream as a go-audio IntBuffer:
//
//	f, _ := os.Open("voice.ogg")
//	buf, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
package vorbis
