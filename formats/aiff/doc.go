// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into a
// go-audio IntBuffer holding the whole file:
//
//	f, _ := os.Open("audio.aif")
//	buf, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// AIFF stores signed big-endian samples, so buf.Data is already centered
// around zero at buf.SourceBitDepth bits. Inputs that are not an
// io.ReadSeeker are buffered in memory first.
package aiff
