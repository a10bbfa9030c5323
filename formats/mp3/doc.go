// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding using github.com/hajimehoshi/go-mp3.
//
// The decoder reads the whole stream into a go-audio IntBuffer. go-mp3 always
// outputs 16-bit stereo, so mono sources come back with both channels equal:
//
//	f, _ := os.Open("song.mp3")
//	buf, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	// buf.Format.NumChannels == 2, buf.SourceBitDepth == 16
package mp3
