// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for RIFF parsing and writing.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Any channel count when decoding; encoding writes mono
//   - Any sample rate
//
// # Decoding WAV Files
//
// Decoder reads the whole file into a go-audio IntBuffer:
//
//	f, _ := os.Open("input.wav")
//	buf, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	// buf.Format.SampleRate, buf.Format.NumChannels, buf.SourceBitDepth
//
// Values in buf.Data are signed at the file's bit depth; 8-bit files are
// re-centered from WAV's unsigned encoding.
//
// # Writing WAV Files
//
// Encode needs an io.WriteSeeker because the header sizes are patched once
// all samples are written:
//
//	f, _ := os.Create("output.wav")
//	err := wav.Encode(f, 8000, 16, []int16{100, -100, 200, -200})
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: The fmt chunk declares a non-PCM encoding
//   - ErrUnsupportedBitDepth: Bit depth outside 8, 16, 24, 32
//   - ErrNoChannels: The fmt chunk declares zero channels
//
// Example:
//
//	_, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
