// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV builds a canonical 44-byte-header PCM WAV file in memory. samples are
// interleaved and written at bitsPerSample; 8-bit values are written as
// given, so pass them already offset to unsigned.
func WAV(sampleRate, channels, bitsPerSample int, samples []int) []byte {
	return WAVFormat(1, sampleRate, channels, bitsPerSample, samples)
}

// WAVFormat is WAV with an explicit fmt chunk audio format tag
// (1 = PCM, 3 = IEEE float).
func WAVFormat(audioFormat uint16, sampleRate, channels, bitsPerSample int, samples []int) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := bitsPerSample / 8
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			buf.WriteByte(byte(s))
		case 16:
			binary.Write(buf, binary.LittleEndian, int16(s))
		case 24:
			buf.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		case 32:
			binary.Write(buf, binary.LittleEndian, int32(s))
		}
	}

	return buf.Bytes()
}

// Ramp returns n samples counting up from 1.
func Ramp(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(i + 1)
	}
	return out
}

// Sine returns n samples of a sine wave at frequency Hz and the given peak.
func Sine(sampleRate, n int, frequency float64, peak int) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(float64(peak) * math.Sin(2*math.Pi*frequency*t))
	}
	return out
}

// Ints widens samples for use with WAV.
func Ints(samples []int16) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(v)
	}
	return out
}
