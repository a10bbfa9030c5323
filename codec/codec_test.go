// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audcompose/audio"
	"github.com/ik5/audcompose/formats/wav"
	"github.com/ik5/audcompose/internal/audiotest"
	"github.com/ik5/audcompose/signal"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  *signal.Signal
	}{
		{"ramp", signal.FromSamples(8000, 16, audiotest.Ramp(800))},
		{"sine", signal.FromSamples(44100, 16, audiotest.Sine(44100, 4410, 440, 32000))},
		{"extremes", signal.FromSamples(16000, 16, []int16{-32768, -1, 0, 1, 32767})},
		{"24 bit", signal.FromSamples(48000, 24, []int16{-32768, -300, -1, 0, 1, 300, 32767})},
		{"32 bit", signal.FromSamples(8000, 32, []int16{-32768, -300, -1, 0, 1, 300, 32767})},
		{"24 bit sine", signal.FromSamples(22050, 24, audiotest.Sine(22050, 2205, 440, 30000))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New()
			path := filepath.Join(t.TempDir(), "out.wav")

			if err := c.Encode(path, tt.sig); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, err := c.Decode(path)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !got.Equal(tt.sig) {
				t.Errorf("round trip = %v, want %v", got, tt.sig)
			}
		})
	}
}

func TestCodec_EncodeLeavesNothingOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	err := New().Encode(path, signal.FromSamples(8000, 12, []int16{1, 2, 3}))
	if err == nil {
		t.Fatal("Encode() with 12-bit depth succeeded")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Encode() left files behind: %v", entries)
	}
}

func TestCodec_EncodeUnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 12, 0} {
		dir := t.TempDir()
		sig := signal.FromSamples(8000, bits, []int16{-32768, -300, 0, 300, 32767})

		err := New().Encode(filepath.Join(dir, "out.wav"), sig)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Errorf("Encode() at %d bits error = %v, want ErrUnsupportedBitDepth", bits, err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("Encode() at %d bits left files behind: %v", bits, entries)
		}
	}
}

func TestCodec_EncodeMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.wav")
	if err := New().Encode(path, signal.New(8000, 16)); err == nil {
		t.Error("Encode() into a missing directory succeeded")
	}
}

func TestCodec_EncodeReplaces(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "out.wav", []byte("stale"))
	sig := signal.FromSamples(8000, 16, []int16{5, 6, 7})

	c := New()
	if err := c.Encode(path, sig); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0o644 {
		t.Errorf("output mode = %v, want -rw-r--r--", mode)
	}

	got, err := c.Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.Equal(sig) {
		t.Errorf("Decode() = %v, want %v", got, sig)
	}
}

func TestCodec_DecodeStereo(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "stereo.wav", audiotest.WAV(22050, 2, 16, []int{100, 300, -50, -150, 7, 8}))

	got, err := New().Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if want := []int16{200, -100, 7}; !slices.Equal(got.Samples, want) {
		t.Errorf("Decode() samples = %v, want %v", got.Samples, want)
	}
	if got.SampleRate != 22050 || got.BitsPerSample != 16 {
		t.Errorf("Decode() metadata = %d/%d, want 22050/16", got.SampleRate, got.BitsPerSample)
	}
}

func TestCodec_DecodeRescales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bits     int
		samples  []int
		want     []int16
		wantBits int
	}{
		// 8-bit WAV is unsigned
		{"8 bit", 8, []int{0, 128, 255}, []int16{-32768, 0, 32512}, 16},
		{"24 bit", 24, []int{-8388608, 256, 8388607}, []int16{-32768, 1, 32767}, 24},
		{"32 bit", 32, []int{-2147483648, 65536, 2147483647}, []int16{-32768, 1, 32767}, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "in.wav", audiotest.WAV(8000, 1, tt.bits, tt.samples))

			got, err := New().Decode(path)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !slices.Equal(got.Samples, tt.want) {
				t.Errorf("Decode() samples = %v, want %v", got.Samples, tt.want)
			}
			if got.BitsPerSample != tt.wantBits {
				t.Errorf("Decode() bits = %d, want %d", got.BitsPerSample, tt.wantBits)
			}
		})
	}
}

func TestCodec_DecodeResample(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "in.wav", audiotest.WAV(16000, 1, 16, audiotest.Ints(audiotest.Ramp(1600))))

	got, err := New(WithResample(8000)).Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.SampleRate != 8000 || got.Len() != 800 {
		t.Errorf("Decode() = %v, want 800 samples at 8000 Hz", got)
	}
}

func TestCodec_DecodeSameRateSkipsResample(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(50)
	path := writeFile(t, "in.wav", audiotest.WAV(8000, 1, 16, audiotest.Ints(samples)))

	got, err := New(WithResample(8000)).Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !slices.Equal(got.Samples, samples) {
		t.Errorf("Decode() = %v, want %v", got.Samples, samples)
	}
}

func TestCodec_DecodeErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"no extension", filepath.Join(dir, "noext"), ErrUnsupportedFormat},
		{"unknown extension", filepath.Join(dir, "song.flac"), ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.wav"), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New().Decode(tt.path); !errors.Is(err, tt.want) {
				t.Errorf("Decode(%s) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestCodec_DecodeCorrupt(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.wav", []byte("definitely not a riff file"))

	if _, err := New().Decode(path); err == nil {
		t.Error("Decode() of garbage succeeded")
	}
}

func TestCodec_UppercaseExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "LOUD.WAV", audiotest.WAV(8000, 1, 16, []int{1, 2}))

	if _, err := New().Decode(path); err != nil {
		t.Errorf("Decode(%s) error = %v", path, err)
	}
}

func TestCodec_WithRegistry(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	c := New(WithRegistry(reg))

	dir := t.TempDir()
	if _, err := c.Decode(filepath.Join(dir, "song.mp3")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(mp3) error = %v, want ErrUnsupportedFormat", err)
	}

	path := writeFile(t, "in.wav", audiotest.WAV(8000, 1, 16, []int{3, 4}))
	got, err := c.Decode(path)
	if err != nil {
		t.Fatalf("Decode(wav) error = %v", err)
	}
	if !slices.Equal(got.Samples, []int16{3, 4}) {
		t.Errorf("Decode(wav) = %v, want [3 4]", got.Samples)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}
