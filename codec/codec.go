// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audcompose/audio"
	"github.com/ik5/audcompose/formats/aiff"
	"github.com/ik5/audcompose/formats/mp3"
	"github.com/ik5/audcompose/formats/vorbis"
	"github.com/ik5/audcompose/formats/wav"
	"github.com/ik5/audcompose/signal"
)

// minBitDepth is the lowest depth a signal carries through the codec.
// Samples are int16, so shallower sources are scaled up to it on decode and
// shallower output could not hold them.
const minBitDepth = 16

// outputMode is the permission of written files, as with os.Create.
const outputMode = 0o644

// Codec reads audio files into signals and writes signals as WAV files.
type Codec struct {
	registry   *audio.Registry
	sampleRate int
	logger     *slog.Logger
}

type Option func(*Codec)

// WithResample converts decoded audio to rate. Without it signals keep the
// rate of the file they came from.
func WithResample(rate int) Option {
	return func(c *Codec) {
		c.sampleRate = rate
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithRegistry replaces the default format registry.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Codec) {
		c.registry = r
	}
}

func New(opts ...Option) *Codec {
	c := &Codec{
		registry: DefaultRegistry(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultRegistry returns a registry holding every supported input format.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// Decode reads the file at path into a mono 16-bit signal. The container
// format is chosen by file extension.
func (c *Codec) Decode(path string) (*signal.Signal, error) {
	dec, ok := c.registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	samples, err := audio.Downmix(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	sig := signal.FromSamples(buf.Format.SampleRate, max(buf.SourceBitDepth, minBitDepth), samples)

	c.logger.Debug("decoded audio",
		"path", path,
		"channels", buf.Format.NumChannels,
		"source_bits", buf.SourceBitDepth,
		"sample_rate", sig.SampleRate,
		"samples", sig.Len(),
	)

	if c.sampleRate > 0 && sig.SampleRate != c.sampleRate {
		from := sig.SampleRate
		sig = sig.Resample(c.sampleRate)
		c.logger.Debug("resampled audio", "path", path, "from", from, "to", c.sampleRate, "samples", sig.Len())
	}

	return sig, nil
}

// Encode writes sig to path as a mono PCM WAV file at the signal's sample
// rate and bit depth, which must be 16, 24 or 32. The file is written next
// to path under a temporary name and renamed into place, so a failed encode
// leaves nothing behind.
func (c *Codec) Encode(path string, sig *signal.Signal) (err error) {
	switch sig.BitsPerSample {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, sig.BitsPerSample)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".audcompose-*.wav")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = writeWAV(f, sig); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	// CreateTemp makes the file owner-only
	if err = f.Chmod(outputMode); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	c.logger.Debug("encoded audio",
		"path", path,
		"sample_rate", sig.SampleRate,
		"bits", sig.BitsPerSample,
		"samples", sig.Len(),
	)

	return nil
}

func writeWAV(w io.WriteSeeker, sig *signal.Signal) error {
	return wav.Encode(w, sig.SampleRate, sig.BitsPerSample, sig.Samples)
}
