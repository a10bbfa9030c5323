// SPDX-License-Identifier: EPL-2.0

package composer

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ik5/audcompose/config"
	"github.com/ik5/audcompose/signal"
)

// ControlMarker starts every control token.
const ControlMarker = '*'

// Control command codes, the byte following ControlMarker.
const (
	cmdTracks   = 't'
	cmdLoad     = 'l'
	cmdEcho     = 'e'
	cmdShortest = '~'
	cmdLongest  = '='
	cmdFlush    = '.'
)

// ToneGenerator renders a tone token into a signal.
type ToneGenerator interface {
	Tone(token string) (*signal.Signal, error)
}

// Loader reads an audio file into a signal.
type Loader interface {
	Decode(path string) (*signal.Signal, error)
}

// Composer interprets a stream of tokens into a composition.
//
// Tone material accumulates on parallel tracks. A flush mixes the tracks
// down, appends the result to the overall composition and starts over with
// a single empty track.
//
// A Composer is not safe for concurrent use.
type Composer struct {
	cfg    config.Config
	tones  ToneGenerator
	loader Loader
	logger *slog.Logger

	overall *signal.Signal
	tracks  []*signal.Signal
	active  int
}

type Option func(*Composer)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

func New(cfg config.Config, tones ToneGenerator, loader Loader, opts ...Option) *Composer {
	c := &Composer{
		cfg:    cfg,
		tones:  tones,
		loader: loader,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.overall = c.empty()
	c.resetTracks()

	return c
}

// Process handles one token. A failed token leaves the composer as it was.
func (c *Composer) Process(token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	if token[0] != ControlMarker {
		return c.tone(strings.ToUpper(token))
	}

	if len(token) < 2 {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}

	arg := token[2:]
	switch token[1] {
	case cmdTracks:
		return c.setTracks(token, arg)
	case cmdLoad:
		return c.load(token, arg)
	case cmdEcho:
		return c.echo(token, arg)
	case cmdShortest:
		return c.retime(token, arg, slices.Min[[]int])
	case cmdLongest:
		return c.retime(token, arg, slices.Max[[]int])
	case cmdFlush:
		if arg != "" {
			return fmt.Errorf("%w: %q", ErrMalformedArgument, token)
		}
		c.Flush()
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, token)
}

// Flush mixes all tracks together, appends the mix to the overall
// composition and resets to one empty active track.
func (c *Composer) Flush() {
	mixed := c.empty()
	for _, t := range c.tracks {
		mixed = signal.Mix(mixed, t)
	}
	c.overall.Append(mixed)

	c.logger.Debug("flushed tracks",
		"tracks", len(c.tracks),
		"mixed_ms", mixed.Duration(),
		"overall_ms", c.overall.Duration(),
	)

	c.resetTracks()
}

// Finalize flushes pending tracks and returns the composition.
func (c *Composer) Finalize() *signal.Signal {
	c.Flush()
	return c.overall
}

// Tracks returns the current tracks. The slice is owned by the composer.
func (c *Composer) Tracks() []*signal.Signal { return c.tracks }

// Active returns the index of the track receiving tone material.
func (c *Composer) Active() int { return c.active }

// Overall returns the composition finalized so far, without pending tracks.
func (c *Composer) Overall() *signal.Signal { return c.overall }

func (c *Composer) tone(token string) error {
	sig, err := c.tones.Tone(token)
	if err != nil {
		return fmt.Errorf("tone %q: %w", token, err)
	}

	c.tracks[c.active].Append(sig)
	c.logger.Debug("tone", "token", token, "track", c.active+1, "ms", sig.Duration())

	return nil
}

// setTracks resizes the track list to n, keeping existing tracks, and makes
// the last one active.
func (c *Composer) setTracks(token, arg string) error {
	n, err := parseInt(token, arg)
	if err != nil {
		return err
	}
	if n < 1 || n > c.cfg.MaxTracks {
		return fmt.Errorf("%w: %q allows 1 to %d", ErrTrackOutOfRange, token, c.cfg.MaxTracks)
	}

	if n < len(c.tracks) {
		c.tracks = c.tracks[:n]
	}
	for len(c.tracks) < n {
		c.tracks = append(c.tracks, c.empty())
	}
	c.active = n - 1

	c.logger.Debug("tracks", "count", n, "active", n)

	return nil
}

// load replaces the overall composition with the decoded file.
func (c *Composer) load(token, path string) error {
	if path == "" {
		return fmt.Errorf("%w: %q needs a path", ErrMalformedArgument, token)
	}

	sig, err := c.loader.Decode(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.overall = sig

	c.logger.Debug("loaded", "path", path, "ms", sig.Duration(), "sample_rate", sig.SampleRate)

	return nil
}

// echo replaces the overall composition with a delayed, attenuated copy.
func (c *Composer) echo(token, arg string) error {
	ms, err := parseInt(token, arg)
	if err != nil {
		return err
	}
	if ms < 0 {
		return fmt.Errorf("%w: %q delay must not be negative", ErrMalformedArgument, token)
	}

	c.overall = c.overall.Delay(ms).Scale(c.cfg.EchoAttenuation)

	c.logger.Debug("echo", "delay_ms", ms, "attenuation", c.cfg.EchoAttenuation)

	return nil
}

// retime matches the duration of one track to pick(durations of all tracks).
func (c *Composer) retime(token, arg string, pick func([]int) int) error {
	n, err := parseInt(token, arg)
	if err != nil {
		return err
	}
	if n < 1 || n > len(c.tracks) {
		return fmt.Errorf("%w: %q with %d tracks", ErrTrackOutOfRange, token, len(c.tracks))
	}

	durations := make([]int, len(c.tracks))
	for i, t := range c.tracks {
		durations[i] = t.Duration()
	}
	target := pick(durations)

	track := c.tracks[n-1]
	if delta := track.RetimeDelta(target); delta > track.Len() {
		return fmt.Errorf("%w: track %d has %d samples, needs %d more", ErrRetimeRange, n, track.Len(), delta)
	}

	from := track.Duration()
	track.Retime(target)

	c.logger.Debug("retime", "track", n, "from_ms", from, "to_ms", target)

	return nil
}

func (c *Composer) resetTracks() {
	c.tracks = []*signal.Signal{c.empty()}
	c.active = 0
}

func (c *Composer) empty() *signal.Signal {
	return signal.New(c.cfg.SampleRate, c.cfg.BitsPerSample)
}

func parseInt(token, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedArgument, token)
	}
	return n, nil
}
