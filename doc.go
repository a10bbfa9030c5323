// SPDX-License-Identifier: EPL-2.0

// Package audcompose renders textual note scores into audio files.
//
// A score is a whitespace separated list of tokens. Note names such as
// "C4" or "F#" play a tone on the active track, control tokens starting with
// '*' manage tracks, load audio files and add echo. See package composer for
// the token language.
//
// # Quick Start
//
//	cfg := config.Default()
//	enc := codec.New()
//	c := composer.New(cfg, notes.NewMaker(cfg), enc)
//
//	score := strings.NewReader("C4 E4 G4 *t2 C3 G3 *=2 *.")
//	if err := audcompose.RenderFile(score, c, enc, "out.wav"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packages
//
//   - signal: the mono sample buffer and its operations
//   - notes: note names to synthesized tones
//   - composer: the token interpreter
//   - codec: WAV, AIFF, MP3 and Ogg Vorbis input, WAV output
//   - config: YAML settings
//
// Rendering stops at the first bad token and RenderFile then writes nothing.
package audcompose
