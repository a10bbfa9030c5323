// SPDX-License-Identifier: EPL-2.0

// Package notes turns note names into synthesized tones.
//
// A note is a letter A to G, an optional sharp and an optional octave digit:
// "A", "C#", "E5", "F#2". Pitches follow twelve tone equal temperament with
// A4 at 440 Hz. The token "R" is a rest of the same length as a note.
package notes
