// SPDX-License-Identifier: EPL-2.0

// Package composer interprets note and control tokens into a signal.
//
// Tokens not starting with '*' are tones: they are upper-cased, rendered by
// the ToneGenerator and appended to the active track. Control tokens are a
// '*', a command byte and an argument:
//
//	*t<N>     use N tracks and make track N active
//	*l<path>  replace the composition with the decoded file
//	*e<ms>    replace the composition with a copy delayed by ms and attenuated
//	*~<N>     cut or pad track N to the shortest track's duration
//	*=<N>     cut or pad track N to the longest track's duration
//	*.        mix the tracks onto the end of the composition
//
// Track numbers are 1-based. A typical two voice phrase:
//
//	C4 *t2 E4 *.
//
// plays C4 on track 1 and E4 on track 2 at the same time.
package composer
