// SPDX-License-Identifier: EPL-2.0

package composer

import "errors"

var (
	ErrEmptyToken        = errors.New("empty token")
	ErrUnknownCommand    = errors.New("unknown control command")
	ErrMalformedArgument = errors.New("malformed command argument")
	ErrTrackOutOfRange   = errors.New("track number out of range")
	// ErrRetimeRange is returned when a track would have to grow by more
	// samples than it holds.
	ErrRetimeRange = errors.New("track too short to retime")
)
