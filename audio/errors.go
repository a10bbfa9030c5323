// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels    = errors.New("buffer has no channels")
	ErrPartialFrame  = errors.New("data size must be multiple of channels")
	ErrMissingFormat = errors.New("buffer has no format")
)
