// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrUnsupportedBitDepth = errors.New("unsupported output bit depth")
)
