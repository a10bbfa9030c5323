// SPDX-License-Identifier: EPL-2.0

package notes

import "errors"

var ErrUnknownNote = errors.New("unknown note")
