// SPDX-License-Identifier: EPL-2.0

package wavconv

import "errors"

// ErrUnknownFormat is returned for a format key with no registered decoder.
var ErrUnknownFormat = errors.New("unknown audio format")
