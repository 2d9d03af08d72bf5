// SPDX-License-Identifier: EPL-2.0

package media

import "errors"

// ErrBadStatus is returned when an HTTP source answers with a non-2xx status.
var ErrBadStatus = errors.New("unexpected http status")
