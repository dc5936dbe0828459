// SPDX-License-Identifier: MPL-2.0

package libgvox

import "strings"

// unavailableMessage is queued for every load and save when the native
// library is not linked in.
const unavailableMessage = "gvox-cli was built without the native gvox library; rebuild with CGO_ENABLED=1 and -tags gvox"

// trimNUL drops a trailing NUL terminator that the native size query counts.
func trimNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}
