// SPDX-License-Identifier: MPL-2.0

// Package convert runs one conversion: it loads the resolved input through
// the gvox library, saves it to the resolved output and reports any error
// the library queued along the way.
package convert
