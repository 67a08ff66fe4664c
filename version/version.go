// SPDX-License-Identifier: MIT

// Package version reports the release of this module.
// The values are opaque metadata; nothing in the module depends on them.
package version

import "fmt"

// Release components.
const (
	major = 1
	minor = 1
	patch = 1
)

// Major returns the major release number.
func Major() int { return major }

// Minor returns the minor release number.
func Minor() int { return minor }

// Patch returns the patch release number.
func Patch() int { return patch }

// String returns "major.minor.patch".
func String() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
