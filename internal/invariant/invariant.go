// Package invariant guards internal consistency rules. Checks compile to
// nothing unless the binary is built with -tags arenadebug.
package invariant

import "fmt"

// Check panics with the formatted message when cond is false and debug
// invariants are enabled. A violation is a programming defect.
func Check(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
}
