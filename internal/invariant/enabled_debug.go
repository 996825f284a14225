//go:build arenadebug

package invariant

// Enabled reports whether invariant checks run.
const Enabled = true
