//go:build !chessdebug

package board

// assertInvariants is a no-op in release builds. See debug_on.go for the
// chessdebug build, which is the only build where the
// InvariantViolation conditions are actually checked.
func (p *Position) assertInvariants() {}
