package refresh

// ShouldInvalidateReactRefreshBoundary reports whether moving from prev to
// next must force a full reload instead of an isolated swap. The decision
// compares the two modules' export signatures element for element: a changed
// shape or a changed component identity at any export position means the
// identities registered for prev no longer describe next, so incremental
// patching cannot be guaranteed safe.
func (a *Adapter) ShouldInvalidateReactRefreshBoundary(prev, next *Module) bool {
	prevSig := a.BoundarySignature(ModuleExports(prev))
	nextSig := a.BoundarySignature(ModuleExports(next))
	return !prevSig.Equal(nextSig)
}
