package refresh

import "github.com/snowmerak/refresh.go/lib/exports"

// IsReactRefreshBoundary reports whether m is a valid isolated-refresh
// boundary, meaning the bundler may accept an update to it without a full
// reload.
//
// A bare component-like exports value is a boundary on its own. Otherwise the
// exports must be a record in which every enumerable key except the
// module-system marker holds a component-like value, and there must be at
// least one such key. A single non-component export disqualifies the whole
// module: mixed modules are never safe boundaries.
func (a *Adapter) IsReactRefreshBoundary(m *Module) bool {
	exportsValue := ModuleExports(m)
	if a.runtime.IsLikelyComponent(exportsValue) {
		return true
	}

	rec, ok := exportsValue.(*exports.Record)
	if !ok || rec == nil {
		return false
	}

	// Scan every key so getter access matches what the signature builder
	// enumerates; the verdict comes from the flags, not from exit order.
	hasExports := false
	allComponents := true
	for _, key := range rec.Keys() {
		if key == exports.ESModuleMarker {
			continue
		}
		hasExports = true
		if !a.runtime.IsLikelyComponent(rec.Get(key)) {
			allComponents = false
		}
	}
	return hasExports && allComponents
}
