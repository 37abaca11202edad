// Package refresh provides export registration functionality.
// This file contains the registrar that announces component exports to the
// refresh runtime under stable identities.
package refresh

import "github.com/snowmerak/refresh.go/lib/exports"

// Registration identity suffixes. Identities built from them are stable
// across re-evaluations of the same module, which lets the refresh runtime
// match a new component version to the old one it replaces.
const (
	exportsSuffix    = " %exports%"
	exportsKeySuffix = " %exports% "
)

// RegisterExportsForReactRefresh announces every component-like export of m
// to the refresh runtime. The bare exports value registers under
// "<id> %exports%"; each component-like named export registers under
// "<id> %exports% <key>". Non-component values and the module-system marker
// are skipped. Re-registering the same value under the same identity is
// delegated to the runtime and expected to be safe.
func (a *Adapter) RegisterExportsForReactRefresh(m *Module) {
	if m == nil {
		return
	}

	exportsValue := ModuleExports(m)
	if a.runtime.IsLikelyComponent(exportsValue) {
		a.runtime.Register(exportsValue, m.ID+exportsSuffix)
	}

	rec, ok := exportsValue.(*exports.Record)
	if !ok || rec == nil {
		return
	}

	for _, key := range rec.Keys() {
		if key == exports.ESModuleMarker {
			continue
		}
		if value := rec.Get(key); a.runtime.IsLikelyComponent(value) {
			a.runtime.Register(value, m.ID+exportsKeySuffix+key)
		}
	}
}
