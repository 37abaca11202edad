// Package refresh provides the bundler-owned module record view.
// This file contains the Module record, the exports accessor, and the
// dispose-data record carried between module versions.
package refresh

// Module mirrors the host bundler's module record. The bundler creates and
// destroys these; this package only reads them.
//
// Exports usually lives on the record itself. A legacy layout instead stores
// it on a prototype record shared by successive versions; ModuleExports
// handles both conventions.
type Module struct {
	ID      string
	Exports any
	Proto   *Module
}

// ModuleExports returns the live exports value of m. It prefers the record's
// own Exports field and falls back to the prototype record's when the field
// is nil; a nil module or a record with no exports anywhere yields nil. There
// are no error cases.
func ModuleExports(m *Module) any {
	if m == nil {
		return nil
	}
	if m.Exports != nil {
		return m.Exports
	}
	if m.Proto != nil {
		return m.Proto.Exports
	}
	return nil
}

// DisposeData is the record the bundler hands a dispose callback. The
// callback stores the outgoing module on it, and the bundler carries the
// record into the next version so the two can be compared after the update.
type DisposeData struct {
	Module *Module
}
