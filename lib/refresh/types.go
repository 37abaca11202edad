// Package refresh glues a bundler's hot-module-replacement runtime to a
// UI-component fast-refresh runtime. It decides which modules are safe to
// hot-swap in isolation, registers component exports under stable identities,
// compares export signatures across module versions, and schedules the actual
// refresh with debouncing and error recovery.
// This file contains the collaborator interfaces and the main Adapter struct
// definition.
package refresh

import (
	"log"
	"sync/atomic"
	"time"
)

// Runtime is the slice of the fast-refresh runtime this package drives. The
// runtime owns component families and re-rendering; the adapter only asks it
// questions and forwards registrations.
type Runtime interface {
	// FamilyOf returns the identity token of v's type family, or nil when the
	// runtime has never seen v as a component.
	FamilyOf(v any) *Family

	// IsLikelyComponent reports whether v looks like a UI component to the
	// runtime's heuristics.
	IsLikelyComponent(v any) bool

	// Register ties v to a stable identity string so the same component keeps
	// its family across recompiles. Re-registering the same pair is safe.
	Register(v any, id string)

	// PerformRefresh re-renders everything whose family changed since the
	// last refresh.
	PerformRefresh()

	// HasUnrecoverableErrors reports whether the runtime accumulated errors
	// that cannot be healed by another refresh.
	HasUnrecoverableErrors() bool
}

// Overlay is the error-overlay collaborator. The adapter only ever asks it to
// take runtime errors down after a successful refresh.
type Overlay interface {
	DismissRuntimeErrors()
}

// OverlayFunc is a convenience type for using a plain function as an Overlay.
type OverlayFunc func()

// DismissRuntimeErrors implements the Overlay interface.
func (f OverlayFunc) DismissRuntimeErrors() { f() }

// Reloader is the full-page-reload primitive. Reload is terminal: the adapter
// assumes no further work happens in the current session once it is called.
type Reloader interface {
	Reload()
}

// ReloaderFunc is a convenience type for using a plain function as a Reloader.
type ReloaderFunc func()

// Reload implements the Reloader interface.
func (f ReloaderFunc) Reload() { f() }

// Hot is the slice of the bundler's HMR surface the adapter calls back into.
// Accept subscribes handler to the accept cycle of the module identified by
// moduleID; error handlers use it to keep themselves installed.
type Hot interface {
	Accept(moduleID string, handler func())
}

// HotFunc is a convenience type for using a plain function as a Hot registry.
type HotFunc func(moduleID string, handler func())

// Accept implements the Hot interface.
func (f HotFunc) Accept(moduleID string, handler func()) { f(moduleID, handler) }

// Adapter wires the collaborators together and carries the one piece of
// scheduling state the debounced refresh needs. Hosts construct it once with
// New and hand its methods to the bundler's HMR lifecycle hooks.
type Adapter struct {
	runtime  Runtime
	hot      Hot
	reloader Reloader
	overlay  Overlay

	errors *ErrorState
	delay  time.Duration
	logger *log.Logger

	// pending marks an armed refresh timer. Requests arriving while it is set
	// coalesce into the armed run.
	pending atomic.Bool

	// Activity counters, snapshotted by Stats.
	scheduled atomic.Uint64
	coalesced atomic.Uint64
	refreshes atomic.Uint64
	reloads   atomic.Uint64
	rearms    atomic.Uint64
}
