package main

import (
	"fmt"
	"sync"

	"github.com/snowmerak/refresh.go/lib/exports"
	"github.com/snowmerak/refresh.go/lib/refresh"
)

// manifest describes one module version the way a build step would emit it.
type manifest struct {
	ID       string          `json:"id"`
	ESModule bool            `json:"esModule"`
	Exports  []manifestEntry `json:"exports"`
	FailEval bool            `json:"failEval,omitempty"`
}

// manifestEntry is one export slot of a manifest. Kind "component" produces a
// fresh component value; anything else is exported as the literal value.
type manifestEntry struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// acceptRegistry is the bundler's accept-subscription table. The adapter's
// error handlers subscribe themselves here to stay in the update loop.
type acceptRegistry struct {
	mu   sync.Mutex
	byID map[string][]func()
}

func newAcceptRegistry() *acceptRegistry {
	return &acceptRegistry{byID: make(map[string][]func())}
}

// Accept queues handler for the next accepted update of moduleID.
func (r *acceptRegistry) Accept(moduleID string, handler func()) {
	r.mu.Lock()
	r.byID[moduleID] = append(r.byID[moduleID], handler)
	r.mu.Unlock()
}

// drain removes and returns the handlers queued for moduleID.
func (r *acceptRegistry) drain(moduleID string) []func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	handlers := r.byID[moduleID]
	delete(r.byID, moduleID)
	return handlers
}

func (r *acceptRegistry) clear() {
	r.mu.Lock()
	r.byID = make(map[string][]func())
	r.mu.Unlock()
}

// moduleSlot is one installed module version with its dispose callback.
type moduleSlot struct {
	module  *refresh.Module
	dispose func(*refresh.DisposeData)
}

// bundler is a miniature HMR host: it keeps the module table and drives the
// adapter at the same points a real bundler would.
type bundler struct {
	adapter  *refresh.Adapter
	accepts  *acceptRegistry
	overlay  *consoleOverlay
	reloader *pageReloader

	mu          sync.Mutex
	slots       map[string]*moduleSlot
	errHandlers map[string]func()
}

func newBundler(adapter *refresh.Adapter, accepts *acceptRegistry, overlay *consoleOverlay, reloader *pageReloader) *bundler {
	return &bundler{
		adapter:     adapter,
		accepts:     accepts,
		overlay:     overlay,
		reloader:    reloader,
		slots:       make(map[string]*moduleSlot),
		errHandlers: make(map[string]func()),
	}
}

// errorHandler returns the persistent error handler for moduleID, creating it
// on first use.
func (b *bundler) errorHandler(moduleID string) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	h, ok := b.errHandlers[moduleID]
	if !ok {
		h = b.adapter.NewHotErrorHandler(moduleID)
		b.errHandlers[moduleID] = h
	}
	return h
}

// evaluate runs one build-and-swap cycle for man: dispose the old version,
// run the new module body, register its exports, and decide between an
// isolated refresh and a full reload.
func (b *bundler) evaluate(man manifest) {
	b.mu.Lock()
	prevSlot := b.slots[man.ID]
	b.mu.Unlock()

	// Dispose the outgoing version; its dispose data carries it forward.
	var carried *refresh.Module
	if prevSlot != nil {
		data := &refresh.DisposeData{}
		prevSlot.dispose(data)
		if data.Module == nil {
			// The dispose path escalated to a full reload.
			b.reset()
			return
		}
		carried = data.Module
	}

	// Run the module body under an execution scope.
	if man.FailEval {
		fmt.Printf("  [bundler] %s threw during evaluation\n", man.ID)
		b.overlay.ShowRuntimeError(man.ID, "module body threw")
		b.errorHandler(man.ID)()
		return
	}
	scope, stop := b.adapter.InterceptModuleExecution(man.ID)
	rec := buildExports(man, scope)
	stop()

	next := &refresh.Module{ID: man.ID, Exports: rec}
	b.adapter.RegisterExportsForReactRefresh(next)

	b.mu.Lock()
	b.slots[man.ID] = &moduleSlot{
		module:  next,
		dispose: b.adapter.NewHotDisposeCallback(next),
	}
	b.mu.Unlock()

	// The accepted update fires any handlers waiting on this module.
	for _, handler := range b.accepts.drain(man.ID) {
		handler()
	}

	if prevSlot == nil {
		fmt.Printf("  [bundler] %s evaluated\n", man.ID)
		return
	}

	switch {
	case !b.adapter.IsReactRefreshBoundary(next):
		fmt.Printf("  [bundler] %s is no longer a refresh boundary, reloading\n", man.ID)
		b.reloader.Reload()
		b.reset()
	case b.adapter.ShouldInvalidateReactRefreshBoundary(carried, next):
		fmt.Printf("  [bundler] %s changed export shape, reloading\n", man.ID)
		b.reloader.Reload()
		b.reset()
	default:
		fmt.Printf("  [bundler] %s hot-swapped\n", man.ID)
		b.adapter.EnqueueUpdate()
	}
}

// buildExports runs the "module body": it constructs the exports record and
// announces component declarations through the execution scope.
func buildExports(man manifest, scope *refresh.ExecScope) *exports.Record {
	rec := exports.New()
	if man.ESModule {
		rec.Set(exports.ESModuleMarker, true)
	}
	for _, entry := range man.Exports {
		if entry.Kind == "component" {
			c := &componentValue{name: entry.Key}
			scope.Register(c, entry.Key)
			rec.Set(entry.Key, c)
			continue
		}
		rec.Set(entry.Key, entry.Value)
	}
	return rec
}

// reset clears the bundler after a full reload, the way a page restart would.
func (b *bundler) reset() {
	b.mu.Lock()
	b.slots = make(map[string]*moduleSlot)
	b.errHandlers = make(map[string]func())
	b.mu.Unlock()
	b.accepts.clear()
	fmt.Println("  [bundler] module table cleared")
}
