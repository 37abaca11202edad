package main

import (
	"fmt"
	"sync"

	"github.com/snowmerak/refresh.go/lib/refresh"
)

// componentValue stands in for a compiled UI component. Every evaluation of a
// manifest produces fresh values, the way a recompile produces new function
// objects.
type componentValue struct {
	name string
}

func (c *componentValue) String() string {
	return "<component " + c.name + ">"
}

// componentRuntime is a small stand-in for a real fast-refresh runtime. It
// treats every *componentValue as component-like and keeps one family per
// registration identity, so a component re-registered under the same identity
// keeps its family while a renamed one gets a fresh family.
type componentRuntime struct {
	mu            sync.Mutex
	byIdentity    map[string]*refresh.Family
	families      map[any]*refresh.Family
	refreshes     int
	unrecoverable bool
}

func newComponentRuntime() *componentRuntime {
	return &componentRuntime{
		byIdentity: make(map[string]*refresh.Family),
		families:   make(map[any]*refresh.Family),
	}
}

func (r *componentRuntime) FamilyOf(v any) *refresh.Family {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.families[v]
}

func (r *componentRuntime) IsLikelyComponent(v any) bool {
	_, ok := v.(*componentValue)
	return ok
}

func (r *componentRuntime) Register(v any, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	family, ok := r.byIdentity[id]
	if !ok {
		family = refresh.NewFamily(id)
		r.byIdentity[id] = family
	}
	r.families[v] = family
}

func (r *componentRuntime) PerformRefresh() {
	r.mu.Lock()
	r.refreshes++
	pass := r.refreshes
	r.mu.Unlock()
	fmt.Printf("  [runtime] refresh pass %d: re-rendered changed families\n", pass)
}

func (r *componentRuntime) HasUnrecoverableErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unrecoverable
}

func (r *componentRuntime) markUnrecoverable() {
	r.mu.Lock()
	r.unrecoverable = true
	r.mu.Unlock()
}

func (r *componentRuntime) clearUnrecoverable() {
	r.mu.Lock()
	r.unrecoverable = false
	r.mu.Unlock()
}

// consoleOverlay stands in for the error overlay: it prints instead of
// rendering, and reports runtime errors into the shared error state the way a
// browser overlay would.
type consoleOverlay struct {
	errors *refresh.ErrorState
}

func (o *consoleOverlay) ShowRuntimeError(moduleID string, problem string) {
	fmt.Printf("  [overlay] runtime error in %s: %s\n", moduleID, problem)
	o.errors.MarkRuntimeError()
}

func (o *consoleOverlay) DismissRuntimeErrors() {
	fmt.Println("  [overlay] runtime errors dismissed")
}

// pageReloader stands in for the full-page-reload primitive.
type pageReloader struct {
	mu      sync.Mutex
	reloads int
}

func (p *pageReloader) Reload() {
	p.mu.Lock()
	p.reloads++
	p.mu.Unlock()
	fmt.Println("  [page] full reload")
}

func (p *pageReloader) reloadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reloads
}
