// Package refresh provides the bundler-facing hook callbacks.
// This file contains the dispose-callback and error-handler factories wired
// into the bundler's module hooks.
package refresh

import "sync"

// NewHotDisposeCallback returns the callback to wire into the bundler's
// dispose hook for m. If the refresh runtime has accumulated unrecoverable
// errors by the time the module is disposed, the callback escalates to a full
// reload and returns; Reload is terminal by contract. Otherwise it attaches m
// to the dispose data so the bundler can hand the outgoing version to the
// incoming one for signature comparison.
func (a *Adapter) NewHotDisposeCallback(m *Module) func(*DisposeData) {
	return func(data *DisposeData) {
		if a.runtime.HasUnrecoverableErrors() {
			a.reloads.Add(1)
			a.logf("unrecoverable runtime errors, requesting full reload")
			a.reloader.Reload()
			return
		}
		if data != nil {
			data.Module = m
		}
	}
}

// recoveryState is the position of an error handler in its retry loop.
type recoveryState uint8

const (
	// stateAwaitingUpdate means the handler is subscribed and waiting for
	// the next accepted update.
	stateAwaitingUpdate recoveryState = iota
	// stateErroring means the handler is processing an evaluation error.
	stateErroring
)

// errorRecovery keeps one module listening for updates across evaluation
// errors. Every error re-subscribes the same handle, so the module retries
// indefinitely until the developer ships a fix.
type errorRecovery struct {
	adapter  *Adapter
	moduleID string

	mu    sync.Mutex
	state recoveryState
}

// handle processes one evaluation error: enter the erroring state,
// re-subscribe onto the module's accept hook, and return to awaiting the
// next update.
func (r *errorRecovery) handle() {
	r.mu.Lock()
	r.state = stateErroring
	r.mu.Unlock()

	r.adapter.hot.Accept(r.moduleID, r.handle)

	r.mu.Lock()
	r.state = stateAwaitingUpdate
	r.mu.Unlock()

	r.adapter.rearms.Add(1)
	r.adapter.logf("module %s failed to evaluate, error handler re-armed", r.moduleID)
}

// currentState reports the handler's position in the retry loop.
func (r *errorRecovery) currentState() recoveryState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// NewHotErrorHandler returns the error callback to wire into the bundler's
// error hook for moduleID. Each invocation re-subscribes the same callback as
// an accept handler for the module, so an evaluation error never removes the
// module from the update loop.
func (a *Adapter) NewHotErrorHandler(moduleID string) func() {
	r := &errorRecovery{adapter: a, moduleID: moduleID, state: stateAwaitingUpdate}
	return r.handle
}
