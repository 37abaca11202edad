// Package refresh provides module-evaluation interception.
// This file contains the execution scope threaded through a module body's
// evaluation so generated registration calls reach the refresh runtime.
package refresh

import "sync/atomic"

// ExecScope collects component registrations made while one module body
// evaluates. Identities are namespaced by the owning module's id.
type ExecScope struct {
	adapter  *Adapter
	moduleID string
	closed   atomic.Bool
}

// Register forwards a component registration to the refresh runtime under
// "<moduleID> <localID>". Calls after the scope has been stopped are dropped;
// the evaluation they belong to is already over.
func (s *ExecScope) Register(v any, localID string) {
	if s.closed.Load() {
		return
	}
	s.adapter.runtime.Register(v, s.moduleID+" "+localID)
}

// InterceptModuleExecution opens a registration scope for one evaluation of
// the module with the given id. The caller threads the scope through the
// module body and calls stop when the body has finished running.
func (a *Adapter) InterceptModuleExecution(moduleID string) (scope *ExecScope, stop func()) {
	scope = &ExecScope{adapter: a, moduleID: moduleID}
	return scope, func() { scope.closed.Store(true) }
}
