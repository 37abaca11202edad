// Package refresh provides the shared runtime-error cell.
// This file contains the ErrorState type coordinating the error overlay and
// the refresh scheduler.
package refresh

import "sync/atomic"

// ErrorState is a single shared boolean cell with a narrow contract: the
// error-overlay collaborator sets it when it shows a runtime error, and the
// refresh scheduler clears it after a successful refresh dismisses the
// overlay. Passing one cell to both sides replaces the ambient global flag a
// browser runtime would use.
type ErrorState struct {
	runtimeErrors atomic.Bool
}

// NewErrorState creates a cleared cell.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// MarkRuntimeError records that a runtime error is being shown.
func (s *ErrorState) MarkRuntimeError() {
	s.runtimeErrors.Store(true)
}

// Clear resets the cell.
func (s *ErrorState) Clear() {
	s.runtimeErrors.Store(false)
}

// HasRuntimeErrors reports whether a runtime error is currently shown.
func (s *ErrorState) HasRuntimeErrors() bool {
	return s.runtimeErrors.Load()
}
