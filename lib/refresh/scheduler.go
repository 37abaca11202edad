// Package refresh provides refresh scheduling functionality.
// This file contains the leading-edge debounced scheduler that collapses
// bursts of update notifications into single refresh passes.
package refresh

import "time"

// EnqueueUpdate requests a refresh pass. The first call in an idle window
// arms a timer for the configured delay; calls arriving while the timer is
// pending are coalesced into the already-armed pass. An armed pass cannot be
// cancelled.
func (a *Adapter) EnqueueUpdate() {
	if !a.pending.CompareAndSwap(false, true) {
		a.coalesced.Add(1)
		return
	}
	a.scheduled.Add(1)
	time.AfterFunc(a.delay, a.runScheduledRefresh)
}

// runScheduledRefresh performs one refresh pass. The pending marker clears
// before the pass runs, so a notification arriving mid-pass arms the next
// window instead of being dropped.
func (a *Adapter) runScheduledRefresh() {
	a.pending.Store(false)

	a.runtime.PerformRefresh()
	a.refreshes.Add(1)

	if a.errors.HasRuntimeErrors() {
		if a.overlay != nil {
			a.overlay.DismissRuntimeErrors()
		}
		a.errors.Clear()
	}
}
