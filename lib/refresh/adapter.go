// Package refresh provides construction and configuration of the Adapter.
// This file contains the Config struct, the New constructor, and the activity
// stats snapshot.
package refresh

import (
	"fmt"
	"log"
	"time"
)

// DefaultDelay is the debounce window for scheduled refreshes when Config
// leaves Delay unset.
const DefaultDelay = 30 * time.Millisecond

// Config holds the collaborators and tuning knobs for an Adapter.
type Config struct {
	// Runtime is the fast-refresh runtime. Required.
	Runtime Runtime

	// Hot is the bundler's accept registry. Required; error handlers
	// re-subscribe themselves through it.
	Hot Hot

	// Reloader performs a full page reload. Required; it is the terminal
	// fallback for unrecoverable error states.
	Reloader Reloader

	// Overlay dismisses runtime errors after a successful refresh. Optional;
	// without an overlay nothing ever sets the error state, so the dismissal
	// branch stays idle.
	Overlay Overlay

	// Errors is the shared runtime-error cell. The overlay collaborator sets
	// it, the scheduler clears it. Optional; a fresh cell is created when nil.
	Errors *ErrorState

	// Delay is the debounce window for EnqueueUpdate (default: DefaultDelay).
	Delay time.Duration

	// Logger receives the adapter's few lifecycle messages. Optional; nil
	// keeps the adapter silent.
	Logger *log.Logger
}

// New creates an Adapter from cfg, filling defaults for the optional fields.
func New(cfg Config) (*Adapter, error) {
	if cfg.Runtime == nil {
		return nil, fmt.Errorf("refresh runtime is required")
	}
	if cfg.Hot == nil {
		return nil, fmt.Errorf("hot accept registry is required")
	}
	if cfg.Reloader == nil {
		return nil, fmt.Errorf("reloader is required")
	}
	if cfg.Errors == nil {
		cfg.Errors = NewErrorState()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}

	return &Adapter{
		runtime:  cfg.Runtime,
		hot:      cfg.Hot,
		reloader: cfg.Reloader,
		overlay:  cfg.Overlay,
		errors:   cfg.Errors,
		delay:    cfg.Delay,
		logger:   cfg.Logger,
	}, nil
}

// Errors returns the adapter's shared runtime-error cell. Hosts hand the same
// cell to the error-overlay collaborator so both sides see one flag.
func (a *Adapter) Errors() *ErrorState {
	return a.errors
}

// logf writes through the configured logger, if any.
func (a *Adapter) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// Stats is a point-in-time snapshot of adapter activity.
type Stats struct {
	// ScheduledUpdates counts EnqueueUpdate calls that armed a refresh timer.
	ScheduledUpdates uint64
	// CoalescedUpdates counts EnqueueUpdate calls absorbed by an armed timer.
	CoalescedUpdates uint64
	// Refreshes counts completed PerformRefresh invocations.
	Refreshes uint64
	// Reloads counts full-reload escalations from dispose callbacks.
	Reloads uint64
	// RearmedHandlers counts error-handler re-subscriptions.
	RearmedHandlers uint64
}

// Stats returns a snapshot of the adapter's activity counters.
func (a *Adapter) Stats() Stats {
	return Stats{
		ScheduledUpdates: a.scheduled.Load(),
		CoalescedUpdates: a.coalesced.Load(),
		Refreshes:        a.refreshes.Load(),
		Reloads:          a.reloads.Load(),
		RearmedHandlers:  a.rearms.Load(),
	}
}
