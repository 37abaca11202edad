package refresh

import (
	"sync"
	"testing"
	"time"
)

// fakeComponent is a distinct value the fake runtime can treat as a
// UI component.
type fakeComponent struct {
	name string
}

// registration records one Register call in arrival order.
type registration struct {
	value any
	id    string
}

// fakeRuntime implements Runtime over explicit maps. Families are assigned
// per value, the way the real runtime resolves identities, and every call is
// recorded so tests can assert on order and counts. All methods are safe for
// the timer goroutine the scheduler runs on.
type fakeRuntime struct {
	mu            sync.Mutex
	families      map[any]*Family
	components    map[any]bool
	registrations []registration
	refreshes     int
	unrecoverable bool
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		families:   make(map[any]*Family),
		components: make(map[any]bool),
	}
}

// addComponent mints a fresh component value with its own family.
func (r *fakeRuntime) addComponent(name string) (*fakeComponent, *Family) {
	c := &fakeComponent{name: name}
	f := NewFamily(name)
	r.mu.Lock()
	r.components[c] = true
	r.families[c] = f
	r.mu.Unlock()
	return c, f
}

// adoptFamily marks v as a component belonging to an existing family, the way
// the real runtime matches a recompiled component to its previous identity.
func (r *fakeRuntime) adoptFamily(v any, f *Family) {
	r.mu.Lock()
	r.components[v] = true
	r.families[v] = f
	r.mu.Unlock()
}

func (r *fakeRuntime) setUnrecoverable(v bool) {
	r.mu.Lock()
	r.unrecoverable = v
	r.mu.Unlock()
}

func (r *fakeRuntime) FamilyOf(v any) *Family {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.families[v]
}

func (r *fakeRuntime) IsLikelyComponent(v any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.components[v]
}

func (r *fakeRuntime) Register(v any, id string) {
	r.mu.Lock()
	r.registrations = append(r.registrations, registration{value: v, id: id})
	r.mu.Unlock()
}

func (r *fakeRuntime) PerformRefresh() {
	r.mu.Lock()
	r.refreshes++
	r.mu.Unlock()
}

func (r *fakeRuntime) HasUnrecoverableErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unrecoverable
}

// registeredIDs returns the identities passed to Register, in order.
func (r *fakeRuntime) registeredIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.registrations))
	for i, reg := range r.registrations {
		ids[i] = reg.id
	}
	return ids
}

func (r *fakeRuntime) refreshCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// acceptCall records one Accept subscription.
type acceptCall struct {
	moduleID string
	handler  func()
}

// fakeHot implements Hot by recording subscriptions.
type fakeHot struct {
	mu      sync.Mutex
	accepts []acceptCall
}

func (h *fakeHot) Accept(moduleID string, handler func()) {
	h.mu.Lock()
	h.accepts = append(h.accepts, acceptCall{moduleID: moduleID, handler: handler})
	h.mu.Unlock()
}

func (h *fakeHot) acceptCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.accepts)
}

// lastAccept returns the most recent subscription.
func (h *fakeHot) lastAccept(t testing.TB) acceptCall {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.accepts) == 0 {
		t.Fatal("Expected at least one Accept call")
	}
	return h.accepts[len(h.accepts)-1]
}

// fakeReloader implements Reloader by counting.
type fakeReloader struct {
	mu      sync.Mutex
	reloads int
}

func (r *fakeReloader) Reload() {
	r.mu.Lock()
	r.reloads++
	r.mu.Unlock()
}

func (r *fakeReloader) reloadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}

// fakeOverlay implements Overlay by counting dismissals.
type fakeOverlay struct {
	mu        sync.Mutex
	dismissed int
}

func (o *fakeOverlay) DismissRuntimeErrors() {
	o.mu.Lock()
	o.dismissed++
	o.mu.Unlock()
}

func (o *fakeOverlay) dismissedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dismissed
}

// testAdapter bundles an Adapter with the fakes behind it.
type testAdapter struct {
	*Adapter
	runtime  *fakeRuntime
	hot      *fakeHot
	reloader *fakeReloader
	overlay  *fakeOverlay
}

// newTestAdapter creates an Adapter over fresh fakes with a debounce delay
// short enough for tests.
func newTestAdapter(t testing.TB) *testAdapter {
	t.Helper()

	rt := newFakeRuntime()
	hot := &fakeHot{}
	rel := &fakeReloader{}
	ov := &fakeOverlay{}

	a, err := New(Config{
		Runtime:  rt,
		Hot:      hot,
		Reloader: rel,
		Overlay:  ov,
		Delay:    20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Failed to create adapter: %v", err)
	}

	return &testAdapter{Adapter: a, runtime: rt, hot: hot, reloader: rel, overlay: ov}
}

// waitUntil polls cond until it holds or the deadline passes.
func waitUntil(t testing.TB, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not reached before deadline")
}
