// Package exports provides the ordered record type used to model a module's
// exports object. A Record enumerates its string keys in insertion order and
// optionally inherits keys from a prototype Record, which keeps export
// signatures stable across repeated evaluations of the same module.
package exports

// ESModuleMarker is the reserved module-system marker key. Tooling sets it on
// transpiled modules; it is never a real export and every consumer of a
// Record's keys is expected to skip it.
const ESModuleMarker = "__esModule"

// entry holds one export slot: either a stored value or a getter that
// produces the value on access. Getters model re-exports, where the slot
// forwards to another module's live export.
type entry struct {
	value  any
	getter func() any
}

// Record is an insertion-ordered string-keyed mapping with an optional
// prototype chain. It is the only exports shape the refresh adapter treats as
// an "object"; plain Go maps are rejected because their iteration order is
// randomized and would make signatures unstable.
//
// A Record models a single module's exports and is mutated only while that
// module evaluates, so it is not synchronized for concurrent writers.
type Record struct {
	keys    []string
	entries map[string]entry
	proto   *Record
}

// New creates an empty Record with no prototype.
func New() *Record {
	return &Record{
		entries: make(map[string]entry),
	}
}

// NewWithProto creates an empty Record whose key enumeration falls through to
// proto for keys the record does not define itself. This mirrors the legacy
// layout where a re-evaluated module shadows an older exports object.
func NewWithProto(proto *Record) *Record {
	r := New()
	r.proto = proto
	return r
}

// Set stores a plain value under key. A key keeps its original insertion
// position when assigned again; deleting and re-adding moves it to the end.
// Set returns the record so module evaluation code can chain assignments.
func (r *Record) Set(key string, value any) *Record {
	r.put(key, entry{value: value})
	return r
}

// SetGetter stores a lazy slot under key. The getter runs on every Get, which
// lets a slot forward to another module's current export. Getters are assumed
// side-effect free.
func (r *Record) SetGetter(key string, getter func() any) *Record {
	r.put(key, entry{getter: getter})
	return r
}

func (r *Record) put(key string, e entry) {
	if _, exists := r.entries[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = e
}

// Delete removes key from the record's own entries. Inherited entries are
// untouched; deleting an own key can re-expose a prototype key with the same
// name.
func (r *Record) Delete(key string) {
	if _, exists := r.entries[key]; !exists {
		return
	}
	delete(r.entries, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key, invoking the slot's getter when the
// slot is lazy. Keys missing from the record are looked up along the
// prototype chain; a key missing everywhere yields nil.
func (r *Record) Get(key string) any {
	for rec := r; rec != nil; rec = rec.proto {
		if e, ok := rec.entries[key]; ok {
			if e.getter != nil {
				return e.getter()
			}
			return e.value
		}
	}
	return nil
}

// Has reports whether key resolves on the record or its prototype chain.
func (r *Record) Has(key string) bool {
	for rec := r; rec != nil; rec = rec.proto {
		if _, ok := rec.entries[key]; ok {
			return true
		}
	}
	return false
}

// OwnKeys returns the record's own keys in insertion order. The slice is a
// copy; callers may keep it.
func (r *Record) OwnKeys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Keys returns the record's enumerable keys: own keys in insertion order
// followed by prototype-chain keys that are not shadowed by a nearer record.
// This is the enumeration order signatures and boundary checks rely on.
func (r *Record) Keys() []string {
	seen := make(map[string]struct{}, len(r.keys))
	var keys []string
	for rec := r; rec != nil; rec = rec.proto {
		for _, k := range rec.keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of enumerable keys, inherited keys included.
func (r *Record) Len() int {
	return len(r.Keys())
}

// Proto returns the record's prototype, or nil when it has none.
func (r *Record) Proto() *Record {
	return r.proto
}
