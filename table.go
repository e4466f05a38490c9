package symtable

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

// Table is a symbol table binding unique string keys to values of type V using separate chaining
// The zero value is only usable as a JSON decode target, create tables with New, NewList or NewWithCapacities
// A Table is not safe for concurrent use, callers must serialise access
type Table[V any] struct {
	_          noCopy
	buckets    []*element[V] // chain heads, len(buckets) is the current capacity
	count      uintptr       // number of bindings reachable from buckets
	capacities []uintptr     // immutable growth sequence owned by this table
	sizeIndex  int           // index of the current capacity in capacities
	hasher     Hasher
	freed      bool
}

// New returns an empty table with the smallest of DefaultCapacities buckets
func New[V any]() *Table[V] {
	return newTable[V](DefaultCapacities())
}

// NewList returns an empty table backed by a single chain which never grows
// every operation walks all bindings, it exists for small tables and for comparison with the hashed variant
func NewList[V any]() *Table[V] {
	return newTable[V]([]uintptr{listCapacity})
}

// NewWithCapacities returns an empty table that grows through the given ascending sequence of prime bucket counts
// the sequence is copied, later changes to sizes do not affect the table
func NewWithCapacities[V any](sizes ...uintptr) (*Table[V], error) {
	if err := validateCapacities(sizes); err != nil {
		return nil, err
	}
	return newTable[V](slices.Clone(sizes)), nil
}

func newTable[V any](sizes []uintptr) *Table[V] {
	t := &Table[V]{}
	t.init(sizes)
	return t
}

// init resets t to an empty table at the first capacity of sizes
func (t *Table[V]) init(sizes []uintptr) {
	t.buckets = make([]*element[V], sizes[0])
	t.count = 0
	t.capacities = sizes
	t.sizeIndex = 0
	t.hasher = ShiftHash
}

// Len returns the number of bindings within the table
func (t *Table[V]) Len() uintptr {
	t.mustBeLive()
	return t.count
}

// Capacity returns the current number of buckets
func (t *Table[V]) Capacity() uintptr {
	t.mustBeLive()
	return uintptr(len(t.buckets))
}

// Fillrate returns the fill rate of the table as a percentage integer
func (t *Table[V]) Fillrate() uintptr {
	t.mustBeLive()
	return (t.count * 100) / uintptr(len(t.buckets))
}

// Put binds value to key if key is absent and reports whether it did so
// an existing binding is never overwritten, use Replace for that
// any value is accepted, including the zero value of V
func (t *Table[V]) Put(key string, value V) bool {
	t.mustBeLive()
	if _, curr := search(t.buckets[t.index(key)], key); curr != nil {
		return false
	}
	if resizeNeeded(uintptr(len(t.buckets)), t.count) && t.sizeIndex+1 < len(t.capacities) {
		t.grow()
	}
	push(&t.buckets[t.index(key)], &element[V]{key: key, value: value})
	t.count++
	return true
}

// Replace swaps the value bound to key and returns the previous one
// returns `false` and leaves the table untouched if key is absent
func (t *Table[V]) Replace(key string, value V) (old V, ok bool) {
	t.mustBeLive()
	if _, curr := search(t.buckets[t.index(key)], key); curr != nil {
		old, curr.value = curr.value, value
		return old, true
	}
	return
}

// Contains reports whether key is bound
func (t *Table[V]) Contains(key string) bool {
	t.mustBeLive()
	_, curr := search(t.buckets[t.index(key)], key)
	return curr != nil
}

// Get retrieves the value bound to key
// returns `false` if key is absent
func (t *Table[V]) Get(key string) (value V, ok bool) {
	t.mustBeLive()
	if _, curr := search(t.buckets[t.index(key)], key); curr != nil {
		return curr.value, true
	}
	return
}

// Remove deletes the binding of key and returns its value
// returns `false` and leaves the table untouched if key is absent
func (t *Table[V]) Remove(key string) (value V, ok bool) {
	t.mustBeLive()
	head := &t.buckets[t.index(key)]
	prev, curr := search(*head, key)
	if curr == nil {
		return
	}
	unlink(head, prev, curr)
	t.count--
	return curr.value, true
}

// Map calls apply once for every binding in unspecified order, passing extra through unchanged
// apply must not add or remove bindings
func (t *Table[V]) Map(apply func(key string, value V, extra any), extra any) {
	t.mustBeLive()
	if apply == nil {
		panic("symtable: nil apply function")
	}
	for _, head := range t.buckets {
		for elem := head; elem != nil; elem = elem.next {
			apply(elem.key, elem.value, extra)
		}
	}
}

// ForEach iterates over key-value pairs and executes the lambda provided for each such pair
// lambda must return `true` to continue iteration and `false` to break iteration
func (t *Table[V]) ForEach(lambda func(string, V) bool) {
	t.mustBeLive()
	for _, head := range t.buckets {
		for elem := head; elem != nil; elem = elem.next {
			if !lambda(elem.key, elem.value) {
				return
			}
		}
	}
}

// SetHasher sets the hash function to the one provided by the user
// existing bindings are redistributed immediately
func (t *Table[V]) SetHasher(hs Hasher) {
	t.mustBeLive()
	if hs == nil {
		panic("symtable: nil hasher")
	}
	t.hasher = hs
	t.rehash(uintptr(len(t.buckets)))
}

// Free drops every binding and the bucket array
// values are not touched, they remain owned by the caller
// the table must not be used afterwards, doing so panics
func (t *Table[V]) Free() {
	t.mustBeLive()
	for i, head := range t.buckets {
		for elem := head; elem != nil; {
			next := elem.next
			elem.next = nil
			elem = next
		}
		t.buckets[i] = nil
	}
	t.buckets, t.count, t.freed = nil, 0, true
}

// MarshalJSON implements the json.Marshaler interface.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	t.mustBeLive()
	gomap := make(map[string]V, t.count)
	t.ForEach(func(key string, value V) bool {
		gomap[key] = value
		return true
	})
	return json.Marshal(gomap)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// keys already bound take the decoded value
// a zero Table, as allocated by encoding/json for a *Table field, is set up like New first
func (t *Table[V]) UnmarshalJSON(i []byte) error {
	t.mustBeLive()
	if t.buckets == nil {
		t.init(DefaultCapacities())
	}
	gomap := make(map[string]V)
	if err := json.Unmarshal(i, &gomap); err != nil {
		return err
	}
	for k, v := range gomap {
		if !t.Put(k, v) {
			t.Replace(k, v)
		}
	}
	return nil
}

// index returns the bucket of key under the current capacity
func (t *Table[V]) index(key string) uintptr {
	return t.hasher(key) % uintptr(len(t.buckets))
}

// grow moves the table to the next capacity of its sequence
func (t *Table[V]) grow() {
	t.rehash(t.capacities[t.sizeIndex+1])
	t.sizeIndex++
}

// rehash relinks every binding into a new bucket array of the given size
// bindings are moved, not copied, and count is unchanged
// the old array is only dropped once the new one is fully built
func (t *Table[V]) rehash(size uintptr) {
	buckets := make([]*element[V], size)
	for _, head := range t.buckets {
		for elem := head; elem != nil; {
			next := elem.next
			push(&buckets[t.hasher(elem.key)%size], elem)
			elem = next
		}
	}
	t.buckets = buckets
}

func (t *Table[V]) mustBeLive() {
	if t.freed {
		panic("symtable: use of freed table")
	}
}
