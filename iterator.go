//go:build go1.23
// +build go1.23

package symtable

import "iter"

// All returns an iterator over every binding in unspecified order
// the table must not be mutated while the iterator is in use
func (t *Table[V]) All() iter.Seq2[string, V] {
	t.mustBeLive()
	return func(yield func(key string, value V) bool) {
		t.ForEach(yield)
	}
}

// Keys returns an iterator over every bound key in unspecified order
func (t *Table[V]) Keys() iter.Seq[string] {
	t.mustBeLive()
	return func(yield func(key string) bool) {
		t.ForEach(func(key string, _ V) bool {
			return yield(key)
		})
	}
}
