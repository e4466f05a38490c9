package symtable

// Each bucket is an unordered singly linked chain of bindings, new bindings are pushed at the head.
// The list variant of the table is the same chain with only one bucket.

// a single binding in a chain
type element[V any] struct {
	key   string
	value V
	next  *element[V]
}

// search walks the chain starting at head and returns the element holding key along with its predecessor
// prev is nil when the match is the head of the chain, curr is nil when the key is absent
func search[V any](head *element[V], key string) (prev, curr *element[V]) {
	for curr = head; curr != nil; prev, curr = curr, curr.next {
		if curr.key == key {
			return prev, curr
		}
	}
	return nil, nil
}

// unlink removes curr from the chain whose head is stored in *head, prev must be the result of search
func unlink[V any](head **element[V], prev, curr *element[V]) {
	if prev == nil {
		*head = curr.next
	} else {
		prev.next = curr.next
	}
	curr.next = nil
}

// push links elem in front of the chain whose head is stored in *head
func push[V any](head **element[V], elem *element[V]) {
	elem.next = *head
	*head = elem
}
