package symtable

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

const (
	// maxFillRate is the maximum fill rate (bindings per bucket, in percent) before a resize will happen
	maxFillRate = 75

	// listCapacity is the bucket count of the list variant, a single chain holding every binding
	listCapacity = 1
)

// defaultCapacities is the ascending sequence of prime bucket counts a table created by New moves through
// each entry roughly doubles the previous one
var defaultCapacities = [...]uintptr{509, 1021, 2039, 4093, 8191, 16381, 32771, 65537, 131071}

// DefaultCapacities returns a copy of the sequence of prime bucket counts used by New
func DefaultCapacities() []uintptr {
	return slices.Clone(defaultCapacities[:])
}

// ErrInvalidCapacities is returned by NewWithCapacities for a sequence that is empty, not strictly ascending or holds a non prime
var ErrInvalidCapacities = errors.New("symtable: invalid capacity sequence")

// noCopy may be embedded into structs which must not be copied after first use
// go vet copylocks reports copies since it implements sync.Locker
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// resizeNeeded reports whether inserting one more binding would push the fill rate above maxFillRate
// evaluated as (count+1)/capacity > 0.75 without losing precision to integer division
func resizeNeeded(capacity, count uintptr) bool {
	return (count+1)*100 > capacity*maxFillRate
}

// validateCapacities checks that sizes can serve as a growth sequence
func validateCapacities(sizes []uintptr) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidCapacities)
	}
	if !slices.IsSorted(sizes) || len(slices.Compact(slices.Clone(sizes))) != len(sizes) {
		return fmt.Errorf("%w: %v is not strictly ascending", ErrInvalidCapacities, sizes)
	}
	for _, size := range sizes {
		if !isPrime(size) {
			return fmt.Errorf("%w: %d is not prime", ErrInvalidCapacities, size)
		}
	}
	return nil
}

// isPrime reports whether n is prime by trial division, sequences are short so this stays cheap
func isPrime[T constraints.Unsigned](n T) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := T(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
