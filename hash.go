package symtable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// shiftAmount is the number of bits the accumulator is shifted by for every key byte
const shiftAmount = 5

// Hasher maps a key to an unsigned integer, the bucket index is hasher(key) % capacity
type Hasher func(key string) uintptr

var (
	// ShiftHash is the default hasher
	// for every byte of the key the accumulator is shifted left by 5 bits and the byte is added,
	// overflow wraps around
	// it is cheap and spreads short ASCII identifiers well but it is not collision resistant,
	// do not use it for keys chosen by an adversary
	// the accumulator is a uintptr, so hashes and bucket indices differ between 32 and 64 bit platforms
	ShiftHash Hasher = func(key string) uintptr {
		var h uintptr
		for i := 0; i < len(key); i++ {
			h = h<<shiftAmount + uintptr(key[i])
		}
		return h
	}

	// XXH3Hash hashes keys with the xxh3 algorithm
	XXH3Hash Hasher = func(key string) uintptr {
		return uintptr(xxh3.HashString(key))
	}

	// XXHash hashes keys with the 64 bit xxHash algorithm
	XXHash Hasher = func(key string) uintptr {
		return uintptr(xxhash.Sum64String(key))
	}
)
