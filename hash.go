package hashmap

import "github.com/cespare/xxhash/v2"

// 32-bit FNV-1a parameters.
const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// HashFunc maps a key's bytes to a slot-selection value. It must be
// deterministic over the byte content; the table reduces the result
// modulo its capacity.
type HashFunc func(key []byte) uint64

// EqualFunc reports whether two keys of equal length hold the same bytes.
// The table never calls it for keys of differing lengths.
type EqualFunc func(a, b []byte) bool

// FNV1a is the default hash function, the 32-bit FNV-1a over the key bytes.
func FNV1a(key []byte) uint64 {
	hash := fnvOffset32
	for _, b := range key {
		hash ^= uint32(b)
		hash *= fnvPrime32
	}

	return uint64(hash)
}

// XXHash hashes the key bytes with xxHash64. It spreads keys over the full
// 64-bit range and is the better pick for large tables; pass it through
// WithHashFunc.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}
