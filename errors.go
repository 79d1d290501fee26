package hashmap

import "errors"

var (
	// ErrTableFull is returned by Set when every slot is occupied and the
	// key is not already present. Updates of existing keys still succeed.
	ErrTableFull = errors.New("table is full")

	// ErrKeyNotFound is returned by Delete when no occupied slot holds the
	// given key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidCapacity is returned by New for a capacity below 1.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)
