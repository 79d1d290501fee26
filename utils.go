package hashmap

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
// Only the slot headers are counted; the per-key byte copies are allocated
// separately and sized by the caller's keys.
func CapacityFromSize[V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[V]{})

	return int(size / sizeOfSlot)
}
