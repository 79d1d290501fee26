package hashmap

// HashMap is a fixed-capacity associative container mapping byte-sequence
// keys to values of type V, using open addressing with linear probing.
// It retains the capacity it was constructed with - a full table rejects
// new keys instead of growing, which keeps its memory footprint exact.
// The table stores a private copy of every key, so callers may reuse or
// mutate their key buffers freely after a call returns.
// Deleted slots are tombstoned to keep probe chains intact; Compact
// reclaims them in place.
// HashMap is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally.
type HashMap[V any] struct {
	table[V]
}

// Returns a new map with exactly `capacity` slots, all empty.
func New[V any](capacity int, opts ...Option[V]) (*HashMap[V], error) {
	var hm HashMap[V]
	if err := hm.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &hm, nil
}

// Looks a key up. The second return is false if the key is absent.
func (hm *HashMap[V]) Get(key []byte) (V, bool) {
	return hm.get(key)
}

// Inserts a key or updates its value if already present.
// Fails with ErrTableFull when the table is full and the key is new;
// updates of existing keys succeed regardless.
func (hm *HashMap[V]) Set(key []byte, value V) error {
	return hm.put(key, value)
}

// Deletes a key from the map.
// Fails with ErrKeyNotFound when the key is absent; the map is unchanged.
func (hm *HashMap[V]) Delete(key []byte) error {
	return hm.delete(key)
}

// Drops every entry and tombstone. Capacity is unchanged.
func (hm *HashMap[V]) Reset() {
	hm.reset()
}

// Rehashes in place to eliminate tombstones. Capacity is unchanged; this
// is not a resize.
func (hm *HashMap[V]) Compact() {
	hm.compact()
}

// Number of occupied slots.
func (hm *HashMap[V]) Size() int {
	return hm.size
}

// Number of slots, fixed at construction.
func (hm *HashMap[V]) Capacity() int {
	return hm.capacity
}

func (hm *HashMap[V]) Stats() Stats {
	return Stats{
		Size:       hm.size,
		Capacity:   hm.capacity,
		Tombstones: hm.tombstones,
		Load:       float32(hm.size) / float32(hm.capacity),
	}
}
