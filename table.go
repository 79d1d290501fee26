package hashmap

import "bytes"

const (
	slotEmpty uint8 = iota
	slotFull
	slotDeleted
)

// slot holds one entry. An occupied slot owns a private copy of the key
// bytes; the value is stored as given and zeroed again on delete so the
// table never pins caller data past the entry's lifetime.
type slot[V any] struct {
	state uint8
	key   []byte
	value V
}

type table[V any] struct {
	slots []slot[V]

	capacity   int
	size       int
	tombstones int

	hashFunc  HashFunc
	equalFunc EqualFunc

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// Override default key equality function.
func WithEqualFunc[V any](f EqualFunc) Option[V] {
	return func(t *table[V]) {
		t.equalFunc = f
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}

	// Capacity is used exactly as given. Probe starts are reduced modulo
	// capacity, so no power-of-2 normalization is needed, and the table
	// never grows past this allocation.
	t.slots = make([]slot[V], capacity)
	t.capacity = capacity

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = FNV1a
	}
	if t.equalFunc == nil {
		t.equalFunc = bytes.Equal
	}

	return nil
}

// matches reports whether s is occupied by exactly the given key. Keys of
// differing lengths never match, so equalFunc only ever sees equal-length
// slices.
func (t *table[V]) matches(s *slot[V], key []byte) bool {
	return s.state == slotFull && len(s.key) == len(key) && t.equalFunc(s.key, key)
}

func (t *table[V]) get(key []byte) (V, bool) {
	start := int(t.hashFunc(key) % uint64(t.capacity))

	for p, idx := 0, start; p < t.capacity; p++ {
		s := &t.slots[idx]

		if t.matches(s, key) {
			return s.value, true
		}

		// Termination: a never-occupied slot ends the probe chain.
		// Tombstones are probed through.
		if s.state == slotEmpty {
			return t.emptyV, false
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	return t.emptyV, false
}

func (t *table[V]) put(key []byte, value V) error {
	var (
		start  = int(t.hashFunc(key) % uint64(t.capacity))
		target = -1
	)

	for p, idx := 0, start; p < t.capacity; p++ {
		s := &t.slots[idx]

		if t.matches(s, key) {
			// Update in place; the key copy and size stay as they are.
			s.value = value
			return nil
		}

		// Cache the first reusable slot on the probe path, so new entries
		// reclaim tombstones instead of stretching the chain.
		if target < 0 && s.state != slotFull {
			target = idx
		}

		// An empty slot proves the key is absent.
		if s.state == slotEmpty {
			break
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	if t.size == t.capacity {
		return ErrTableFull
	}

	// size < capacity guarantees the probe saw a non-full slot.
	s := &t.slots[target]
	if s.state == slotDeleted {
		t.tombstones--
	}

	s.state = slotFull
	s.key = bytes.Clone(key)
	s.value = value
	t.size++

	return nil
}

func (t *table[V]) delete(key []byte) error {
	start := int(t.hashFunc(key) % uint64(t.capacity))

	for p, idx := 0, start; p < t.capacity; p++ {
		s := &t.slots[idx]

		if t.matches(s, key) {
			// Tombstone instead of empty, to keep entries stored past this
			// slot in the same probe chain reachable.
			s.state = slotDeleted
			s.key = nil
			s.value = t.emptyV
			t.size--
			t.tombstones++

			return nil
		}

		if s.state == slotEmpty {
			return ErrKeyNotFound
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	return ErrKeyNotFound
}

func (t *table[V]) reset() {
	for i := range t.slots {
		t.slots[i] = slot[V]{}
	}

	t.size = 0
	t.tombstones = 0
}

// compact drops all tombstones in place. Tombstoned slots are first marked
// empty and every full slot is marked deleted; the deleted marker then
// identifies entries that still need relocating to their proper probe
// position under the restored (tombstone-free) chains.
func (t *table[V]) compact() {
	for i := range t.slots {
		switch t.slots[i].state {
		case slotFull:
			t.slots[i].state = slotDeleted
		case slotDeleted:
			t.slots[i].state = slotEmpty
		}
	}

	for i := 0; i < t.capacity; i++ {
		s := &t.slots[i]

		// Only process slots we marked as deleted (which were originally full).
		if s.state != slotDeleted {
			continue
		}

		// First non-full slot on the probe path is where this entry
		// belongs once no tombstones remain.
		target := int(t.hashFunc(s.key) % uint64(t.capacity))
		for t.slots[target].state == slotFull {
			target++
			if target == t.capacity {
				target = 0
			}
		}

		d := &t.slots[target]
		switch {
		case target == i:
			// Already home.
			s.state = slotFull
		case d.state == slotEmpty:
			d.state = slotFull
			d.key, d.value = s.key, s.value
			s.state = slotEmpty
			s.key, s.value = nil, t.emptyV
		default:
			// Destination holds a not-yet-relocated entry: swap, then
			// process this slot again with the displaced entry.
			d.state = slotFull
			s.key, d.key = d.key, s.key
			s.value, d.value = d.value, s.value
			i--
		}
	}

	t.tombstones = 0
}
