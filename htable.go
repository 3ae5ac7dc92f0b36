package htable

import (
	"fmt"
	"strings"
)

const (
	// InitialCapacity is the slot count of a new table. Must be a power of two.
	InitialCapacity = 16

	growthFactor = 2

	// Growth is triggered once length/capacity reaches loadNum/loadDen.
	loadNum = 1
	loadDen = 2
)

// slotLimit caps the size of a slot array. Zero means no limit.
var slotLimit int

// slot is empty when value is nil.
type slot[V any] struct {
	key   string
	value *V
}

// Table is a string-keyed hash table using open addressing with linear probing.
// Values are opaque handles: the table stores the pointer and never reads
// through it.
//
// A Table is not safe for concurrent use.
type Table[V any] struct {
	slots  []slot[V]
	length int
}

// New creates an empty table with InitialCapacity slots.
func New[V any]() (*Table[V], error) {
	slots, err := allocSlots[V](InitialCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &Table[V]{slots: slots}, nil
}

// Destroy releases every stored key and the slot array. The table must not
// be used afterwards.
func (t *Table[V]) Destroy() {
	for i := range t.slots {
		t.slots[i] = slot[V]{}
	}
	t.slots = nil
	t.length = 0
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int {
	return t.length
}

// Cap returns the number of slots.
func (t *Table[V]) Cap() int {
	return len(t.slots)
}

// Get returns the value stored for key, or nil if key is absent.
func (t *Table[V]) Get(key string) *V {
	if !validKey(key) {
		return nil
	}

	capacity := len(t.slots)
	idx := bucket(Hash(key), capacity)

	for t.slots[idx].value != nil {
		if t.slots[idx].key == key {
			return t.slots[idx].value
		}
		idx++
		if idx >= capacity {
			idx = 0
		}
	}
	return nil
}

// Contains reports whether key is stored.
func (t *Table[V]) Contains(key string) bool {
	return t.Get(key) != nil
}

// Set stores value under key, replacing any previous value, and returns the
// table's own copy of the key. A nil value is rejected with ErrNilValue and
// a key containing a NUL byte with ErrInvalidKey. On any error the table is
// left unchanged.
func (t *Table[V]) Set(key string, value *V) (string, error) {
	if value == nil {
		return "", ErrNilValue
	}
	if !validKey(key) {
		return "", ErrInvalidKey
	}

	if t.length*loadDen >= len(t.slots)*loadNum {
		if err := t.grow(); err != nil {
			return "", err
		}
	}

	stored, added := setEntry(t.slots, key, value, true)
	if added {
		t.length++
	}
	return stored, nil
}

// setEntry places key in slots without growing. When own is set a new key is
// cloned before it is stored; grow passes keys it already owns.
func setEntry[V any](slots []slot[V], key string, value *V, own bool) (stored string, added bool) {
	capacity := len(slots)
	idx := bucket(Hash(key), capacity)

	for slots[idx].value != nil {
		if slots[idx].key == key {
			slots[idx].value = value
			return slots[idx].key, false
		}
		idx++
		if idx >= capacity {
			idx = 0
		}
	}

	if own {
		key = strings.Clone(key)
	}
	slots[idx] = slot[V]{key: key, value: value}
	return key, true
}

func (t *Table[V]) grow() error {
	capacity := len(t.slots)
	newCapacity := capacity * growthFactor
	if newCapacity <= capacity {
		panic(fmt.Sprintf("htable: capacity overflow growing from %d slots", capacity))
	}

	slots, err := allocSlots[V](newCapacity)
	if err != nil {
		return fmt.Errorf("failed to grow table: %w", err)
	}

	for _, s := range t.slots {
		if s.value != nil {
			setEntry(slots, s.key, s.value, false)
		}
	}

	t.slots = slots
	return nil
}

func allocSlots[V any](n int) (slots []slot[V], err error) {
	if slotLimit > 0 && n > slotLimit {
		return nil, fmt.Errorf("%w: %d slots exceeds limit of %d", ErrAllocation, n, slotLimit)
	}

	// make reports an impossible length by panicking.
	defer func() {
		if r := recover(); r != nil {
			slots, err = nil, fmt.Errorf("%w: %d slots: %v", ErrAllocation, n, r)
		}
	}()

	return make([]slot[V], n), nil
}

func validKey(key string) bool {
	return strings.IndexByte(key, 0) < 0
}
