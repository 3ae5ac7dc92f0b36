package htable

// Iterator walks the occupied slots of a Table in slot order. It is single
// pass: once Next returns false it keeps returning false.
//
// The table must not be modified while an Iterator over it is in use.
type Iterator[V any] struct {
	table *Table[V]
	idx   int
	key   string
	value *V
}

// Iterator returns an iterator positioned before the first slot.
func (t *Table[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{table: t}
}

// Next advances to the next stored pair and reports whether there was one.
// It must be called before the first Key or Value.
func (it *Iterator[V]) Next() bool {
	slots := it.table.slots
	for it.idx < len(slots) {
		s := slots[it.idx]
		it.idx++
		if s.value != nil {
			it.key, it.value = s.key, s.value
			return true
		}
	}
	it.key, it.value = "", nil
	return false
}

// Key returns the current key. The string is the table's own copy.
func (it *Iterator[V]) Key() string {
	return it.key
}

func (it *Iterator[V]) Value() *V {
	return it.value
}

// Range calls fn for every stored pair until fn returns false.
func (t *Table[V]) Range(fn func(key string, value *V) bool) {
	it := t.Iterator()
	for it.Next() {
		if !fn(it.key, it.value) {
			return
		}
	}
}
