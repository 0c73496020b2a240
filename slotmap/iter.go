package slotmap

// Iter walks the occupied entries of a slot map in ascending key order.
// Each Iter call on the map starts a fresh, independent traversal at key
// zero. Iteration does not mutate the map and takes no snapshot: entries
// inserted or removed mid-walk may or may not be observed, consistent
// with the engine's single-owner concurrency model.
type Iter[T any] struct {
	m    *RelocatableSlotMap[T]
	next uint64
}

// Iter returns an iterator over all stored (Key, value) entries.
func (m *RelocatableSlotMap[T]) Iter() *Iter[T] {
	return &Iter[T]{m: m}
}

// Next returns the next occupied entry in ascending key order. The value
// pointer is live, like Get's. The third return is false when the
// traversal is exhausted.
func (it *Iter[T]) Next() (Key, *T, bool) {
	for n := it.next; n < it.m.Capacity(); n++ {
		dataIdx := *it.m.idxToData.At(n)
		if dataIdx == invalidIndex {
			continue
		}
		it.next = n + 1
		return Key(n), &it.m.data.At(dataIdx).value, true
	}
	it.next = it.m.Capacity()
	return 0, nil, false
}
