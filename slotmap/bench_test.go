package slotmap

import "testing"

// BenchmarkSlotMap_InsertRemoveCycle measures the steady-state recycling
// path: remove one entry, insert a replacement.
func BenchmarkSlotMap_InsertRemoveCycle(b *testing.B) {
	const capacity = 1024
	m := New[uint64](capacity)

	keys := make([]Key, 0, capacity)
	for i := uint64(0); i < capacity; i++ {
		k, _ := m.Insert(i)
		keys = append(keys, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := i % capacity
		m.Remove(keys[slot])
		k, ok := m.Insert(uint64(i))
		if !ok {
			b.Fatal("reinsert after remove failed")
		}
		keys[slot] = k
	}
}

// BenchmarkSlotMap_Get measures lookup of a live key.
func BenchmarkSlotMap_Get(b *testing.B) {
	const capacity = 1024
	m := New[uint64](capacity)
	for i := uint64(0); i < capacity; i++ {
		m.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(NewKey(uint64(i % capacity))); !ok {
			b.Fatal("live key must resolve")
		}
	}
}

// BenchmarkSlotMap_Iterate measures a full walk of a half-occupied map.
func BenchmarkSlotMap_Iterate(b *testing.B) {
	const capacity = 1024
	m := New[uint64](capacity)
	for i := uint64(0); i < capacity; i++ {
		k, _ := m.Insert(i)
		if i%2 == 0 {
			m.Remove(k)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iter()
		for {
			if _, _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkFixedSlotMap_InsertRemoveCycle compares the placed variant on
// the same workload as the heap variant.
func BenchmarkFixedSlotMap_InsertRemoveCycle(b *testing.B) {
	const capacity = 1024
	m := NewFixed[uint64](capacity)

	keys := make([]Key, 0, capacity)
	for i := uint64(0); i < capacity; i++ {
		k, _ := m.Insert(i)
		keys = append(keys, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := i % capacity
		m.Remove(keys[slot])
		k, ok := m.Insert(uint64(i))
		if !ok {
			b.Fatal("reinsert after remove failed")
		}
		keys[slot] = k
	}
}
