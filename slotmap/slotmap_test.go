package slotmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlotMap_InsertGetRoundTrip verifies stored values come back under
// their keys and pointers are live.
func TestSlotMap_InsertGetRoundTrip(t *testing.T) {
	m := New[uint64](8)

	key, ok := m.Insert(78181)
	require.True(t, ok)

	v, ok := m.Get(key)
	require.True(t, ok)
	assert.Equal(t, uint64(78181), *v)

	*v = 4711
	v2, ok := m.Get(key)
	require.True(t, ok)
	assert.Equal(t, uint64(4711), *v2, "Get hands out a live reference")
}

// TestSlotMap_KeysAreStable verifies removing other entries never moves
// a surviving entry's key.
func TestSlotMap_KeysAreStable(t *testing.T) {
	m := New[uint64](8)

	keys := make([]Key, 0, 8)
	for i := uint64(0); i < 8; i++ {
		k, ok := m.Insert(i * 100)
		require.True(t, ok)
		keys = append(keys, k)
	}

	// remove every second entry
	for i := 0; i < 8; i += 2 {
		require.True(t, m.Remove(keys[i]))
	}

	for i := 1; i < 8; i += 2 {
		v, ok := m.Get(keys[i])
		require.True(t, ok, "key %d must survive unrelated removals", keys[i])
		assert.Equal(t, uint64(i)*100, *v)
	}
}

// TestSlotMap_FullContainer verifies Scenario behavior at capacity:
// insert fails without side effects.
func TestSlotMap_FullContainer(t *testing.T) {
	m := New[uint64](4)

	for _, v := range []uint64{10, 20, 30, 40} {
		_, ok := m.Insert(v)
		require.True(t, ok)
	}
	require.True(t, m.IsFull())
	require.Equal(t, uint64(4), m.Len())

	_, ok := m.Insert(50)
	assert.False(t, ok, "insert into a full container must fail")
	assert.Equal(t, uint64(4), m.Len(), "failed insert must not change len")
}

// TestSlotMap_FreeKeysRecycleFIFO pins Scenario A/B: a fresh map hands
// out ascending keys, and a removed key is the next one recycled.
func TestSlotMap_FreeKeysRecycleFIFO(t *testing.T) {
	m := New[uint64](4)

	for i, v := range []uint64{10, 20, 30, 40} {
		k, ok := m.Insert(v)
		require.True(t, ok)
		assert.Equal(t, Key(i), k, "fresh map hands out keys in index order")
	}

	require.True(t, m.Remove(NewKey(1)))

	k, ok := m.Insert(99)
	require.True(t, ok)
	assert.Equal(t, NewKey(1), k, "the freed key is recycled first")

	v, ok := m.Get(NewKey(1))
	require.True(t, ok)
	assert.Equal(t, uint64(99), *v)
}

// TestSlotMap_RemoveIsIdempotent verifies a second remove fails and the
// key reads as absent.
func TestSlotMap_RemoveIsIdempotent(t *testing.T) {
	m := New[uint64](4)

	k, ok := m.Insert(7)
	require.True(t, ok)

	require.True(t, m.Remove(k))
	assert.False(t, m.Remove(k), "second remove must fail")
	assert.False(t, m.Contains(k))
	_, ok = m.Get(k)
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

// TestSlotMap_InsertAtOverwrites verifies in-place replacement under a
// live key leaves len and free lists untouched.
func TestSlotMap_InsertAtOverwrites(t *testing.T) {
	m := New[uint64](4)

	k, ok := m.Insert(1)
	require.True(t, ok)
	lenBefore := m.Len()

	require.True(t, m.InsertAt(k, 2))
	assert.Equal(t, lenBefore, m.Len())

	v, ok := m.Get(k)
	require.True(t, ok)
	assert.Equal(t, uint64(2), *v)

	// the map still fills up to exactly capacity afterwards
	inserted := 1
	for {
		if _, ok := m.Insert(0); !ok {
			break
		}
		inserted++
	}
	assert.Equal(t, 4, inserted)
}

// TestSlotMap_InsertAtBoundary pins the valid key range of InsertAt:
// capacity and above are rejected, capacity-1 is accepted.
func TestSlotMap_InsertAtBoundary(t *testing.T) {
	m := New[uint64](4)

	assert.True(t, m.InsertAt(NewKey(3), 30))
	assert.False(t, m.InsertAt(NewKey(4), 40), "key == capacity is out of range")
	assert.False(t, m.InsertAt(NewKey(5), 50))
	assert.False(t, m.InsertAt(NewKey(^uint64(0)), 60))

	v, ok := m.Get(NewKey(3))
	require.True(t, ok)
	assert.Equal(t, uint64(30), *v)
	_, ok = m.Get(NewKey(4))
	assert.False(t, ok)
}

// TestSlotMap_OutOfRangeKeysAreRecoverable verifies out-of-range keys
// fail softly on every operation.
func TestSlotMap_OutOfRangeKeysAreRecoverable(t *testing.T) {
	m := New[uint64](2)
	far := NewKey(1 << 40)

	_, ok := m.Get(far)
	assert.False(t, ok)
	assert.False(t, m.Contains(far))
	assert.False(t, m.Remove(far))
	assert.False(t, m.InsertAt(far, 1))
	assert.Zero(t, m.Len(), "failed operations must leave the map unchanged")
}

// TestSlotMap_ZeroCapacity verifies the degenerate map is both empty and
// full and rejects everything.
func TestSlotMap_ZeroCapacity(t *testing.T) {
	m := New[uint64](0)

	assert.True(t, m.IsEmpty())
	assert.True(t, m.IsFull())
	_, ok := m.Insert(1)
	assert.False(t, ok)
	assert.False(t, m.InsertAt(NewKey(0), 1))
}

// TestSlotMap_RejectsPointerTypes pins the loud construction failure for
// element types the arena cannot hold.
func TestSlotMap_RejectsPointerTypes(t *testing.T) {
	assert.Panics(t, func() { New[[]byte](4) })
	assert.Panics(t, func() { New[string](4) })
	assert.Panics(t, func() { NewFixed[*uint64](4) })
	assert.NotPanics(t, func() { New[[16]byte](4) })
}

// TestSlotMap_ModelCheck drives a seeded random workload against a plain
// Go map and checks observable state after every step.
func TestSlotMap_ModelCheck(t *testing.T) {
	const capacity = 32
	rng := rand.New(rand.NewSource(0x51077))

	m := New[uint64](capacity)
	model := make(map[Key]uint64)

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(10); {
		case op < 4: // insert
			value := rng.Uint64()
			k, ok := m.Insert(value)
			if uint64(len(model)) == capacity {
				require.False(t, ok, "step %d: insert into full map", step)
			} else {
				require.True(t, ok, "step %d", step)
				_, clash := model[k]
				require.False(t, clash, "step %d: key %d already live", step, k)
				model[k] = value
			}
		case op < 7: // remove a key, live or not
			k := NewKey(uint64(rng.Intn(capacity + 1)))
			_, live := model[k]
			require.Equal(t, live, m.Remove(k), "step %d: remove %d", step, k)
			delete(model, k)
		case op < 9: // overwrite a live key
			k := NewKey(uint64(rng.Intn(capacity + 1)))
			_, live := model[k]
			if live {
				value := rng.Uint64()
				require.True(t, m.InsertAt(k, value), "step %d", step)
				model[k] = value
			}
		default: // read a key, live or not
			k := NewKey(uint64(rng.Intn(capacity + 1)))
			want, live := model[k]
			v, ok := m.Get(k)
			require.Equal(t, live, ok, "step %d: get %d", step, k)
			if live {
				require.Equal(t, want, *v, "step %d", step)
			}
		}

		require.Equal(t, uint64(len(model)), m.Len(), "step %d", step)
		require.Equal(t, len(model) == 0, m.IsEmpty(), "step %d", step)
		require.Equal(t, uint64(len(model)) == uint64(capacity), m.IsFull(), "step %d", step)
	}
}
