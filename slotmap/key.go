package slotmap

// Key identifies a value stored in a slot map. Keys are totally ordered,
// comparable, and usable as Go map keys. A Key carries no liveness
// information: whether it currently references an occupied slot is
// answered by Contains, and key values are recycled after removal.
type Key uint64

// NewKey creates a Key with the specified numeric value.
func NewKey(value uint64) Key { return Key(value) }

// Value returns the underlying numeric value of the Key.
func (k Key) Value() uint64 { return uint64(k) }
