package mem

import (
	"fmt"
	"reflect"
)

// Shareable reports whether values of t can live in arena memory.
//
// Arenas are raw bytes to the garbage collector, and in the shared-memory
// case they are mapped into other processes where Go pointers mean
// nothing. A shareable type therefore contains no pointers of any kind:
// no pointers, slices, strings, maps, channels, funcs, or interfaces,
// at any nesting depth. Fixed-size scalars, arrays, and structs of
// shareable fields qualify.
func Shareable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return Shareable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !Shareable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ShareableOf reports whether T is shareable.
func ShareableOf[T any]() bool {
	return Shareable(reflect.TypeFor[T]())
}

// MustBeShareable panics if T cannot live in arena memory. Container
// constructors call it so that a pointer-bearing element type fails loudly
// at construction instead of corrupting silently under the collector.
func MustBeShareable[T any]() {
	if t := reflect.TypeFor[T](); !Shareable(t) {
		panic(fmt.Sprintf("mem: %v contains Go pointers and cannot be stored in arena memory", t))
	}
}
