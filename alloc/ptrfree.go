// File: alloc/ptrfree.go
// Author: momentics <momentics@gmail.com>
//
// Pointer-freeness check. Only types the collector never needs to
// scan may live in storage outside the Go heap.

package alloc

import "reflect"

// pointerFree reports whether T contains no pointers at any depth.
func pointerFree[T any]() bool {
	var z *T
	return typePointerFree(reflect.TypeOf(z).Elem())
}

func typePointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return typePointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !typePointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// strings, slices, maps, channels, funcs, pointers, interfaces
		return false
	}
}
