// Package pointer exposes the numeric address of pointers.
//
// The functions neither validate nor dereference their arguments. An address
// obtained here does not keep the pointee alive and is only meaningful while
// the caller holds the original pointer.
package pointer

import "unsafe"

// Address returns the address p points at, or 0 for nil.
func Address[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// AddressOf returns the address held by p.
func AddressOf(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

// SliceAddress returns the address of the first element of s's backing
// array, or 0 if s is nil. A non-nil empty slice may report any address.
func SliceAddress[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// Cast returns p retyped as *U. The address is unchanged and nil stays nil.
func Cast[U, T any](p *T) *U {
	return (*U)(unsafe.Pointer(p))
}
