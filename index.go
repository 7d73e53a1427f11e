package gltf

import (
	"reflect"
	"strconv"
)

// Index addresses a slot in the Root collection holding elements of type T.
// The zero value addresses the first element. An Index decodes from and
// encodes to a plain non-negative JSON integer; range checks happen once,
// for the whole document, when it is imported.
type Index[T any] uint32

// Value returns the raw position.
func (i Index[T]) Value() uint32 { return uint32(i) }

func (i Index[T]) String() string { return strconv.FormatUint(uint64(i), 10) }

func (i Index[T]) target() reflect.Type { return reflect.TypeFor[T]() }

// indexRef is implemented by every Index instantiation.
type indexRef interface {
	Value() uint32
	target() reflect.Type
}

var indexRefType = reflect.TypeFor[indexRef]()

// at returns a pointer to s[i], or nil when i is out of range.
func at[T any](s []T, i Index[T]) *T {
	if int64(i) >= int64(len(s)) {
		return nil
	}
	return &s[i]
}
