// Package structs implements generic structures over basic types, along
// with their serialization.
package structs

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Vector is a slice of unsigned integers with big-endian binary
// serialization.
type Vector[T constraints.Unsigned] []T

// MarshalBinary encodes the vector into a byte slice.
func (v Vector[T]) MarshalBinary() ([]byte, error) {

	sz := int(unsafe.Sizeof(T(0)))

	data := make([]byte, 8+len(v)*sz)
	binary.BigEndian.PutUint64(data, uint64(len(v)))

	ptr := 8
	for _, c := range v {
		putUint(data[ptr:ptr+sz], uint64(c))
		ptr += sz
	}

	return data, nil
}

// UnmarshalBinary decodes a byte slice produced by MarshalBinary on the
// receiver.
func (v *Vector[T]) UnmarshalBinary(data []byte) error {

	sz := int(unsafe.Sizeof(T(0)))

	if len(data) < 8 {
		return fmt.Errorf("invalid Vector encoding: header too short")
	}

	n := int(binary.BigEndian.Uint64(data))

	if len(data) < 8+n*sz {
		return fmt.Errorf("invalid Vector encoding: expected %d bytes but got %d", 8+n*sz, len(data))
	}

	vec := make(Vector[T], n)

	ptr := 8
	for i := range vec {
		vec[i] = T(getUint(data[ptr : ptr+sz]))
		ptr += sz
	}

	*v = vec

	return nil
}

// Equal returns whether both vectors have the same length and elements.
func (v Vector[T]) Equal(other Vector[T]) bool {

	if len(v) != len(other) {
		return false
	}

	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}

	return true
}

func putUint(b []byte, c uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(c)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(c))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(c))
	default:
		binary.BigEndian.PutUint64(b, c)
	}
}

func getUint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(b))
	case 4:
		return uint64(binary.BigEndian.Uint32(b))
	default:
		return binary.BigEndian.Uint64(b)
	}
}
