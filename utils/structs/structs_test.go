package structs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestStructs(t *testing.T) {
	t.Run("Vector/W64/Serialization&Equatable", func(t *testing.T) {
		testVector[uint64](t)
	})

	t.Run("Vector/W32/Serialization&Equatable", func(t *testing.T) {
		testVector[uint32](t)
	})

	t.Run("Vector/W16/Serialization&Equatable", func(t *testing.T) {
		testVector[uint16](t)
	})

	t.Run("Vector/W8/Serialization&Equatable", func(t *testing.T) {
		testVector[uint8](t)
	})
}

func testVector[T constraints.Unsigned](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i)
	}
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	vNew := Vector[T]{}
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew)) // also tests Equatable
	require.True(t, v.Equal(vNew))
}

func TestVectorUnmarshalInvalid(t *testing.T) {
	v := Vector[uint32]{}
	require.Error(t, v.UnmarshalBinary([]byte{0x00}))

	data, err := Vector[uint32]{1, 2, 3}.MarshalBinary()
	require.NoError(t, err)
	require.Error(t, v.UnmarshalBinary(data[:len(data)-1]))
}
