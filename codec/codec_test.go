package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {

	t.Run("SingleByte", func(t *testing.T) {
		cps, err := Decode([]byte("A"))
		require.NoError(t, err)
		require.Equal(t, []uint32{0x41}, cps)
	})

	t.Run("TwoBytes", func(t *testing.T) {
		cps, err := Decode([]byte{0xC2, 0xA2}) // U+00A2
		require.NoError(t, err)
		require.Equal(t, []uint32{0xA2}, cps)
	})

	t.Run("ThreeBytes", func(t *testing.T) {
		cps, err := Decode([]byte("안")) // U+C548
		require.NoError(t, err)
		require.Equal(t, []uint32{0xC548}, cps)
	})

	t.Run("FourBytes", func(t *testing.T) {
		cps, err := Decode([]byte{0xF0, 0x9F, 0x98, 0x80}) // U+1F600
		require.NoError(t, err)
		require.Equal(t, []uint32{0x1F600}, cps)
	})

	t.Run("Mixed", func(t *testing.T) {
		cps, err := Decode([]byte("Hi 안녕"))
		require.NoError(t, err)
		require.Equal(t, []uint32{0x48, 0x69, 0x20, 0xC548, 0xB155}, cps)
	})

	t.Run("Empty", func(t *testing.T) {
		cps, err := Decode(nil)
		require.NoError(t, err)
		require.Empty(t, cps)
	})
}

func TestDecodeInvalid(t *testing.T) {

	for _, tc := range []struct {
		name string
		in   []byte
	}{
		{"InvalidLeadingByte", []byte{0xFF}},
		{"ContinuationAlone", []byte{0x80}},
		{"Truncated2Byte", []byte{0xC2}},
		{"Truncated3Byte", []byte{0xEC, 0x95}},
		{"Truncated4Byte", []byte{0xF0, 0x9F, 0x98}},
		{"BadContinuation2Byte", []byte{0xC2, 0x41}},
		{"BadContinuation3Byte", []byte{0xEC, 0x95, 0x41}},
		{"BadContinuation4Byte", []byte{0xF0, 0x9F, 0x41, 0x80}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in)
			require.ErrorIs(t, err, ErrInvalidUTF8)
		})
	}
}

func TestEncode(t *testing.T) {

	t.Run("LengthThresholds", func(t *testing.T) {
		for _, tc := range []struct {
			cp  uint32
			len int
		}{
			{0x00, 1}, {0x7F, 1},
			{0x80, 2}, {0x7FF, 2},
			{0x800, 3}, {0xFFFF, 3},
			{0x10000, 4}, {0x10FFFF, 4},
		} {
			b, err := Encode([]uint32{tc.cp})
			require.NoError(t, err)
			require.Len(t, b, tc.len, "U+%04X", tc.cp)
		}
	})

	t.Run("EncodedLen", func(t *testing.T) {
		cps := []uint32{0x41, 0xA2, 0xC548, 0x1F600}
		require.Equal(t, 1+2+3+4, EncodedLen(cps))

		b, err := Encode(cps)
		require.NoError(t, err)
		require.Len(t, b, EncodedLen(cps))
	})

	t.Run("AboveMaxCodePoint", func(t *testing.T) {
		_, err := Encode([]uint32{MaxCodePoint + 1})
		require.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("BufferTooSmall", func(t *testing.T) {
		dst := make([]byte, 2)
		_, err := EncodeTo(dst, []uint32{0xC548})
		require.ErrorIs(t, err, ErrBufferTooSmall)
	})
}

func TestRoundTrip(t *testing.T) {

	t.Run("BytesToBytes", func(t *testing.T) {
		for _, s := range []string{"", "A", "Hello", "안녕하세요", "Hi 안녕", "😀", "a😀b"} {
			cps, err := Decode([]byte(s))
			require.NoError(t, err)
			b, err := Encode(cps)
			require.NoError(t, err)
			require.Equal(t, []byte(s), b)
		}
	})

	t.Run("CodePointsToCodePoints", func(t *testing.T) {
		// Includes surrogate halves: the codec does not reject them.
		cs := []uint32{0x00, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xD800, 0xDFFF, 0xFFFF, 0x10000, 0x1F600, 0x10FFFF}
		b, err := Encode(cs)
		require.NoError(t, err)
		out, err := Decode(b)
		require.NoError(t, err)
		require.Equal(t, cs, out)
	})
}
