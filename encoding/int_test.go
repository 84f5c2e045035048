package encoding

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emforge/emstr/errs"
)

func checkUint[T UnsignedInt](t *testing.T, v T) {
	t.Helper()

	want := strconv.FormatUint(uint64(v), 10)
	enc := NewUint(v)

	require.Equal(t, len(want), enc.Len(), "length mismatch for value %s", want)

	var buf [32]byte
	n, err := enc.Write(buf[:])
	require.NoError(t, err)
	require.Equal(t, want, string(buf[:n]))
}

func checkInt[T SignedInt](t *testing.T, v T) {
	t.Helper()

	want := strconv.FormatInt(int64(v), 10)
	enc := NewInt(v)

	require.Equal(t, len(want), enc.Len(), "length mismatch for value %s", want)

	var buf [32]byte
	n, err := enc.Write(buf[:])
	require.NoError(t, err)
	require.Equal(t, want, string(buf[:n]))
}

func TestUint_AllWidths(t *testing.T) {
	t.Run("uint8 full range", func(t *testing.T) {
		for i := 0; i <= math.MaxUint8; i++ {
			checkUint(t, uint8(i))
		}
	})

	t.Run("uint16 sampled", func(t *testing.T) {
		for i := 0; i <= math.MaxUint16; i += 7 {
			checkUint(t, uint16(i))
		}
		checkUint(t, uint16(math.MaxUint16))
	})

	t.Run("uint32 boundaries", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 9, 10, 99, 100, 4294967295} {
			checkUint(t, v)
		}
	})

	t.Run("uint64 boundaries", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 1243566, math.MaxInt64, math.MaxUint64} {
			checkUint(t, v)
		}
	})

	t.Run("uint word size", func(t *testing.T) {
		for _, v := range []uint{0, 42, math.MaxUint32} {
			checkUint(t, v)
		}
	})
}

func TestInt_AllWidths(t *testing.T) {
	t.Run("int8 full range", func(t *testing.T) {
		for i := math.MinInt8; i <= math.MaxInt8; i++ {
			checkInt(t, int8(i))
		}
	})

	t.Run("int16 sampled", func(t *testing.T) {
		for i := math.MinInt16; i <= math.MaxInt16; i += 7 {
			checkInt(t, int16(i))
		}
		checkInt(t, int16(math.MaxInt16))
	})

	t.Run("int32 boundaries", func(t *testing.T) {
		for _, v := range []int32{0, 1, -1, 10, -10, math.MinInt32, math.MaxInt32} {
			checkInt(t, v)
		}
	})

	t.Run("int64 boundaries", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 1243566, -1243566, math.MaxInt64, math.MinInt64 + 1} {
			checkInt(t, v)
		}
	})

	t.Run("int word size", func(t *testing.T) {
		for _, v := range []int{0, -42, 42, math.MinInt32} {
			checkInt(t, v)
		}
	})
}

// The minimum value of each signed width has no positive counterpart in the
// same width; the unsigned magnitude conversion must still encode it exactly.
func TestInt_SignedMinimum(t *testing.T) {
	checkInt(t, int8(math.MinInt8))
	checkInt(t, int16(math.MinInt16))
	checkInt(t, int32(math.MinInt32))
	checkInt(t, int64(math.MinInt64))

	var buf [32]byte
	n, err := NewInt(int64(math.MinInt64)).Write(buf[:])
	require.NoError(t, err)
	require.Equal(t, "-9223372036854775808", string(buf[:n]))
}

func TestInt_ShortBuffer(t *testing.T) {
	enc := NewInt(int32(-1050))
	require.Equal(t, 5, enc.Len())

	buf := make([]byte, enc.Len()-1)
	n, err := enc.Write(buf)
	require.ErrorIs(t, err, errs.ErrBufferLength)
	require.Equal(t, 0, n)
}

func TestUint_ShortBuffer(t *testing.T) {
	enc := NewUint(uint16(1050))

	buf := make([]byte, enc.Len()-1)
	n, err := enc.Write(buf)
	require.ErrorIs(t, err, errs.ErrBufferLength)
	require.Equal(t, 0, n)

	// Zero still needs one byte.
	n, err = NewUint(uint8(0)).Write(nil)
	require.ErrorIs(t, err, errs.ErrBufferLength)
	require.Equal(t, 0, n)
}

func TestInt_Idempotent(t *testing.T) {
	enc := NewInt(int64(-987654321))

	var a, b [32]byte
	n1, err := enc.Write(a[:])
	require.NoError(t, err)
	n2, err := enc.Write(b[:])
	require.NoError(t, err)

	require.Equal(t, n1, n2)
	require.Equal(t, a[:n1], b[:n2])
}
