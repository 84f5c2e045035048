package encoding

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/emforge/emstr/errs"
)

func TestChecksum_Write(t *testing.T) {
	data := []byte("cpu.usage")

	enc := Checksum(data)
	require.Equal(t, ChecksumLen, enc.Len())

	var buf [32]byte
	n, err := enc.Write(buf[:])
	require.NoError(t, err)
	require.Equal(t, ChecksumLen, n)

	want := fmt.Sprintf("%016x", xxhash.Sum64(data))
	require.Equal(t, want, string(buf[:n]))
}

func TestChecksum_Deterministic(t *testing.T) {
	var a, b [16]byte

	_, err := Checksum([]byte("payload")).Write(a[:])
	require.NoError(t, err)
	_, err = Checksum([]byte("payload")).Write(b[:])
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestChecksum_EmptyInput(t *testing.T) {
	// The digest of an empty span is still a full-width hex string.
	enc := Checksum(nil)
	require.Equal(t, ChecksumLen, enc.Len())

	var buf [16]byte
	n, err := enc.Write(buf[:])
	require.NoError(t, err)

	want := fmt.Sprintf("%016x", xxhash.Sum64(nil))
	require.Equal(t, want, string(buf[:n]))
}

func TestChecksum_ShortBuffer(t *testing.T) {
	buf := make([]byte, ChecksumLen-1)
	n, err := Checksum([]byte("x")).Write(buf)
	require.ErrorIs(t, err, errs.ErrBufferLength)
	require.Equal(t, 0, n)
}
