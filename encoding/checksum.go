package encoding

import (
	"github.com/emforge/emstr/endian"
	"github.com/emforge/emstr/errs"
	"github.com/emforge/emstr/internal/hash"
)

// ChecksumLen is the encoded length of a Checksum: a 64-bit digest as
// lowercase hex.
const ChecksumLen = 16

// Checksum encodes the xxHash64 digest of a byte span as exactly 16
// lowercase hexadecimal characters, most significant byte first. It gives
// composed strings a compact content identifier without allocating.
type Checksum []byte

// Len returns ChecksumLen.
func (c Checksum) Len() int {
	return ChecksumLen
}

// Write computes the digest of the span and encodes it as hex into buf.
//
// Returns:
//   - int: ChecksumLen on success
//   - error: errs.ErrBufferLength if buf is smaller than ChecksumLen
func (c Checksum) Write(buf []byte) (int, error) {
	if len(buf) < ChecksumLen {
		return 0, errs.ErrBufferLength
	}

	var sum [8]byte
	endian.GetBigEndianEngine().PutUint64(sum[:], hash.Sum64(c))

	return Hex(sum[:]).Write(buf)
}
