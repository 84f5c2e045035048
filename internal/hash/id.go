// Package hash provides the content digest used by the checksum encoder.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of the given byte span.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
