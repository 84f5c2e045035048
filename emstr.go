// Package emstr provides zero-allocation string encoding into caller-supplied
// byte buffers.
//
// Every encodable value implements a two-phase contract: Len reports the
// exact encoded size, Write fills a buffer of at least that size. Because the
// length is known up front, heterogeneous values compose into one fixed
// buffer with no heap allocation, which suits hot formatting paths and
// constrained execution environments.
//
// # Basic Usage
//
// Concatenating values into a stack buffer:
//
//	import (
//	    "github.com/emforge/emstr"
//	    "github.com/emforge/emstr/encoding"
//	)
//
//	name := encoding.Str("something")
//	progress := encoding.NewUint(uint8(15))
//
//	var buf [32]byte
//	n, _ := emstr.Concat(buf[:],
//	    name, encoding.Char(' '),
//	    progress, encoding.Char('/'), encoding.NewUint(uint8(100)),
//	)
//	// buf[:n] == "something 15/100"
//
// Fixed-point and padded fields:
//
//	temp := encoding.NewFractional(int32(23041), 1000) // millidegrees
//	id := encoding.NewPadLeft(encoding.NewUint(uint16(7)), 4, '0')
//	// temp encodes "23.041", id encodes "0007"
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// package, which holds the individual encoders and the StrEncoder contract.
// The errs package defines the closed error set.
package emstr

import (
	"unicode/utf8"

	"github.com/emforge/emstr/encoding"
	"github.com/emforge/emstr/errs"
	"github.com/emforge/emstr/internal/pool"
)

// StrEncoder is the two-phase length/write contract. See encoding.StrEncoder.
type StrEncoder = encoding.StrEncoder

// Concat writes values consecutively into buf and returns the total bytes
// written. It is a convenience wrapper for encoding.Concat; see that
// function for the fail-fast error semantics.
func Concat(buf []byte, values ...StrEncoder) (int, error) {
	return encoding.Concat(buf, values...)
}

// ConcatString concatenates values into buf and returns a zero-copy string
// view aliasing buf. See encoding.ConcatString.
func ConcatString(buf []byte, values ...StrEncoder) (string, error) {
	return encoding.ConcatString(buf, values...)
}

// Sprint concatenates values into an owned string.
//
// Unlike Concat this allocates: the scratch buffer comes from an internal
// pool and only the returned string itself is a fresh allocation. Use it at
// the edges where an owned string is required; use Concat with a
// caller-supplied buffer on zero-allocation paths.
//
// Returns:
//   - string: The concatenated encoding of all values
//   - error: The first Write error, or errs.ErrInvalidUTF8 if the combined
//     bytes are not valid UTF-8
func Sprint(values ...StrEncoder) (string, error) {
	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)

	buf := bb.Sized(encoding.TotalLen(values...))

	n, err := encoding.Concat(buf, values...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf[:n]) {
		return "", errs.ErrInvalidUTF8
	}

	return string(buf[:n]), nil
}
