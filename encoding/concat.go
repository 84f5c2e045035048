package encoding

import (
	"unicode/utf8"
	"unsafe"

	"github.com/emforge/emstr/errs"
)

// Concat writes an ordered sequence of encodable values consecutively into
// buf, advancing the write offset by each value's encoded length.
//
// The first failing value aborts the sequence: the error is returned along
// with the byte count written so far, and bytes already written before the
// failing element remain in buf. There is no partial rollback.
//
// Parameters:
//   - buf: Destination buffer for the concatenated encoding
//   - values: Values to encode, written in argument order
//
// Returns:
//   - int: Total bytes written
//   - error: The first error returned by a value's Write, typically
//     errs.ErrBufferLength when the remaining buffer space runs out
func Concat(buf []byte, values ...StrEncoder) (int, error) {
	n := 0
	for _, v := range values {
		w, err := v.Write(buf[n:])
		if err != nil {
			return n, err
		}
		n += w
	}

	return n, nil
}

// ConcatString concatenates values into buf and returns the result as a
// string view aliasing buf, valid until buf is next modified.
//
// Returns:
//   - string: Zero-copy view over the concatenated bytes
//   - error: The first Write error, or errs.ErrInvalidUTF8 if the combined
//     bytes are not valid UTF-8
func ConcatString(buf []byte, values ...StrEncoder) (string, error) {
	n, err := Concat(buf, values...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf[:n]) {
		return "", errs.ErrInvalidUTF8
	}
	if n == 0 {
		return "", nil
	}

	return unsafe.String(&buf[0], n), nil
}

// TotalLen returns the combined encoded length of values, the exact buffer
// size Concat requires for them.
func TotalLen(values ...StrEncoder) int {
	n := 0
	for _, v := range values {
		n += v.Len()
	}

	return n
}
