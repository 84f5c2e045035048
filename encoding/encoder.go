package encoding

import (
	"unicode/utf8"
	"unsafe"

	"github.com/emforge/emstr/errs"
)

// StrEncoder is the two-phase contract implemented by every encodable value.
//
// Len and Write must agree exactly: callers are entitled to allocate Len()
// bytes and expect Write to fill all of them and no more. A caller that sizes
// its buffer via Len never observes errs.ErrBufferLength.
type StrEncoder interface {
	// Len returns the exact number of bytes the value occupies when written.
	// It has no side effects.
	Len() int

	// Write encodes the value starting at buf[0] and returns the number of
	// bytes written, always equal to Len() on success. It returns
	// errs.ErrBufferLength if buf is smaller than Len(), without writing
	// past len(buf).
	Write(buf []byte) (int, error)
}

// WriteString encodes e into buf and returns the written bytes as a string
// view.
//
// The returned string aliases buf without copying; it remains valid only
// until buf is next modified. Callers that need an owned string should use
// emstr.Sprint instead.
//
// Parameters:
//   - e: Value to encode
//   - buf: Destination buffer, at least e.Len() bytes
//
// Returns:
//   - string: Zero-copy view over buf[:n]
//   - error: errs.ErrBufferLength if buf is too small, errs.ErrInvalidUTF8
//     if the written bytes are not valid UTF-8
func WriteString(e StrEncoder, buf []byte) (string, error) {
	n, err := e.Write(buf)
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
