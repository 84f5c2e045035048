// Package errs defines the sentinel errors shared across emstr packages.
//
// The error surface is a closed set of two kinds. Every fallible encoder
// operation returns one of them; there are no wrapped payloads and no
// unrecoverable class. Callers match with errors.Is:
//
//	n, err := enc.Write(buf)
//	if errors.Is(err, errs.ErrBufferLength) {
//	    // grow the buffer to enc.Len() and retry
//	}
package errs

import "errors"

var (
	// ErrBufferLength indicates the destination buffer is smaller than the
	// encoder's computed output length. A caller that sizes its buffer via
	// Len() never observes this error; the check is a safety net for buffers
	// sized by other means.
	ErrBufferLength = errors.New("destination buffer smaller than encoded length")

	// ErrInvalidUTF8 indicates the encoded bytes do not form valid UTF-8 when
	// interpreted as text. It only arises from the string-view helpers, never
	// from pure byte writing.
	ErrInvalidUTF8 = errors.New("encoded bytes are not valid UTF-8")
)
