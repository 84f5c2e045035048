// Package encoding implements the fixed-buffer string encoders at the core of
// emstr.
//
// Every encoder in this package satisfies the StrEncoder contract: compute the
// exact output length first, then write into a caller-supplied buffer of at
// least that length. Because length is known before a single byte is written,
// callers can size a buffer once (typically a stack array) and compose many
// values into it without any heap allocation.
//
// # Encoders
//
//   - Uint[T] / Int[T]: decimal ASCII for every fixed integer width
//   - Str / Bytes / Char: verbatim text, byte spans and single characters
//   - Hex: lowercase hexadecimal, two characters per input byte
//   - Fractional[T]: scaled integers rendered as fixed-point decimals
//   - PadLeft[E] / PadRight[E]: minimum-width wrappers around any encoder
//   - Checksum: xxHash64 content digest rendered as 16 hex characters
//
// # Composition
//
// Concat writes an ordered sequence of heterogeneous encoders into one buffer:
//
//	var buf [32]byte
//	n, err := encoding.Concat(buf[:],
//	    encoding.Str("something"), encoding.Char(' '),
//	    encoding.NewUint(uint8(15)), encoding.Char('/'),
//	    encoding.NewUint(uint8(100)),
//	)
//	// buf[:n] == "something 15/100"
//
// # Error Handling
//
// The only failure modes are errs.ErrBufferLength (destination too small for
// the computed length) and errs.ErrInvalidUTF8 (string-view helpers over
// non-UTF-8 bytes). Encoders never panic on short buffers and never write
// past the reported length.
//
// # Thread Safety
//
// All encoders are immutable values and all operations are pure functions
// over the provided buffer. Concurrent encoding into distinct buffers needs
// no synchronization; exclusive access to a given buffer region per call is
// the caller's responsibility.
package encoding
