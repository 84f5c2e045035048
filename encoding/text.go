package encoding

import "github.com/emforge/emstr/errs"

// Str encodes a string verbatim.
type Str string

// Len returns the byte length of the string.
func (s Str) Len() int {
	return len(s)
}

// Write copies the string bytes into buf.
//
// Returns:
//   - int: Number of bytes written, equal to len(s) on success
//   - error: errs.ErrBufferLength if buf is smaller than len(s)
func (s Str) Write(buf []byte) (int, error) {
	n := len(s)
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	copy(buf[:n], s)

	return n, nil
}

// Bytes encodes a byte span verbatim. The encoder borrows the span; the
// bytes must remain valid until Write returns.
type Bytes []byte

// Len returns the length of the span.
func (b Bytes) Len() int {
	return len(b)
}

// Write copies the span into buf.
//
// Returns:
//   - int: Number of bytes written, equal to len(b) on success
//   - error: errs.ErrBufferLength if buf is smaller than len(b)
func (b Bytes) Write(buf []byte) (int, error) {
	n := len(b)
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	copy(buf[:n], b)

	return n, nil
}

// Char encodes a single byte character. Multi-byte runes are out of scope;
// use Str for arbitrary UTF-8 text.
type Char byte

// Len returns 1.
func (c Char) Len() int {
	return 1
}

// Write stores the character at buf[0].
//
// Returns:
//   - int: 1 on success
//   - error: errs.ErrBufferLength if buf is empty
func (c Char) Write(buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, errs.ErrBufferLength
	}

	buf[0] = byte(c)

	return 1, nil
}
