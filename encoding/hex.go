package encoding

import "github.com/emforge/emstr/errs"

// hexChars maps a nibble value to its lowercase hexadecimal character.
const hexChars = "0123456789abcdef"

// Hex encodes a byte span as lowercase hexadecimal, two characters per input
// byte, with no separators. The encoder borrows the span.
type Hex []byte

// Len returns twice the span length.
func (h Hex) Len() int {
	return len(h) * 2
}

// Write encodes the span as hex into buf.
//
// Returns:
//   - int: Number of bytes written, equal to 2*len(h) on success
//   - error: errs.ErrBufferLength if buf is smaller than 2*len(h)
func (h Hex) Write(buf []byte) (int, error) {
	n := len(h) * 2
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	for i, b := range h {
		buf[i*2] = hexChars[b>>4]
		buf[i*2+1] = hexChars[b&0x0f]
	}

	return n, nil
}
