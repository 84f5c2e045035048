package encoding

import "github.com/emforge/emstr/errs"

// PadLeft wraps an encoder and left-pads its output with a fill character up
// to a minimum width. The inner value is never truncated: when it already
// meets or exceeds the width it passes through unchanged.
type PadLeft[E StrEncoder] struct {
	Inner E
	Width int
	Fill  byte
}

// NewPadLeft wraps inner so its output is at least width bytes, preceded by
// fill characters as needed.
//
// Example:
//
//	p := encoding.NewPadLeft(encoding.NewUint(uint8(7)), 3, '0')
//	// encodes "007"
func NewPadLeft[E StrEncoder](inner E, width int, fill byte) PadLeft[E] {
	return PadLeft[E]{Inner: inner, Width: width, Fill: fill}
}

// Len returns max(Width, Inner.Len()).
func (p PadLeft[E]) Len() int {
	return max(p.Width, p.Inner.Len())
}

// Write fills the leading padding bytes and then writes the inner value
// immediately after.
//
// Returns:
//   - int: Number of bytes written, equal to Len() on success
//   - error: errs.ErrBufferLength if buf is smaller than Len()
func (p PadLeft[E]) Write(buf []byte) (int, error) {
	n := p.Inner.Len()
	m := max(p.Width, n)
	if len(buf) < m {
		return 0, errs.ErrBufferLength
	}

	pad := m - n
	for i := 0; i < pad; i++ {
		buf[i] = p.Fill
	}

	if _, err := p.Inner.Write(buf[pad:]); err != nil {
		return 0, err
	}

	return m, nil
}

// PadRight wraps an encoder and right-pads its output with a fill character
// up to a minimum width. The inner value is never truncated.
type PadRight[E StrEncoder] struct {
	Inner E
	Width int
	Fill  byte
}

// NewPadRight wraps inner so its output is at least width bytes, followed by
// fill characters as needed.
//
// Example:
//
//	p := encoding.NewPadRight(encoding.Str("abc"), 6, ' ')
//	// encodes "abc   "
func NewPadRight[E StrEncoder](inner E, width int, fill byte) PadRight[E] {
	return PadRight[E]{Inner: inner, Width: width, Fill: fill}
}

// Len returns max(Width, Inner.Len()).
func (p PadRight[E]) Len() int {
	return max(p.Width, p.Inner.Len())
}

// Write writes the inner value at offset 0 and fills the remaining width
// with the fill character.
//
// Returns:
//   - int: Number of bytes written, equal to Len() on success
//   - error: errs.ErrBufferLength if buf is smaller than Len()
func (p PadRight[E]) Write(buf []byte) (int, error) {
	n := p.Inner.Len()
	m := max(p.Width, n)
	if len(buf) < m {
		return 0, errs.ErrBufferLength
	}

	if _, err := p.Inner.Write(buf); err != nil {
		return 0, err
	}

	for i := n; i < m; i++ {
		buf[i] = p.Fill
	}

	return m, nil
}
