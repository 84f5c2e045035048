package encoding

import "github.com/emforge/emstr/errs"

// UnsignedInt constrains the fixed unsigned integer widths supported by
// Uint, including the machine word size.
type UnsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// SignedInt constrains the fixed signed integer widths supported by Int and
// Fractional, including the machine word size.
type SignedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// digitChars maps a decimal digit value to its ASCII character.
const digitChars = "0123456789"

// digits returns the number of base-10 digits in v. Zero counts as one digit.
func digits(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}

	return n
}

// putDigits fills buf with the decimal representation of v, writing digits
// from least to most significant so they land in left-to-right order in a
// single backward pass. buf must be exactly digits(v) long; shorter drops
// leading digits, longer zero-pads on the left (the fractional encoder
// relies on the zero-padding behavior).
func putDigits(buf []byte, v uint64) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = digitChars[v%10]
		v /= 10
	}
}

// magnitude returns |v| as an unsigned 64-bit value. The conversion is exact
// for the minimum representable value of every signed width: sign extension
// followed by two's-complement negation yields the true magnitude even where
// negating in the signed domain would overflow.
func magnitude[T SignedInt](v T) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}

	return u
}

// Uint encodes an unsigned integer of any supported width as decimal ASCII.
//
// The zero value encodes as "0". Construct with NewUint to get width
// inference from the argument:
//
//	encoding.NewUint(uint16(1050)) // encodes "1050"
type Uint[T UnsignedInt] struct {
	V T
}

// NewUint wraps v for decimal encoding.
func NewUint[T UnsignedInt](v T) Uint[T] {
	return Uint[T]{V: v}
}

// Len returns the number of decimal digits in the value.
func (u Uint[T]) Len() int {
	return digits(uint64(u.V))
}

// Write encodes the value as decimal ASCII into buf.
//
// Returns:
//   - int: Number of bytes written, equal to Len() on success
//   - error: errs.ErrBufferLength if buf is smaller than Len()
func (u Uint[T]) Write(buf []byte) (int, error) {
	n := u.Len()
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	putDigits(buf[:n], uint64(u.V))

	return n, nil
}

// Int encodes a signed integer of any supported width as decimal ASCII with
// a leading '-' for negative values.
//
// The minimum representable value of each width is fully supported; its
// magnitude is taken through an unsigned conversion rather than a signed
// negation.
type Int[T SignedInt] struct {
	V T
}

// NewInt wraps v for decimal encoding.
func NewInt[T SignedInt](v T) Int[T] {
	return Int[T]{V: v}
}

// Len returns the number of decimal digits in the value, plus one for the
// sign when negative.
func (i Int[T]) Len() int {
	n := digits(magnitude(i.V))
	if i.V < 0 {
		n++
	}

	return n
}

// Write encodes the value as decimal ASCII into buf, sign first for
// negative values.
//
// Returns:
//   - int: Number of bytes written, equal to Len() on success
//   - error: errs.ErrBufferLength if buf is smaller than Len()
func (i Int[T]) Write(buf []byte) (int, error) {
	n := i.Len()
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	start := 0
	if i.V < 0 {
		buf[0] = '-'
		start = 1
	}
	putDigits(buf[start:n], magnitude(i.V))

	return n, nil
}
