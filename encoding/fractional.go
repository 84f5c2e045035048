package encoding

import "github.com/emforge/emstr/errs"

// Fractional renders a scaled integer as a fixed-point decimal: Value divided
// by Divisor, with the decimal part zero-padded to the scale implied by the
// divisor (divisor 1000 implies three decimal digits, so 5/1000 encodes as
// "0.005"). Whole values encode without a decimal point.
//
// Divisor must be a positive power of ten; anything else is out of contract.
//
// Trim selects the trailing-zero policy for the decimal part. With Trim false
// the full divisor-implied precision is always shown (1050/1000 encodes as
// "1.050"); with Trim true trailing zero digits are stripped after padding
// (1050/1000 encodes as "1.05"). Len and Write share the same trim
// computation and always agree on the final length.
type Fractional[T SignedInt] struct {
	Value   T
	Divisor T
	Trim    bool
}

// NewFractional wraps value/divisor for fixed-point encoding with full
// divisor-implied precision.
//
// Example:
//
//	f := encoding.NewFractional(int32(1234056), 1000)
//	// encodes "1234.056"
func NewFractional[T SignedInt](value, divisor T) Fractional[T] {
	return Fractional[T]{Value: value, Divisor: divisor}
}

// NewTrimmedFractional wraps value/divisor for fixed-point encoding with
// trailing zeros stripped from the decimal part.
//
// Example:
//
//	f := encoding.NewTrimmedFractional(int32(1050), 1000)
//	// encodes "1.05"
func NewTrimmedFractional[T SignedInt](value, divisor T) Fractional[T] {
	return Fractional[T]{Value: value, Divisor: divisor, Trim: true}
}

// parts splits the value into its truncated integer part, the magnitude of
// the decimal part, and the printed decimal width after applying the trim
// policy. The decimal part stays non-zero after trimming, so a zero dec
// always means a whole value.
func (f Fractional[T]) parts() (intPart T, dec uint64, scale int) {
	intPart = f.Value / f.Divisor
	dec = magnitude(f.Value % f.Divisor)
	scale = digits(uint64(f.Divisor)) - 1

	if f.Trim && dec != 0 {
		for dec%10 == 0 {
			dec /= 10
			scale--
		}
	}

	return intPart, dec, scale
}

// Len returns the encoded length: integer part, plus an explicit sign when
// the integer part is zero but the value negative, plus the decimal point
// and decimal digits when the decimal part is non-zero.
func (f Fractional[T]) Len() int {
	intPart, dec, scale := f.parts()

	n := Int[T]{V: intPart}.Len()
	if dec == 0 {
		return n
	}

	// Integer division of a small negative numerator yields zero, losing the
	// sign; carry it separately.
	if intPart == 0 && f.Value < 0 {
		n++
	}

	return n + 1 + scale
}

// Write encodes the fixed-point decimal into buf.
//
// Returns:
//   - int: Number of bytes written, equal to Len() on success
//   - error: errs.ErrBufferLength if buf is smaller than Len()
func (f Fractional[T]) Write(buf []byte) (int, error) {
	n := f.Len()
	if len(buf) < n {
		return 0, errs.ErrBufferLength
	}

	intPart, dec, scale := f.parts()

	pos := 0
	if intPart == 0 && f.Value < 0 {
		buf[0] = '-'
		pos = 1
	}

	w, err := (Int[T]{V: intPart}).Write(buf[pos:])
	if err != nil {
		return pos, err
	}
	pos += w

	if dec == 0 {
		return pos, nil
	}

	buf[pos] = '.'
	pos++

	// putDigits left-pads with zeros when dec has fewer digits than scale,
	// preserving the divisor-implied magnitude (5/100 -> "0.05").
	putDigits(buf[pos:pos+scale], dec)
	pos += scale

	return pos, nil
}
