// Package bitstring implements a finite ordered sequence of bits used
// throughout netcalc to represent address literals, CIDR prefixes and the
// set of bit-strings denoted by a trie prefix.
package bitstring

import (
	"strings"

	"github.com/shouya/netcalc/pkg/netcalcerr"
)

// Bit is one of the two values a BitString position can take.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// BitString is a finite, ordered sequence of Bit. Every method except Push
// returns a new value and leaves the receiver untouched. The empty
// BitString denotes the full universe of W-bit strings; a BitString of
// length n denotes the set of all W-bit strings sharing that leading
// sequence.
type BitString struct {
	bits []Bit
}

// Empty returns the length-0 BitString.
func Empty() BitString {
	return BitString{}
}

// FromByte returns the length-8 BitString of b, MSB first.
func FromByte(b byte) BitString {
	out := make([]Bit, 8)
	for i := 0; i < 8; i++ {
		out[i] = Bit((b >> (7 - i)) & 1)
	}
	return BitString{bits: out}
}

// FromBits builds a BitString directly from a slice of 0/1 values, mostly
// useful in tests.
func FromBits(bits ...Bit) BitString {
	out := make([]Bit, len(bits))
	copy(out, bits)
	return BitString{bits: out}
}

// Len returns the number of bits.
func (b BitString) Len() int {
	return len(b.bits)
}

// At returns the bit at position i.
func (b BitString) At(i int) Bit {
	return b.bits[i]
}

// Push appends bit in place; Push mutates the receiver's backing array only
// when it has spare capacity of its own, so callers that hold other
// references to b should prefer Append.
func (b *BitString) Push(bit Bit) {
	b.bits = append(b.bits, bit)
}

// Append returns a new BitString with bit appended, leaving the receiver
// untouched.
func (b BitString) Append(bit Bit) BitString {
	out := make([]Bit, len(b.bits), len(b.bits)+1)
	copy(out, b.bits)
	out = append(out, bit)
	return BitString{bits: out}
}

// Extend returns the concatenation of b and other.
func (b BitString) Extend(other BitString) BitString {
	out := make([]Bit, 0, len(b.bits)+len(other.bits))
	out = append(out, b.bits...)
	out = append(out, other.bits...)
	return BitString{bits: out}
}

// Truncate returns the first n bits of b. n must be <= b.Len().
func (b BitString) Truncate(n int) BitString {
	out := make([]Bit, n)
	copy(out, b.bits[:n])
	return BitString{bits: out}
}

// RightPad extends b to length n by appending bit as many times as needed.
// If b is already at least n bits long it is returned unchanged (truncated
// copies are never produced by RightPad).
func (b BitString) RightPad(n int, bit Bit) BitString {
	if len(b.bits) >= n {
		out := make([]Bit, len(b.bits))
		copy(out, b.bits)
		return BitString{bits: out}
	}
	out := make([]Bit, n)
	copy(out, b.bits)
	for i := len(b.bits); i < n; i++ {
		out[i] = bit
	}
	return BitString{bits: out}
}

// Split returns the head bit and the remaining tail. It fails when b is
// empty.
func (b BitString) Split() (Bit, BitString, error) {
	if len(b.bits) == 0 {
		return 0, BitString{}, netcalcerr.Wrap(netcalcerr.ErrEmptyBitString, "BitString.Split")
	}
	tail := make([]Bit, len(b.bits)-1)
	copy(tail, b.bits[1:])
	return b.bits[0], BitString{bits: tail}, nil
}

// Chunks splits b into ceil-free groups of n bits each, MSB first, and
// returns each group's unsigned integer value. It fails when n is 0,
// n > 64, or b.Len() is not a multiple of n.
func (b BitString) Chunks(n int) ([]uint64, error) {
	if n <= 0 {
		return nil, netcalcerr.Wrapf(netcalcerr.ErrChunkSizeInvalid, "chunk size must be positive, got %d", n)
	}
	if n > 64 {
		return nil, netcalcerr.Wrapf(netcalcerr.ErrChunkSizeInvalid, "cannot chunk larger than 64 bits, got %d", n)
	}
	if len(b.bits)%n != 0 {
		return nil, netcalcerr.Wrapf(netcalcerr.ErrChunkSizeInvalid, "length %d is not a multiple of chunk size %d", len(b.bits), n)
	}

	out := make([]uint64, 0, len(b.bits)/n)
	for off := 0; off < len(b.bits); off += n {
		chunk := BitString{bits: b.bits[off : off+n]}
		v, err := chunk.ToInteger()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ToInteger interprets b as an unsigned integer, MSB first. It fails when
// b.Len() > 64.
func (b BitString) ToInteger() (uint64, error) {
	if len(b.bits) > 64 {
		return 0, netcalcerr.Wrapf(netcalcerr.ErrIntegerOverflow, "cannot convert %d bits to a uint64", len(b.bits))
	}
	var out uint64
	for _, bit := range b.bits {
		out <<= 1
		out |= uint64(bit)
	}
	return out, nil
}

// Order is the result of comparing two BitStrings.
type Order int

const (
	Less Order = iota
	Equal
	Greater
	Incomparable
)

// Compare implements a partial order over BitStrings: the bits both
// strings share are compared lexicographically, and the first difference
// decides Less or Greater. When no shared bit differs, equal lengths give
// Equal, and different lengths (one is a proper prefix of the other, the
// empty BitString included) give Incomparable, because a proper prefix
// denotes a strict superset, not an orderable value.
func Compare(a, b BitString) Order {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	for i := 0; i < n; i++ {
		if a.bits[i] == b.bits[i] {
			continue
		}
		if a.bits[i] < b.bits[i] {
			return Less
		}
		return Greater
	}
	if len(a.bits) == len(b.bits) {
		return Equal
	}
	return Incomparable
}

// LessOrEqual reports whether a <= b under the total order on fixed-width
// addresses (both BitStrings must have equal length; this is a narrower,
// total-order convenience used by from_range's precondition check, not a
// replacement for Compare).
func LessOrEqual(a, b BitString) bool {
	o := Compare(a, b)
	return o == Less || o == Equal
}

// String renders b as a sequence of '0'/'1' characters, mostly for
// debugging and test failure messages.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(len(b.bits))
	for _, bit := range b.bits {
		if bit == Zero {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// Eq reports whether a and b denote exactly the same sequence of bits.
func Eq(a, b BitString) bool {
	return Compare(a, b) == Equal
}
