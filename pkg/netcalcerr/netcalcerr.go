// Package netcalcerr defines the sentinel error kinds produced by the
// netcalc core and its parsing collaborators.
package netcalcerr

import "github.com/pkg/errors"

// Sentinel error kinds. Use errors.Is against these to recover the kind of
// a wrapped error returned from pkg/bitstring, pkg/trie, pkg/addrfamily or
// pkg/script.
var (
	ErrRangeInverted    = errors.New("range inverted: start must be <= end")
	ErrPrefixTooLong    = errors.New("prefix length exceeds address family width")
	ErrMalformedAddress = errors.New("malformed address literal")
	ErrMalformedCidr    = errors.New("malformed CIDR")
	ErrMalformedRange   = errors.New("malformed range")
	ErrUnrecognizedLine = errors.New("unrecognized line")
	ErrChunkSizeInvalid = errors.New("invalid chunk size")
	ErrUnknownVersion   = errors.New("unrecognized IP version")
	ErrEmptyBitString   = errors.New("cannot split an empty bit-string")
	ErrIntegerOverflow  = errors.New("bit-string too long to convert to an integer")
)

// Wrap returns an error whose cause is kind, with msg as additional context.
// errors.Is(Wrap(kind, "..."), kind) holds.
func Wrap(kind error, msg string) error {
	return errors.Wrap(kind, msg)
}

// Wrapf is Wrap with printf-style formatting.
func Wrapf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}
