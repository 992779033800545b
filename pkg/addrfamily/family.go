// Package addrfamily provides the address-family-parameterized parsing and
// formatting layer: address literal <-> BitString, CIDR <-> BitString,
// range <-> trie.Trie, and the reverse formatting of a BitString back into
// address/length text.
package addrfamily

import (
	"strconv"
	"strings"

	"github.com/shouya/netcalc/pkg/bitstring"
	"github.com/shouya/netcalc/pkg/netcalcerr"
	"github.com/shouya/netcalc/pkg/trie"
)

// Family is the contract the netcalc core consumes; it is opaque to
// pkg/script and pkg/trie, which only ever see BitString and Trie values.
type Family interface {
	// Width is 32 for IPv4 and 128 for IPv6.
	Width() int
	// ParseAddress parses a full address literal into a length-Width
	// BitString.
	ParseAddress(s string) (bitstring.BitString, error)
	// ParseCIDR parses "address/length" into a BitString truncated to
	// length.
	ParseCIDR(s string) (bitstring.BitString, error)
	// ParseRange parses "startAddress-endAddress" into a Trie via
	// trie.FromRange.
	ParseRange(s string) (trie.Trie, error)
	// FormatCIDR renders a BitString as "address/length", right-padding
	// with zero bits to Width before converting to address text.
	FormatCIDR(b bitstring.BitString) (string, error)
}

// ByVersion resolves a "4"/"6" version string into a Family. Unknown
// versions fail with netcalcerr.ErrUnknownVersion.
func ByVersion(version string) (Family, error) {
	switch version {
	case "4":
		return V4{}, nil
	case "6":
		return V6{}, nil
	default:
		return nil, netcalcerr.Wrapf(netcalcerr.ErrUnknownVersion, "unrecognized version: %q", version)
	}
}

// parseCIDRGeneric implements the shared "address/length" grammar for both
// families, parameterized by the address parser and width.
func parseCIDRGeneric(s string, width int, parseAddress func(string) (bitstring.BitString, error)) (bitstring.BitString, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedCidr, "expected address/length, got %q", s)
	}

	addr, err := parseAddress(parts[0])
	if err != nil {
		return bitstring.BitString{}, err
	}

	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedCidr, "invalid prefix length %q", parts[1])
	}
	if length < 0 || length > width {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrPrefixTooLong, "prefix length %d exceeds width %d", length, width)
	}

	return addr.Truncate(length), nil
}

// parseRangeGeneric implements the shared "start-end" grammar.
func parseRangeGeneric(s string, parseAddress func(string) (bitstring.BitString, error)) (trie.Trie, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, netcalcerr.Wrapf(netcalcerr.ErrMalformedRange, "expected start-end, got %q", s)
	}

	start, err := parseAddress(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := parseAddress(parts[1])
	if err != nil {
		return nil, err
	}

	t, err := trie.FromRange(start, end)
	if err != nil {
		return nil, err
	}
	return t, nil
}
