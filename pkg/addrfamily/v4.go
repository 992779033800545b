package addrfamily

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shouya/netcalc/pkg/bitstring"
	"github.com/shouya/netcalc/pkg/netcalcerr"
	"github.com/shouya/netcalc/pkg/trie"
)

// V4 is the IPv4 address family: width 32, dotted-quad addresses.
type V4 struct{}

func (V4) Width() int { return 32 }

// ParseAddress parses a dotted-quad address (four decimal octets 0-255
// separated by '.') into a length-32 BitString, MSB first.
func (V4) ParseAddress(s string) (bitstring.BitString, error) {
	segments := strings.Split(s, ".")
	if len(segments) != 4 {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedAddress, "invalid IPv4 address: %q", s)
	}

	out := bitstring.Empty()
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n > 255 {
			return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedAddress, "invalid IPv4 octet %q in %q", seg, s)
		}
		out = out.Extend(bitstring.FromByte(byte(n)))
	}

	if out.Len() != 32 {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedAddress, "invalid IPv4 address: %q", s)
	}
	return out, nil
}

func (f V4) ParseCIDR(s string) (bitstring.BitString, error) {
	return parseCIDRGeneric(s, f.Width(), f.ParseAddress)
}

func (f V4) ParseRange(s string) (trie.Trie, error) {
	return parseRangeGeneric(s, f.ParseAddress)
}

// FormatCIDR right-pads b to 32 bits with zeros, splits into four 8-bit
// chunks and renders "a.b.c.d/length".
func (V4) FormatCIDR(b bitstring.BitString) (string, error) {
	length := b.Len()
	if length > 32 {
		return "", netcalcerr.Wrapf(netcalcerr.ErrPrefixTooLong, "prefix length %d exceeds width 32", length)
	}

	padded := b.RightPad(32, bitstring.Zero)
	octets, err := padded.Chunks(8)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d.%d.%d.%d/%d", octets[0], octets[1], octets[2], octets[3], length), nil
}
