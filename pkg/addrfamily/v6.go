package addrfamily

import (
	"fmt"
	"net/netip"

	"github.com/shouya/netcalc/pkg/bitstring"
	"github.com/shouya/netcalc/pkg/netcalcerr"
	"github.com/shouya/netcalc/pkg/trie"
)

// V6 is the IPv6 address family: width 128, standard colon-hex addresses
// with optional "::" compression. Parsing and formatting both go through
// net/netip, the standard library's own IPv6 text grammar (see DESIGN.md
// for why no pack dependency improves on this).
type V6 struct{}

func (V6) Width() int { return 128 }

// ParseAddress parses a colon-hex IPv6 literal into a length-128
// BitString, MSB first, extracted from the big-endian 16-byte address.
func (V6) ParseAddress(s string) (bitstring.BitString, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() {
		return bitstring.BitString{}, netcalcerr.Wrapf(netcalcerr.ErrMalformedAddress, "invalid IPv6 address: %q", s)
	}

	bytes := addr.As16()
	out := bitstring.Empty()
	for _, b := range bytes {
		out = out.Extend(bitstring.FromByte(b))
	}
	return out, nil
}

func (f V6) ParseCIDR(s string) (bitstring.BitString, error) {
	return parseCIDRGeneric(s, f.Width(), f.ParseAddress)
}

func (f V6) ParseRange(s string) (trie.Trie, error) {
	return parseRangeGeneric(s, f.ParseAddress)
}

// FormatCIDR right-pads b to 128 bits with zeros, reassembles the 16
// address bytes from 8-bit chunks and renders "address/length" using
// net/netip's canonical (RFC 5952) text form.
func (V6) FormatCIDR(b bitstring.BitString) (string, error) {
	length := b.Len()
	if length > 128 {
		return "", netcalcerr.Wrapf(netcalcerr.ErrPrefixTooLong, "prefix length %d exceeds width 128", length)
	}

	padded := b.RightPad(128, bitstring.Zero)
	chunks, err := padded.Chunks(8)
	if err != nil {
		return "", err
	}

	var raw [16]byte
	for i, v := range chunks {
		raw[i] = byte(v)
	}

	addr := netip.AddrFrom16(raw)
	return fmt.Sprintf("%s/%d", addr.String(), length), nil
}
