// Package script drives a single trie.Trie through a sequence of Operation
// values parsed from a textual script.
package script

import (
	"github.com/shouya/netcalc/pkg/addrfamily"
	"github.com/shouya/netcalc/pkg/bitstring"
	"github.com/shouya/netcalc/pkg/trie"
)

// Operand is the right-hand side of a script "+"/"-" line: either a
// BitString prefix or a pre-built Trie (from a range). Exactly one of
// Prefix/Tree is meaningful, selected by Kind.
type Operand struct {
	Kind   OperandKind
	Prefix bitstring.BitString
	Tree   trie.Trie
}

// OperandKind tags which field of Operand is populated.
type OperandKind int

const (
	OperandPrefix OperandKind = iota
	OperandTree
)

// ParseOperand tries, in order, address literal, then CIDR, then range --
// first success wins. This order is load-bearing: a bare address must
// parse as a length-Width prefix, not fall through to some other
// interpretation, so address is tried before CIDR and range.
func ParseOperand(fam addrfamily.Family, s string) (Operand, error) {
	if p, err := fam.ParseAddress(s); err == nil {
		return Operand{Kind: OperandPrefix, Prefix: p}, nil
	}

	if p, err := fam.ParseCIDR(s); err == nil {
		return Operand{Kind: OperandPrefix, Prefix: p}, nil
	}

	t, err := fam.ParseRange(s)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: OperandTree, Tree: t}, nil
}
