// Package trie implements a compressed binary trie set algebra over
// fixed-width bit-strings: a recursive sum type (Full / Empty / Branch)
// supporting union, difference, complement, range construction and
// canonical enumeration of covering prefixes.
package trie

import (
	"github.com/shouya/netcalc/pkg/bitstring"
	"github.com/shouya/netcalc/pkg/netcalcerr"
)

// Trie is a set of fixed-width bit-strings represented as a compressed
// binary tree. Values are immutable; every operation returns a new Trie.
type Trie interface {
	isTrie()
}

type full struct{}
type empty struct{}

// branch holds descendants whose next bit is 0 (Left) or 1 (Right).
type branch struct {
	Left, Right Trie
}

func (full) isTrie()    {}
func (empty) isTrie()   {}
func (*branch) isTrie() {}

// Full is the set containing every bit-string at the current subtree
// depth.
var Full Trie = full{}

// Empty returns the empty Trie (nothing included).
func Empty() Trie {
	return empty{}
}

// Branch constructs an unnormalized branch node. Most callers want
// normalize(Branch(l, r)) instead of calling this directly; it is exported
// for tests and for callers that build a tree by hand, which Prefixes
// normalizes before enumerating.
func Branch(l, r Trie) Trie {
	return &branch{Left: l, Right: r}
}

// IsFull reports whether t is the Full variant.
func IsFull(t Trie) bool {
	_, ok := t.(full)
	return ok
}

// IsEmpty reports whether t is the Empty variant.
func IsEmpty(t Trie) bool {
	_, ok := t.(empty)
	return ok
}

// normalize rewrites Branch(Full,Full) -> Full and Branch(Empty,Empty) ->
// Empty, bottom-up. It assumes its argument's children are already
// normalized (callers normalize after recursing, not before).
func normalize(t Trie) Trie {
	br, ok := t.(*branch)
	if !ok {
		return t
	}
	if IsFull(br.Left) && IsFull(br.Right) {
		return full{}
	}
	if IsEmpty(br.Left) && IsEmpty(br.Right) {
		return empty{}
	}
	return t
}

// Complement swaps Full and Empty recursively; branch structure is
// unchanged.
func Complement(t Trie) Trie {
	switch v := t.(type) {
	case full:
		return empty{}
	case empty:
		return full{}
	case *branch:
		return &branch{Left: Complement(v.Left), Right: Complement(v.Right)}
	default:
		panic("trie: unreachable variant")
	}
}

// Union returns the set union of a and b.
func Union(a, b Trie) Trie {
	if IsFull(a) || IsFull(b) {
		return full{}
	}
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	ab, bb := a.(*branch), b.(*branch)
	return normalize(&branch{
		Left:  Union(ab.Left, bb.Left),
		Right: Union(ab.Right, bb.Right),
	})
}

// Difference returns the set a \ b (elements of a not in b).
func Difference(a, b Trie) Trie {
	if IsFull(b) {
		return empty{}
	}
	if IsEmpty(b) {
		return a
	}
	if IsFull(a) {
		return Complement(b)
	}
	if IsEmpty(a) {
		return empty{}
	}
	ab, bb := a.(*branch), b.(*branch)
	return normalize(&branch{
		Left:  Difference(ab.Left, bb.Left),
		Right: Difference(ab.Right, bb.Right),
	})
}

// Intersect returns the set intersection of a and b. It is a direct
// recursive primitive rather than complement+union+complement, kept for
// parity with Union/Difference.
func Intersect(a, b Trie) Trie {
	if IsEmpty(a) || IsEmpty(b) {
		return empty{}
	}
	if IsFull(a) {
		return b
	}
	if IsFull(b) {
		return a
	}
	ab, bb := a.(*branch), b.(*branch)
	return normalize(&branch{
		Left:  Intersect(ab.Left, bb.Left),
		Right: Intersect(ab.Right, bb.Right),
	})
}

// AddPrefix inserts the set denoted by p into t.
func AddPrefix(t Trie, p bitstring.BitString) Trie {
	if p.Len() == 0 {
		return full{}
	}
	head, tail, err := p.Split()
	if err != nil {
		// p.Len() > 0 was just checked, Split cannot fail here.
		panic(err)
	}

	switch v := t.(type) {
	case full:
		return full{}
	case empty:
		if head == bitstring.Zero {
			return &branch{Left: AddPrefix(empty{}, tail), Right: empty{}}
		}
		return &branch{Left: empty{}, Right: AddPrefix(empty{}, tail)}
	case *branch:
		if head == bitstring.Zero {
			return normalize(&branch{Left: AddPrefix(v.Left, tail), Right: v.Right})
		}
		return normalize(&branch{Left: v.Left, Right: AddPrefix(v.Right, tail)})
	default:
		panic("trie: unreachable variant")
	}
}

// DelPrefix removes the set denoted by p from t.
func DelPrefix(t Trie, p bitstring.BitString) Trie {
	return Complement(AddPrefix(Complement(t), p))
}

// AddTree returns t union u; provided so callers working with
// script.Operation don't need to know add-by-tree is union under the hood.
func AddTree(t, u Trie) Trie {
	return Union(t, u)
}

// DelTree returns t minus u.
func DelTree(t, u Trie) Trie {
	return Difference(t, u)
}

// FromRange returns the normalized Trie containing exactly the W-bit
// strings in the closed interval [start, end], where W = start.Len() =
// end.Len(). It fails with netcalcerr.ErrRangeInverted when start > end.
func FromRange(start, end bitstring.BitString) (Trie, error) {
	if !bitstring.LessOrEqual(start, end) {
		return nil, netcalcerr.Wrap(netcalcerr.ErrRangeInverted, "trie.FromRange")
	}
	return fromRangeAt(bitstring.Empty(), start, end), nil
}

// fromRangeAt grows curr one bit at a time, pruning subtrees that fall
// entirely outside [start, end] and short-circuiting subtrees that fall
// entirely inside it. Because bitstring.Compare returns Incomparable for a
// proper-prefix relation, "not provably outside" must recurse rather than
// short-circuit -- the Incomparable case is exactly a subtree straddling a
// range boundary.
func fromRangeAt(curr, start, end bitstring.BitString) Trie {
	if isBelow(curr, start) || isAbove(curr, end) {
		return empty{}
	}
	if isWithin(curr, start, end) {
		return full{}
	}

	left := fromRangeAt(curr.Append(bitstring.Zero), start, end)
	right := fromRangeAt(curr.Append(bitstring.One), start, end)
	return normalize(&branch{Left: left, Right: right})
}

// isBelow reports whether curr sorts strictly before start under the
// partial order (bitstring.Compare), which is exactly the "entirely below
// start" case: any difference within the shared bit range already decides
// it, and a true prefix relation falls through as Incomparable, forcing
// the caller to keep recursing instead of wrongly pruning.
func isBelow(curr, start bitstring.BitString) bool {
	return bitstring.Compare(curr, start) == bitstring.Less
}

// isAbove is the dual of isBelow against end.
func isAbove(curr, end bitstring.BitString) bool {
	return bitstring.Compare(curr, end) == bitstring.Greater
}

// isWithin reports whether curr is provably within [start, end]: not below
// start and not above end.
func isWithin(curr, start, end bitstring.BitString) bool {
	geStart := bitstring.Compare(curr, start)
	leEnd := bitstring.Compare(curr, end)
	okStart := geStart == bitstring.Greater || geStart == bitstring.Equal
	okEnd := leEnd == bitstring.Less || leEnd == bitstring.Equal
	return okStart && okEnd
}

// Prefixes enumerates the canonical covering of t: the minimal set of
// pairwise-disjoint BitStrings whose union denotes exactly t, in left
// (0) before right (1) depth-first order.
func Prefixes(t Trie) []bitstring.BitString {
	return prefixesFrom(normalizeDeep(t), bitstring.Empty())
}

// normalizeDeep normalizes every subtree bottom-up; Prefixes calls it once
// at the root so callers don't have to remember to normalize after every
// mutation themselves (Union/Difference/AddPrefix/DelPrefix already do,
// but Branch built directly by a caller might not be).
func normalizeDeep(t Trie) Trie {
	br, ok := t.(*branch)
	if !ok {
		return t
	}
	return normalize(&branch{Left: normalizeDeep(br.Left), Right: normalizeDeep(br.Right)})
}

func prefixesFrom(t Trie, prefix bitstring.BitString) []bitstring.BitString {
	switch v := t.(type) {
	case full:
		return []bitstring.BitString{prefix}
	case empty:
		return nil
	case *branch:
		out := prefixesFrom(v.Left, prefix.Append(bitstring.Zero))
		out = append(out, prefixesFrom(v.Right, prefix.Append(bitstring.One))...)
		return out
	default:
		panic("trie: unreachable variant")
	}
}
