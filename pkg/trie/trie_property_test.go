package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/shouya/netcalc/pkg/bitstring"
)

// width8 generates an 8-bit BitString, small enough to brute-force against
// a reference bitset.
func width8(t *rapid.T, label string) bitstring.BitString {
	n := rapid.IntRange(0, 255).Draw(t, label)
	return bitstring.FromByte(byte(n))
}

// randomTrie builds a Trie out of a handful of random /8 prefixes, folded
// with Add/Del the way script.Evaluate would.
func randomTrie(t *rapid.T) Trie {
	tr := Empty()
	steps := rapid.IntRange(0, 12).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		p := width8(t, "prefix")
		if rapid.Bool().Draw(t, "isDel") {
			tr = DelPrefix(tr, p)
		} else {
			tr = AddPrefix(tr, p)
		}
	}
	return tr
}

// bruteSet returns the 256-element membership bitset denoted by t, built
// by expanding every prefix that Prefixes(t) yields.
func bruteSet(t Trie) [256]bool {
	var out [256]bool
	for _, p := range Prefixes(t) {
		padded := p.RightPad(8, bitstring.Zero)
		v, err := padded.ToInteger()
		if err != nil {
			panic(err)
		}
		width := p.Len()
		count := 1 << (8 - width)
		base := int(v)
		for i := 0; i < count; i++ {
			out[base+i] = true
		}
	}
	return out
}

func TestPropertyCanonicalForm(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := randomTrie(rt)
		assertNoUniformBranch(rt, tr)
	})
}

func assertNoUniformBranch(t *rapid.T, tr Trie) {
	br, ok := tr.(*branch)
	if !ok {
		return
	}
	if IsFull(br.Left) && IsFull(br.Right) {
		t.Fatalf("found Branch(Full, Full), normalization invariant violated")
	}
	if IsEmpty(br.Left) && IsEmpty(br.Right) {
		t.Fatalf("found Branch(Empty, Empty), normalization invariant violated")
	}
	assertNoUniformBranch(t, br.Left)
	assertNoUniformBranch(t, br.Right)
}

func TestPropertyComplementInvolution(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := randomTrie(rt)
		require.Equal(rt, bruteSet(tr), bruteSet(Complement(Complement(tr))))
	})
}

func TestPropertyUnionLaws(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := randomTrie(rt)
		b := randomTrie(rt)

		require.Equal(rt, bruteSet(Union(a, b)), bruteSet(Union(b, a)), "union must be commutative")
		require.Equal(rt, bruteSet(Union(a, Empty())), bruteSet(a), "a union Empty must equal a")
		require.Equal(rt, bruteSet(Union(a, Full)), bruteSet(Full), "a union Full must equal Full")
		require.Equal(rt, bruteSet(Union(a, a)), bruteSet(a), "union must be idempotent")
	})
}

func TestPropertyUnionAssociative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := randomTrie(rt)
		b := randomTrie(rt)
		c := randomTrie(rt)

		left := Union(Union(a, b), c)
		right := Union(a, Union(b, c))
		require.Equal(rt, bruteSet(left), bruteSet(right))
	})
}

func TestPropertyDifferenceLaws(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := randomTrie(rt)

		require.Equal(rt, bruteSet(Difference(a, a)), bruteSet(Empty()), "a \\ a must be Empty")
		require.Equal(rt, bruteSet(Difference(a, Empty())), bruteSet(a), "a \\ Empty must equal a")
		require.Equal(rt, bruteSet(Difference(Full, a)), bruteSet(Complement(a)), "Full \\ a must equal complement(a)")
	})
}

func TestPropertyAddDelViaComplement(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := randomTrie(rt)
		p := width8(rt, "prefix")

		got := DelPrefix(tr, p)
		want := Complement(AddPrefix(Complement(tr), p))
		require.Equal(rt, bruteSet(got), bruteSet(want))
	})
}

func TestPropertyRangeEquivalence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := width8(rt, "start")
		b := width8(rt, "end")
		av, _ := a.ToInteger()
		bv, _ := b.ToInteger()
		if av > bv {
			a, b = b, a
			av, bv = bv, av
		}

		tr, err := FromRange(a, b)
		require.NoError(rt, err)

		got := bruteSet(tr)
		for x := 0; x < 256; x++ {
			want := uint64(x) >= av && uint64(x) <= bv
			if got[x] != want {
				rt.Fatalf("membership of %d in FromRange(%d, %d): got %v, want %v", x, av, bv, got[x], want)
			}
		}
	})
}

func TestPropertyPrefixesMinimality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := randomTrie(rt)
		ps := Prefixes(tr)

		seen := map[string]bool{}
		for _, p := range ps {
			seen[p.String()] = true
		}
		for s := range seen {
			if len(s) == 0 {
				continue
			}
			sibling := s[:len(s)-1] + flip(s[len(s)-1])
			if seen[sibling] {
				rt.Fatalf("sibling prefixes %q and %q should have collapsed during normalization", s, sibling)
			}
		}
	})
}

func flip(b byte) string {
	if b == '0' {
		return "1"
	}
	return "0"
}
