package trie

import (
	"testing"

	"github.com/shouya/netcalc/pkg/bitstring"
)

func bits(bs ...bitstring.Bit) bitstring.BitString {
	return bitstring.FromBits(bs...)
}

func TestAddPrefixAndPrefixes(t *testing.T) {
	tr := Empty()
	tr = AddPrefix(tr, bits(bitstring.Zero, bitstring.Zero))
	tr = AddPrefix(tr, bits(bitstring.Zero, bitstring.One))

	got := Prefixes(tr)
	if len(got) != 1 {
		t.Fatalf("expected the two halves to merge into one prefix, got %d: %v", len(got), got)
	}
	if got[0].String() != "0" {
		t.Errorf("merged prefix = %q, want %q", got[0].String(), "0")
	}
}

func TestAddPrefixEmptyYieldsFull(t *testing.T) {
	tr := AddPrefix(Empty(), bitstring.Empty())
	if !IsFull(tr) {
		t.Error("AddPrefix with an empty BitString should yield Full")
	}
}

func TestDelPrefixCarvesHole(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.Zero, bitstring.Zero, bitstring.Zero)) // 000/3 region? actually a single /3
	tr = DelPrefix(tr, bits(bitstring.Zero, bitstring.Zero, bitstring.Zero))
	if !IsEmpty(tr) {
		t.Error("deleting exactly what was added should yield Empty")
	}
}

func TestUnionIdentities(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.One))

	if got := Union(tr, Empty()); !equalTries(got, tr) {
		t.Error("t union Empty must equal t")
	}
	if got := Union(tr, Full); !IsFull(got) {
		t.Error("t union Full must be Full")
	}
}

func TestDifferenceLaws(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.One))

	if got := Difference(tr, tr); !IsEmpty(got) {
		t.Error("t \\ t must be Empty")
	}
	if got := Difference(tr, Empty()); !equalTries(got, tr) {
		t.Error("t \\ Empty must equal t")
	}
	if got := Difference(Full, tr); !equalTries(got, Complement(tr)) {
		t.Error("Full \\ t must equal complement(t)")
	}
}

func TestComplementInvolution(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.Zero, bitstring.One))
	if got := Complement(Complement(tr)); !equalTries(got, tr) {
		t.Error("complement(complement(t)) must equal t")
	}
}

func TestDelPrefixIsComplementAddComplement(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.One, bitstring.Zero))
	p := bits(bitstring.One)

	got := DelPrefix(tr, p)
	want := Complement(AddPrefix(Complement(tr), p))
	if !equalTries(got, want) {
		t.Error("DelPrefix must equal complement(AddPrefix(complement(t), p))")
	}
}

func TestFromRangeInverted(t *testing.T) {
	start := bits(bitstring.One, bitstring.Zero)
	end := bits(bitstring.Zero, bitstring.One)
	if _, err := FromRange(start, end); err == nil {
		t.Error("FromRange with start > end should fail")
	}
}

func TestFromRangeMatchesExplicitAdds(t *testing.T) {
	// 0001 through 0110, built the slow way via explicit AddPrefix calls
	// for comparison against FromRange.
	start := bits(bitstring.Zero, bitstring.Zero, bitstring.Zero, bitstring.One)
	end := bits(bitstring.Zero, bitstring.One, bitstring.One, bitstring.Zero)

	expected := Empty()
	for _, p := range [][4]bitstring.Bit{
		{bitstring.Zero, bitstring.Zero, bitstring.Zero, bitstring.One},
		{bitstring.Zero, bitstring.Zero, bitstring.One, bitstring.Zero},
		{bitstring.Zero, bitstring.Zero, bitstring.One, bitstring.One},
		{bitstring.Zero, bitstring.One, bitstring.Zero, bitstring.Zero},
		{bitstring.Zero, bitstring.One, bitstring.Zero, bitstring.One},
		{bitstring.Zero, bitstring.One, bitstring.One, bitstring.Zero},
	} {
		expected = AddPrefix(expected, bits(p[0], p[1], p[2], p[3]))
	}

	actual, err := FromRange(start, end)
	if err != nil {
		t.Fatalf("FromRange returned error: %v", err)
	}

	if !equalTries(actual, expected) {
		t.Errorf("FromRange(%s, %s) = %v, want %v", start, end, Prefixes(actual), Prefixes(expected))
	}
}

func TestPrefixesMinimality(t *testing.T) {
	tr := AddPrefix(Empty(), bits(bitstring.Zero, bitstring.Zero, bitstring.One, bitstring.One))
	tr = AddPrefix(tr, bits(bitstring.Zero, bitstring.Zero, bitstring.One, bitstring.Zero))

	got := Prefixes(tr)
	if len(got) != 1 || got[0].String() != "001" {
		t.Errorf("expected the two leaves to merge into 001, got %v", got)
	}
}

func TestIntersectMatchesDeMorgan(t *testing.T) {
	a := AddPrefix(Empty(), bits(bitstring.Zero, bitstring.Zero))
	a = AddPrefix(a, bits(bitstring.Zero, bitstring.One))

	b := AddPrefix(Empty(), bits(bitstring.Zero, bitstring.Zero))
	b = AddPrefix(b, bits(bitstring.One, bitstring.Zero))

	got := Intersect(a, b)
	want := Complement(Union(Complement(a), Complement(b)))

	if !equalTries(got, want) {
		t.Errorf("Intersect(a, b) = %v, want %v (De Morgan via Complement/Union)", Prefixes(got), Prefixes(want))
	}

	if len(Prefixes(got)) != 1 || Prefixes(got)[0].String() != "00" {
		t.Errorf("Intersect of {00,01} and {00,10} = %v, want just {00}", Prefixes(got))
	}
}

func TestNormalizeNeverLeaksUniformBranches(t *testing.T) {
	tr := Branch(Full, Full)
	normalized := normalize(tr)
	if !IsFull(normalized) {
		t.Error("Branch(Full, Full) must normalize to Full")
	}

	tr2 := Branch(Empty(), Empty())
	normalized2 := normalize(tr2)
	if !IsEmpty(normalized2) {
		t.Error("Branch(Empty, Empty) must normalize to Empty")
	}
}

// equalTries compares two Tries structurally after deep normalization,
// since canonical form makes structural equality meaningful.
func equalTries(a, b Trie) bool {
	return prefixSetEqual(Prefixes(a), Prefixes(b))
}

func prefixSetEqual(a, b []bitstring.BitString) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
