// Package netcalc converts a line-oriented script of IP-address set
// operations into a canonical, minimal list of CIDR prefixes.
package netcalc

import (
	"strings"

	"github.com/shouya/netcalc/pkg/addrfamily"
	"github.com/shouya/netcalc/pkg/script"
	"github.com/shouya/netcalc/pkg/trie"
)

// Convert selects an address family by version ("4" or "6"), evaluates
// script against a fresh trie, and joins the canonical covering prefixes
// with separator.
func Convert(version, separator, scriptText string) (string, error) {
	fam, err := addrfamily.ByVersion(version)
	if err != nil {
		return "", err
	}

	ops, err := script.ParseScript(fam, scriptText)
	if err != nil {
		return "", err
	}

	result := script.Evaluate(ops)

	cidrs, err := formatAll(fam, result)
	if err != nil {
		return "", err
	}

	return strings.Join(cidrs, separator), nil
}

func formatAll(fam addrfamily.Family, t trie.Trie) ([]string, error) {
	prefixes := trie.Prefixes(t)
	out := make([]string, 0, len(prefixes))

	for _, p := range prefixes {
		cidr, err := fam.FormatCIDR(p)
		if err != nil {
			return nil, err
		}
		out = append(out, cidr)
	}

	return out, nil
}
