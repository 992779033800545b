package script

import "github.com/shouya/netcalc/pkg/trie"

// Evaluate folds ops left-to-right into a fresh trie.Empty(): operation i
// is fully applied before operation i+1 starts, so a later Del can carve
// a hole out of an earlier Add and a later Add can override an earlier
// Del over the same region.
func Evaluate(ops []Operation) trie.Trie {
	t := trie.Empty()

	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			t = applyAdd(t, op.Operand)
		case OpDel:
			t = applyDel(t, op.Operand)
		case OpNoop:
			// unchanged
		}
	}

	return t
}

func applyAdd(t trie.Trie, operand Operand) trie.Trie {
	switch operand.Kind {
	case OperandPrefix:
		return trie.AddPrefix(t, operand.Prefix)
	case OperandTree:
		return trie.AddTree(t, operand.Tree)
	default:
		return t
	}
}

func applyDel(t trie.Trie, operand Operand) trie.Trie {
	switch operand.Kind {
	case OperandPrefix:
		return trie.DelPrefix(t, operand.Prefix)
	case OperandTree:
		return trie.DelTree(t, operand.Tree)
	default:
		return t
	}
}
