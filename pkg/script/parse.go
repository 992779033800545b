package script

import (
	"strings"

	"github.com/shouya/netcalc/pkg/addrfamily"
	"github.com/shouya/netcalc/pkg/netcalcerr"
)

// OperationKind tags an Operation: Add/Del an Operand, or Noop for
// blank/comment lines.
type OperationKind int

const (
	OpNoop OperationKind = iota
	OpAdd
	OpDel
)

// Operation is one parsed script line.
type Operation struct {
	Kind    OperationKind
	Operand Operand
}

// ParseLine parses a single trimmed script line:
//
//   - empty line -> Noop
//   - leading '#' -> Noop (comment)
//   - leading '+' -> Add, remainder parsed as an operand
//   - leading '-' -> Del, remainder parsed as an operand
//   - anything else -> ErrUnrecognizedLine
//
// The caller is expected to have already trimmed surrounding whitespace
// from line.
func ParseLine(fam addrfamily.Family, line string) (Operation, error) {
	if line == "" {
		return Operation{Kind: OpNoop}, nil
	}

	switch line[0] {
	case '#':
		return Operation{Kind: OpNoop}, nil
	case '+':
		operand, err := ParseOperand(fam, line[1:])
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpAdd, Operand: operand}, nil
	case '-':
		operand, err := ParseOperand(fam, line[1:])
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpDel, Operand: operand}, nil
	default:
		return Operation{}, netcalcerr.Wrapf(netcalcerr.ErrUnrecognizedLine, "unrecognized line: %q", line)
	}
}

// ParseScript splits s into LF-separated lines, trims each, and parses it
// into an Operation. A parse failure on any line is fatal for the whole
// script -- there is no partial-result recovery.
func ParseScript(fam addrfamily.Family, s string) ([]Operation, error) {
	lines := strings.Split(s, "\n")
	out := make([]Operation, 0, len(lines))

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		op, err := ParseLine(fam, line)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}

	return out, nil
}
