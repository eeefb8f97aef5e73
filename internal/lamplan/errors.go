package lamplan

import "errors"

// Load-time error kinds. All are fatal; a plan that fails to load is never
// partially evaluated.
var (
	// ErrInvalidDatum indicates a datum with fewer than two samples, a
	// non-increasing abscissa, or malformed sample pairs.
	ErrInvalidDatum = errors.New("invalid datum")

	// ErrUnknownOperator indicates an unrecognized condition operator token.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrOperandArity indicates an operand whose shape cannot legally pair
	// with any operator, or does not match its operator.
	ErrOperandArity = errors.New("operand arity mismatch")

	// ErrParse indicates a malformed thickness expression.
	ErrParse = errors.New("thickness expression parse error")
)
