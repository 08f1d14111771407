package encoder

import errkind "gopkg.in/src-d/go-errors.v1"

// Error kinds. Each kind formats its own message; callers match with
// ErrXxx.Is(err) and construct with ErrXxx.New(args...).
var (
	// ErrMalformedIR: no options present; duplicate option name; group
	// with an empty option list.
	ErrMalformedIR = errkind.NewKind("malformed IR: %s")

	// ErrUnknownProperty: a guard references an atom that is not a
	// declared property, under strict_conditions.
	ErrUnknownProperty = errkind.NewKind("unknown property: %s")

	// ErrConditionSyntax: mismatched parentheses, empty unary operand,
	// residual Tseitin operand stack, or a stray operator.
	ErrConditionSyntax = errkind.NewKind("condition syntax error: %s")

	// ErrConfigError: non-positive t or k, or t exceeding the number of
	// groups.
	ErrConfigError = errkind.NewKind("invalid configuration: %s")
)
