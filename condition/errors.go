package condition

import "errors"

// ErrConditionSyntax is returned for any malformed guard expression:
// mismatched parentheses, empty unary operand, stray operator, or a
// residual operand stack of size != 1 after the Tseitin walk.
var ErrConditionSyntax = errors.New("condition: syntax error")

// ErrUnknownProperty is a sentinel a strict-mode onUnknown hook may return
// when a guard references an atom that is not a declared property. Compile
// itself never creates it: it returns whatever error the hook returns.
var ErrUnknownProperty = errors.New("condition: unknown property")
