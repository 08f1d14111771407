// Package condition compiles guard expressions — small Boolean formulas
// over property identifiers with !, &&, ||, and parentheses — into CNF
// clauses via Tseitin transformation.
package condition

import (
	"fmt"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/registry"
)

// AtomResolver resolves an identifier appearing in a guard expression to
// a VarID for the current slot. The standard hook resolves n to the
// property-slot variable p(n,j); ok is false when n is not a declared
// property, letting the caller apply strict/lenient policy.
type AtomResolver func(name string) (id registry.VarID, ok bool)

// Result is the outcome of compiling one guard expression: the top
// variable representing the whole expression, and whether the expression
// was empty (a tautology) — in which case Top is zero and no clauses
// were emitted for the expression body.
type Result struct {
	Top       registry.VarID
	Tautology bool
}

// Compile parses expr and performs the Tseitin transformation, appending
// clauses to acc and allocating Tseitin auxiliaries through reg. resolve
// maps an identifier to its property-slot VarID; onUnknown is called when
// resolve reports an atom unknown — it must itself either return a usable
// VarID (lenient mode, allocating a fresh property-slot variable) or a
// non-nil error (strict mode).
func Compile(expr string, reg *registry.Registry, acc *clause.Accumulator, resolve AtomResolver, onUnknown func(name string) (registry.VarID, error)) (Result, error) {
	if expr == "" {
		return Result{Tautology: true}, nil
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return Result{}, err
	}
	if len(tokens) == 0 {
		return Result{Tautology: true}, nil
	}

	rpn, err := toRPN(tokens)
	if err != nil {
		return Result{}, err
	}

	var stack []registry.VarID
	pop := func() registry.VarID {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, tok := range rpn {
		switch tok.Kind {
		case TokenIdent:
			id, ok := resolve(tok.Text)
			if !ok {
				id, err = onUnknown(tok.Text)
				if err != nil {
					return Result{}, err
				}
			}
			stack = append(stack, id)

		case TokenNot:
			if len(stack) < 1 {
				return Result{}, fmt.Errorf("%w: '!' with no operand", ErrConditionSyntax)
			}
			a := pop()
			z := reg.Fresh("tseitin_not", registry.CategoryTseitin)
			acc.Add(clause.Pos(z), clause.Pos(a))
			acc.Add(clause.Neg(z), clause.Neg(a))
			stack = append(stack, z)

		case TokenAnd:
			if len(stack) < 2 {
				return Result{}, fmt.Errorf("%w: '&&' missing operand", ErrConditionSyntax)
			}
			b, a := pop(), pop()
			z := reg.Fresh("tseitin_and", registry.CategoryTseitin)
			acc.Add(clause.Neg(z), clause.Pos(a))
			acc.Add(clause.Neg(z), clause.Pos(b))
			acc.Add(clause.Pos(z), clause.Neg(a), clause.Neg(b))
			stack = append(stack, z)

		case TokenOr:
			if len(stack) < 2 {
				return Result{}, fmt.Errorf("%w: '||' missing operand", ErrConditionSyntax)
			}
			b, a := pop(), pop()
			z := reg.Fresh("tseitin_or", registry.CategoryTseitin)
			acc.Add(clause.Pos(z), clause.Neg(a))
			acc.Add(clause.Pos(z), clause.Neg(b))
			acc.Add(clause.Neg(z), clause.Pos(a), clause.Pos(b))
			stack = append(stack, z)

		default:
			return Result{}, fmt.Errorf("%w: unexpected token in RPN stream", ErrConditionSyntax)
		}
	}

	if len(stack) != 1 {
		return Result{}, fmt.Errorf("%w: invalid expression (residual stack size %d)", ErrConditionSyntax, len(stack))
	}

	return Result{Top: stack[0]}, nil
}

// Link emits the implication option -> guard: ¬v(O,j) ∨ Z. A tautology
// result emits nothing.
func Link(optionVar registry.VarID, result Result, acc *clause.Accumulator) {
	if result.Tautology {
		return
	}
	acc.Add(clause.Neg(optionVar), clause.Pos(result.Top))
}
