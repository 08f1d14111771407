package clause_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/registry"
)

func TestAddAppendsInOrder(t *testing.T) {
	acc := clause.NewAccumulator()
	acc.Add(clause.Pos(1), clause.Neg(2))
	acc.Add(clause.Pos(3))

	clauses := acc.Clauses()
	require.Len(t, clauses, 2)
	require.Equal(t, clause.Clause{clause.Pos(1), clause.Neg(2)}, clauses[0])
	require.Equal(t, clause.Clause{clause.Pos(3)}, clauses[1])
	require.Equal(t, 2, acc.Len())
}

func TestAddPanicsOnEmptyClause(t *testing.T) {
	acc := clause.NewAccumulator()
	require.Panics(t, func() { acc.Add() })
}

func TestPosNegSigns(t *testing.T) {
	id := registry.VarID(7)
	require.Equal(t, clause.Literal(7), clause.Pos(id))
	require.Equal(t, clause.Literal(-7), clause.Neg(id))
}
