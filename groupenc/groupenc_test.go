package groupenc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/groupenc"
	"github.com/combinatorial/tslcnf/index"
	"github.com/combinatorial/tslcnf/ir"
	"github.com/combinatorial/tslcnf/registry"
)

func build(t *testing.T, spec *ir.Spec) *index.Index {
	t.Helper()
	idx, err := index.Build(spec)
	require.NoError(t, err)
	return idx
}

// Exactly-one via single.
func TestAutoPolicyExactlyOneWhenSingleFlagged(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1", Single: true}, {Name: "a2"}}},
	}}
	idx := build(t, spec)

	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()
	groupenc.Emit(idx, ov, groupenc.PolicyAuto, 1, acc)

	// one ALO clause + one AMO pair clause = 2 clauses for a single slot.
	require.Len(t, acc.Clauses(), 2)

	a1 := ov.Get(0, "a1", 1)
	a2 := ov.Get(1, "a2", 1)
	require.Contains(t, acc.Clauses(), clause.Clause{clause.Pos(a1), clause.Pos(a2)})
	require.Contains(t, acc.Clauses(), clause.Clause{clause.Neg(a1), clause.Neg(a2)})
}

func TestAutoPolicyAtMostOneWithoutSingleFlag(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1"}, {Name: "a2"}}},
	}}
	idx := build(t, spec)

	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()
	groupenc.Emit(idx, ov, groupenc.PolicyAuto, 1, acc)

	require.Len(t, acc.Clauses(), 1) // AMO pair only, no ALO
}

// Error ban.
func TestErrorFlagEmitsUnitBanEverySlot(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1", Error: true}, {Name: "a2"}}},
	}}
	idx := build(t, spec)

	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()
	k := 3
	groupenc.Emit(idx, ov, groupenc.PolicyAuto, k, acc)

	for j := 1; j <= k; j++ {
		id := ov.Get(0, "a1", j)
		require.Contains(t, acc.Clauses(), clause.Clause{clause.Neg(id)})
	}
}

func TestExactlyOneOverridesAutoWhenForced(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1"}, {Name: "a2"}}},
	}}
	idx := build(t, spec)

	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()
	groupenc.Emit(idx, ov, groupenc.PolicyExactlyOne, 1, acc)

	require.Len(t, acc.Clauses(), 2) // ALO + AMO pair
}
