package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/coverage"
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

// Minimal pairwise case: one 2-option parameter group, one 2-option
// environment group, t=2, should yield exactly the 4 cross-group pairs.
func TestEnumerateMinimalPairwise(t *testing.T) {
	spec := &ir.Spec{
		Parameters:   []ir.Group{{Name: "A", Options: []ir.Option{{Name: "a1"}, {Name: "a2"}}}},
		Environments: []ir.Group{{Name: "B", Options: []ir.Option{{Name: "b1"}, {Name: "b2"}}}},
	}
	idx := build(t, spec)
	reg := registry.New()

	tuples, err := coverage.Enumerate(idx, 2, reg)
	require.NoError(t, err)
	require.Len(t, tuples, 4)

	seen := map[string]bool{}
	for _, tup := range tuples {
		key := ""
		for _, o := range tup.Ordinals {
			key += idx.Options[o].Name + ","
		}
		seen[key] = true
	}
	require.Len(t, seen, 4)
}

func TestEnumerateSingleOptionGroupsYieldExactlyOneTuple(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1"}}},
		{Name: "B", Options: []ir.Option{{Name: "b1"}}},
	}}
	idx := build(t, spec)
	reg := registry.New()

	tuples, err := coverage.Enumerate(idx, 2, reg)
	require.NoError(t, err)
	require.Len(t, tuples, 1)
}

func TestEnumerateRejectsTExceedingGroupCount(t *testing.T) {
	spec := &ir.Spec{Parameters: []ir.Group{
		{Name: "A", Options: []ir.Option{{Name: "a1"}}},
	}}
	idx := build(t, spec)
	reg := registry.New()

	_, err := coverage.Enumerate(idx, 2, reg)
	require.Error(t, err)
}

func TestEmitBiImplicationShape(t *testing.T) {
	spec := &ir.Spec{
		Parameters:   []ir.Group{{Name: "A", Options: []ir.Option{{Name: "a1"}, {Name: "a2"}}}},
		Environments: []ir.Group{{Name: "B", Options: []ir.Option{{Name: "b1"}, {Name: "b2"}}}},
	}
	idx := build(t, spec)
	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()

	tuples, err := coverage.Enumerate(idx, 2, reg)
	require.NoError(t, err)

	k := 2
	coverage.Emit(idx, ov, tuples, k, false, reg, acc)

	// Per tuple: k slots * 4 clauses (indicator->each option (t=2 options
	// => 2 clauses), all-present->indicator, indicator->coverage) + 1
	// bi-implication disjunction clause, and no unit coverage clause
	// since fullCoverage=false.
	perTuple := k*(2+1+1) + 1
	require.Equal(t, perTuple*len(tuples), acc.Len())

	for _, c := range acc.Clauses() {
		require.NotEmpty(t, c)
	}
}

func TestFullCoverageAssertsUnitClausePerTuple(t *testing.T) {
	spec := &ir.Spec{
		Parameters:   []ir.Group{{Name: "A", Options: []ir.Option{{Name: "a1"}, {Name: "a2"}}}},
		Environments: []ir.Group{{Name: "B", Options: []ir.Option{{Name: "b1"}, {Name: "b2"}}}},
	}
	idx := build(t, spec)
	reg := registry.New()
	ov := registry.NewOptionVars(reg)
	acc := clause.NewAccumulator()

	tuples, err := coverage.Enumerate(idx, 2, reg)
	require.NoError(t, err)
	coverage.Emit(idx, ov, tuples, 1, true, reg, acc)

	for _, tup := range tuples {
		require.Contains(t, acc.Clauses(), clause.Clause{clause.Pos(tup.Coverage)})
	}
}
