// Package coverage implements the t-way coverage encoder: enumeration of
// canonical t-tuples across distinct groups, per-slot indicator
// variables, the bi-implicational link to a coverage variable, and the
// optional full-coverage goal.
package coverage

import (
	"fmt"
	"sort"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/index"
	"github.com/combinatorial/tslcnf/registry"
)

// Key is a canonical t-tuple: option ordinals sorted ascending so that
// reorderings of the same option set coincide.
type Key string

func makeKey(ordinals []int) Key {
	sorted := append([]int(nil), ordinals...)
	sort.Ints(sorted)
	key := ""
	for i, o := range sorted {
		if i > 0 {
			key += ","
		}
		key += fmt.Sprintf("%d", o)
	}
	return Key(key)
}

// Tuple is one distinct t-way interaction: its canonical option ordinals
// (sorted) and the coverage variable allocated for it.
type Tuple struct {
	Ordinals []int
	Coverage registry.VarID
}

// Enumerate walks every size-t combination of groups (order within a
// combination follows idx.Groups order) and takes the Cartesian product of
// their option lists, collapsing symmetric reorderings by canonical key.
// Intra-group tuples are never formed since a combination draws from t
// distinct groups (group at-most-one already forbids same-group option
// co-occurrence).
func Enumerate(idx *index.Index, t int, reg *registry.Registry) ([]Tuple, error) {
	groups := idx.Groups
	if t <= 0 {
		return nil, fmt.Errorf("coverage: t must be >= 1")
	}
	if t > len(groups) {
		return nil, fmt.Errorf("coverage: t=%d exceeds group count %d", t, len(groups))
	}

	seen := make(map[Key]bool)
	var tuples []Tuple

	var combos func(start int, chosen []int)
	combos = func(start int, chosen []int) {
		if len(chosen) == t {
			cartesian(groups, chosen, func(ordinals []int) {
				key := makeKey(ordinals)
				if seen[key] {
					return
				}
				seen[key] = true
				sorted := append([]int(nil), ordinals...)
				sort.Ints(sorted)
				covID := reg.Fresh("coverage", registry.CategoryCoverage)
				tuples = append(tuples, Tuple{Ordinals: sorted, Coverage: covID})
			})
			return
		}
		for i := start; i < len(groups); i++ {
			combos(i+1, append(chosen, i))
		}
	}
	combos(0, nil)

	return tuples, nil
}

// cartesian invokes fn once for every combination of one option from each
// group indexed by groupIdx, in group order.
func cartesian(groups []index.GroupInfo, groupIdx []int, fn func(ordinals []int)) {
	n := len(groupIdx)
	if n == 0 {
		return
	}
	picks := make([]int, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			ordinals := make([]int, n)
			for i, gi := range groupIdx {
				ordinals[i] = groups[gi].OptionID[picks[i]]
			}
			fn(ordinals)
			return
		}
		g := groups[groupIdx[pos]]
		for i := range g.OptionID {
			picks[pos] = i
			rec(pos + 1)
		}
	}
	rec(0)
}

// Emit generates the per-slot indicator variables and the bi-implicational
// link between each tuple's coverage variable and the disjunction of its
// indicators: the canonical per-slot form, not a single-clause
// compression over the option variables directly. When fullCoverage is
// true, each coverage variable is additionally asserted as a unit clause.
func Emit(idx *index.Index, ov *registry.OptionVars, tuples []Tuple, k int, fullCoverage bool, reg *registry.Registry, acc *clause.Accumulator) {
	for _, tup := range tuples {
		indicatorIDs := make([]registry.VarID, k)

		for j := 1; j <= k; j++ {
			aID := reg.Fresh("indicator", registry.CategoryIndicator)
			indicatorIDs[j-1] = aID

			optVars := make([]registry.VarID, len(tup.Ordinals))
			for i, ord := range tup.Ordinals {
				optVars[i] = ov.Get(ord, idx.Options[ord].Name, j)
			}

			for _, v := range optVars {
				acc.Add(clause.Neg(aID), clause.Pos(v))
			}

			allPresent := make([]clause.Literal, 0, len(optVars)+1)
			for _, v := range optVars {
				allPresent = append(allPresent, clause.Neg(v))
			}
			allPresent = append(allPresent, clause.Pos(aID))
			acc.Add(allPresent...)

			acc.Add(clause.Neg(aID), clause.Pos(tup.Coverage))
		}

		disjunction := make([]clause.Literal, 0, k+1)
		disjunction = append(disjunction, clause.Neg(tup.Coverage))
		for _, aID := range indicatorIDs {
			disjunction = append(disjunction, clause.Pos(aID))
		}
		acc.Add(disjunction...)

		if fullCoverage {
			acc.Add(clause.Pos(tup.Coverage))
		}
	}
}
