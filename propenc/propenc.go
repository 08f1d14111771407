// Package propenc implements the property linker: for each slot and each
// property, a bi-implication between the property-slot variable and the
// disjunction of its asserting options' variables, plus antonym
// exclusivity.
package propenc

import (
	"sort"

	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/index"
	"github.com/combinatorial/tslcnf/registry"
)

// Antonym is one symmetric pair of mutually exclusive property names.
type Antonym struct {
	A, B string
}

// canonicalAntonyms sorts each pair and the pair list itself, collapsing
// duplicate and reversed-direction entries from the input relation (spec
// §4.4: "the direction supplied does not change semantics").
func canonicalAntonyms(in map[string]string) []Antonym {
	seen := make(map[[2]string]bool)
	out := make([]Antonym, 0, len(in))
	for a, b := range in {
		pair := [2]string{a, b}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		out = append(out, Antonym{A: pair[0], B: pair[1]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Emit walks every slot and every declared property, binding p(π,j) to
// the disjunction of its asserters, and every antonym pair to mutual
// exclusion. ov and pv are the shared option- and property-slot variable
// tables every pass resolves through.
func Emit(idx *index.Index, ov *registry.OptionVars, pv *registry.PropertyVars, antonyms map[string]string, k int, acc *clause.Accumulator) {
	props := idx.Properties()

	for j := 1; j <= k; j++ {
		for _, prop := range props {
			propOrd := idx.PropertyOrdinal[prop]
			pID := pv.Get(propOrd, prop, j)

			asserters := idx.PropertyToOptions[prop]
			disjunction := make([]clause.Literal, 0, len(asserters)+1)
			disjunction = append(disjunction, clause.Neg(pID))

			for _, ord := range asserters {
				oID := ov.Get(ord, idx.Options[ord].Name, j)
				acc.Add(clause.Neg(oID), clause.Pos(pID))
				disjunction = append(disjunction, clause.Pos(oID))
			}
			acc.Add(disjunction...)
		}

		for _, pair := range canonicalAntonyms(antonyms) {
			aOrd := idx.ResolveProperty(pair.A)
			bOrd := idx.ResolveProperty(pair.B)
			aID := pv.Get(aOrd, pair.A, j)
			bID := pv.Get(bOrd, pair.B, j)
			acc.Add(clause.Neg(aID), clause.Neg(bID))
		}
	}
}
