// Package groupenc implements the group constraint emitter: per-slot
// at-least-one / at-most-one clauses over each group's options, plus
// unit bans for error-flagged options.
package groupenc

import (
	"github.com/combinatorial/tslcnf/clause"
	"github.com/combinatorial/tslcnf/index"
	"github.com/combinatorial/tslcnf/registry"
)

// Policy selects the group cardinality constraint. Emit accepts any of
// the three values and resolves PolicyAuto per group, via Resolve, to
// ExactlyOne or AtMostOne.
type Policy string

const (
	// PolicyAuto inspects each group's options: exactly-one if any
	// option carries Single:true, else at-most-one.
	PolicyAuto Policy = "auto"
	// PolicyExactlyOne forces at-least-one + at-most-one on every group.
	PolicyExactlyOne Policy = "exactly-one"
	// PolicyAtMostOne forces at-most-one only, on every group.
	PolicyAtMostOne Policy = "at-most-one"
)

// Resolve decides one group's effective cardinality under policy.
func Resolve(policy Policy, g index.GroupInfo, idx *index.Index) Policy {
	if policy != PolicyAuto {
		return policy
	}
	for _, ord := range g.OptionID {
		if idx.Options[ord].Single {
			return PolicyExactlyOne
		}
	}
	return PolicyAtMostOne
}

// Emit walks every slot 1..k and every group in idx, appending at-least-one
// (when the resolved policy requires it), pairwise at-most-one, and unit
// bans for error-flagged options to acc. ov resolves option-slot
// variables shared with every other pass.
func Emit(idx *index.Index, ov *registry.OptionVars, policy Policy, k int, acc *clause.Accumulator) {
	for _, g := range idx.Groups {
		resolved := Resolve(policy, g, idx)

		for j := 1; j <= k; j++ {
			ids := make([]registry.VarID, len(g.OptionID))
			for i, ord := range g.OptionID {
				ids[i] = ov.Get(ord, idx.Options[ord].Name, j)
			}

			if resolved == PolicyExactlyOne {
				lits := make([]clause.Literal, len(ids))
				for i, id := range ids {
					lits[i] = clause.Pos(id)
				}
				acc.Add(lits...)
			}

			for a := 0; a < len(ids); a++ {
				for b := a + 1; b < len(ids); b++ {
					acc.Add(clause.Neg(ids[a]), clause.Neg(ids[b]))
				}
			}
		}

		for _, ord := range g.OptionID {
			if !idx.Options[ord].Error {
				continue
			}
			for j := 1; j <= k; j++ {
				id := ov.Get(ord, idx.Options[ord].Name, j)
				acc.Add(clause.Neg(id))
			}
		}
	}
}
