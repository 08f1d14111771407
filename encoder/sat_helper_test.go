package encoder_test

import (
	"github.com/crillab/gophersat/solver"

	"github.com/combinatorial/tslcnf/clause"
)

// toIntClauses converts an accumulated clause set to the [][]int shape
// gophersat's solver.ParseSliceNb expects.
func toIntClauses(acc []clause.Clause) [][]int {
	out := make([][]int, len(acc))
	for i, c := range acc {
		row := make([]int, len(c))
		for j, lit := range c {
			row[j] = int(lit)
		}
		out[i] = row
	}
	return out
}

// solveModel hands clauses to gophersat and returns a satisfying model
// (1-indexed VarID -> truth value) plus whether one was found.
func solveModel(nvars int, clauses [][]int) (map[int]bool, bool) {
	pb := solver.ParseSliceNb(clauses, nvars)
	s := solver.New(pb)
	status := s.Solve()
	if status != solver.Sat {
		return nil, false
	}
	model := s.Model()
	out := make(map[int]bool, len(model))
	for i, v := range model {
		out[i+1] = v
	}
	return out, true
}
