// Package tslcnf compiles a combinatorial test specification — parameter
// and environment groups, per-option properties and guard conditions,
// antonym exclusions — into a DIMACS CNF formula suitable for any
// off-the-shelf SAT solver.
//
// What is tslcnf?
//
//	A small, dependency-light pipeline that turns a typed ir.Spec into a
//	clause set covering:
//
//	  • Group constraints: exactly-one / at-most-one over each group's
//	    options, per test-suite slot (groupenc)
//	  • Property linking: bi-implication between each property and the
//	    disjunction of the options asserting it, plus antonym exclusion
//	    (propenc)
//	  • Guard conditions: boolean expressions over property atoms,
//	    compiled via Tseitin transformation (condition)
//	  • t-way coverage: one coverage variable per distinct option tuple,
//	    bi-implicationally linked to per-slot indicator variables
//	    (coverage)
//
// Why tslcnf?
//
//   - Deterministic    — identical input and options produce byte-identical
//     DIMACS output, every time
//   - Solver-agnostic  — emits plain DIMACS CNF; bring your own SAT solver
//   - Composable       — each concern (registry/clause/index/groupenc/
//     propenc/condition/coverage/dimacs) is its own package with a narrow
//     public surface
//
// Under the hood, the encoder runs six cooperating passes, orchestrated by
// the encoder package:
//
//	ir/         — typed input model: Spec, Group, Option
//	registry/   — variable id allocation (Intern/Fresh) and slot caches
//	clause/     — the accumulated CNF clause set
//	index/      — flattened, validated view of a Spec
//	groupenc/   — group cardinality constraints
//	propenc/    — property bi-implication and antonym exclusion
//	condition/  — guard expression parsing and Tseitin compilation
//	coverage/   — t-way combination enumeration and coverage clauses
//	dimacs/     — DIMACS CNF serialization
//	encoder/    — the public Encoder orchestrating all of the above
//
// The encoder package tests show complete encode-and-solve scenarios.
//
//	go get github.com/combinatorial/tslcnf
package tslcnf
