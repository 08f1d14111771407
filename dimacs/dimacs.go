// Package dimacs serializes an accumulated clause set to the DIMACS CNF
// text convention: a header line `p cnf <nvars> <nclauses>` followed by
// one line per clause, each terminated by a literal 0.
package dimacs

import (
	"bytes"
	"fmt"

	"github.com/combinatorial/tslcnf/clause"
)

// Comment is one `c`-prefixed comment line emitted before the header,
// typically a run-parameter preamble such as "c cnf encoding (t=…, k=…)".
type Comment string

// Write renders comments, the header, and every clause in acc to a
// DIMACS CNF byte string. nvars is the caller-supplied variable count
// (the registry's NVars(), i.e. the largest allocated id).
func Write(comments []Comment, nvars int, acc *clause.Accumulator) []byte {
	var buf bytes.Buffer

	for _, c := range comments {
		buf.WriteString("c ")
		buf.WriteString(string(c))
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "p cnf %d %d\n", nvars, acc.Len())

	clauses := acc.Clauses()
	for i, cl := range clauses {
		for _, lit := range cl {
			fmt.Fprintf(&buf, "%d ", lit)
		}
		buf.WriteString("0")
		if i != len(clauses)-1 {
			buf.WriteByte('\n')
		}
	}
	if len(clauses) > 0 {
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
