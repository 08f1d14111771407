// Package registry implements the shared variable-allocation scheme every
// encoder pass draws from: a monotonically growing id counter plus an
// injective label table, guaranteeing ids form the contiguous range
// [1, next_id) at all times.
package registry

import "fmt"

// VarID is a propositional atom's stable integer id. Ids start at 1; 0 is
// never a valid VarID (it is reserved, per DIMACS convention, as the
// clause terminator — a serialization concern the registry itself never
// touches).
type VarID int

// Category tags which encoder pass a variable belongs to, for diagnostics
// and for the auxiliary id→label output.
type Category string

const (
	CategoryOption    Category = "option"    // v(o,j)
	CategoryProperty  Category = "property"  // p(π,j)
	CategoryTseitin   Category = "tseitin"   // Tseitin auxiliary
	CategoryIndicator Category = "indicator" // a(τ̂,j)
	CategoryCoverage  Category = "coverage"  // c(τ̂)
)

// Label is the human-readable name bound to a VarID, used for the
// auxiliary id→label mapping returned alongside the DIMACS body.
type Label struct {
	Text     string
	Category Category
}

// Registry interns labels into ids. It is single-use: construct one per
// Encoder invocation with New, never share across runs.
type Registry struct {
	nextID   VarID
	byLabel  map[string]VarID
	byID     map[VarID]Label
	saltSeen map[string]int
}

// New returns an empty Registry with the id counter at 1.
func New() *Registry {
	return &Registry{
		nextID:   1,
		byLabel:  make(map[string]VarID),
		byID:     make(map[VarID]Label),
		saltSeen: make(map[string]int),
	}
}

// Intern is idempotent: the first call with a given text allocates the
// next id and records the (text, category) label; every subsequent call
// with the same text returns the same id, regardless of category (the
// category argument is only consulted on first allocation).
func (r *Registry) Intern(text string, cat Category) VarID {
	if id, ok := r.byLabel[text]; ok {
		return id
	}
	id := r.nextID
	r.nextID++
	r.byLabel[text] = id
	r.byID[id] = Label{Text: text, Category: cat}
	return id
}

// Fresh allocates a new, anonymously-labeled id. The label is salted with
// the allocated id itself so distinct Fresh calls never collide in the
// label table, even when given the same prefix.
func (r *Registry) Fresh(prefix string, cat Category) VarID {
	id := r.nextID
	r.nextID++
	n := r.saltSeen[prefix]
	r.saltSeen[prefix] = n + 1
	text := fmt.Sprintf("%s#%d", prefix, id)
	r.byID[id] = Label{Text: text, Category: cat}
	return id
}

// NVars returns the count of allocated ids; ids in use are exactly
// {1, ..., NVars}.
func (r *Registry) NVars() int {
	return int(r.nextID - 1)
}

// Label returns the label bound to id, and whether one was found.
func (r *Registry) Label(id VarID) (Label, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// Labels returns the full id→label mapping, the auxiliary output a
// downstream tool needs to decode a satisfying assignment into a test
// suite.
func (r *Registry) Labels() map[VarID]Label {
	out := make(map[VarID]Label, len(r.byID))
	for k, v := range r.byID {
		out[k] = v
	}
	return out
}
