// Package ir defines the typed intermediate representation consumed by the
// encoder. It replaces the duck-typed nested maps a surface-syntax parser
// would naturally produce with tagged records: Spec, Group, Option.
//
// The parser that turns a test-specification source file into a Spec is
// out of scope for this module — ir only defines the shape it must emit.
package ir

// Category distinguishes the two group sections a Spec carries. Both are
// treated identically by every encoder pass; the tag exists only so
// Index can record provenance for diagnostics.
type Category string

const (
	// Parameters marks a group declared under the "Parameters:" section.
	Parameters Category = "parameter"
	// Environments marks a group declared under the "Environments:" section.
	Environments Category = "environment"
)

// Option is a single choice within a Group.
//
// Name must be unique across the entire Spec (parameters and environments
// combined) — Index.Build rejects a Spec that violates this.
type Option struct {
	Name string

	// Property, if non-empty, is the name of the predicate this option
	// asserts when chosen. Several options (in the same or different
	// groups) may assert the same property name.
	Property string

	// Condition, if non-empty, is a guard expression over property names
	// that must hold in any slot where this option is chosen.
	Condition string

	// Single marks this option as forcing its group's policy to
	// exactly-one under group_policy=auto (see groupenc).
	Single bool

	// Error marks this option as globally banned: every slot gets a unit
	// clause forbidding it.
	Error bool

	// Flag and Comment are carried through from the source but never
	// consulted by the encoder; they exist purely for passthrough to
	// whatever downstream tool wants them.
	Flag    string
	Comment string
}

// Group is a mutually exclusive choice domain: exactly one policy applies
// to all K slots, resolved by groupenc from GroupPolicy and the options'
// Single flags.
type Group struct {
	Name     string
	Category Category
	Options  []Option
}

// Spec is the complete, read-only IR handed to the encoder. Parameters and
// Environments are ordered slices (not maps) so that insertion order —
// required for deterministic output — survives the trip from parser to
// encoder without relying on incidental map iteration order.
type Spec struct {
	Parameters   []Group
	Environments []Group
}

// Groups returns Parameters followed by Environments, the unified
// iteration order every encoder pass uses. The two categories are
// indistinguishable to every pass past Index.Build.
func (s *Spec) Groups() []Group {
	if s == nil {
		return nil
	}
	out := make([]Group, 0, len(s.Parameters)+len(s.Environments))
	out = append(out, s.Parameters...)
	out = append(out, s.Environments...)
	return out
}
