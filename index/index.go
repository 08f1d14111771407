// Package index builds the lookup tables every later pass depends on: the
// ordered group→option membership, the option→group reverse map, the
// property→asserting-options map, and per-option flags.
package index

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/combinatorial/tslcnf/ir"
)

// OptionMeta carries the per-option flags and optional guard condition
// Index records for every option, keyed by the option's base ordinal
// (its position in Index.Options, 0-based, stable for the lifetime of one
// Index).
type OptionMeta struct {
	Name      string
	Group     string
	Property  string
	Condition string
	Single    bool
	Error     bool
}

// GroupInfo is one group's resolved membership: its name, category, and
// the ordered base ids (ordinals) of its options.
type GroupInfo struct {
	Name     string
	Category ir.Category
	OptionID []int // ordinals into Index.Options, in declared order
}

// Index is the product of Build. After Build, the only mutation is
// ResolveProperty adding names to PropertyOrdinal and PropertyNames;
// everything else is only read by later passes.
type Index struct {
	// Groups preserves declaration order: Parameters first, then
	// Environments, each in source order, for deterministic output.
	Groups []GroupInfo

	// Options is the flat, ordinal-indexed option table. An option's
	// ordinal is its position here and is stable for the life of this
	// Index — every other pass uses it as the option's base id.
	Options []OptionMeta

	// OptionOrdinal maps an option name to its ordinal in Options.
	OptionOrdinal map[string]int

	// PropertyToOptions maps a property name to the ordinals of every
	// option asserting it, in discovery order.
	PropertyToOptions map[string][]int

	// PropertyOrdinal maps a property name to its position in
	// Properties(), assigned on first discovery. Passes use this as the
	// Base half of a registry.SlotKey instead of caching property-slot
	// variables by the string name directly.
	PropertyOrdinal map[string]int

	// PropertyNames is Properties() computed once and cached, in
	// first-discovery order.
	PropertyNames []string
}

// Build walks spec and produces an Index, or a MalformedIR-class error
// aggregating every structural problem found (duplicate option name,
// group with zero options). Multiple independent problems are collected
// via a multierror rather than aborting on the first one, so a caller
// fixing a spec sees every defect in one pass.
func Build(spec *ir.Spec) (*Index, error) {
	idx := &Index{
		OptionOrdinal:     make(map[string]int),
		PropertyToOptions: make(map[string][]int),
	}

	var errs *multierror.Error

	groups := []struct {
		cat  ir.Category
		list []ir.Group
	}{
		{ir.Parameters, spec.Parameters},
		{ir.Environments, spec.Environments},
	}

	for _, section := range groups {
		for _, g := range section.list {
			if len(g.Options) == 0 {
				errs = multierror.Append(errs, fmt.Errorf("group %q has no options", g.Name))
				continue
			}

			info := GroupInfo{Name: g.Name, Category: section.cat}
			for _, opt := range g.Options {
				if _, dup := idx.OptionOrdinal[opt.Name]; dup {
					errs = multierror.Append(errs, fmt.Errorf("duplicate option name %q", opt.Name))
					continue
				}

				ordinal := len(idx.Options)
				idx.Options = append(idx.Options, OptionMeta{
					Name:      opt.Name,
					Group:     g.Name,
					Property:  opt.Property,
					Condition: opt.Condition,
					Single:    opt.Single,
					Error:     opt.Error,
				})
				idx.OptionOrdinal[opt.Name] = ordinal
				info.OptionID = append(info.OptionID, ordinal)

				if opt.Property != "" {
					idx.PropertyToOptions[opt.Property] = append(idx.PropertyToOptions[opt.Property], ordinal)
				}
			}
			idx.Groups = append(idx.Groups, info)
		}
	}

	if len(idx.Options) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("configuration contains no options for encoding"))
	}

	if errs != nil {
		return nil, errs.ErrorOrNil()
	}

	idx.PropertyNames = make([]string, 0, len(idx.PropertyToOptions))
	idx.PropertyOrdinal = make(map[string]int, len(idx.PropertyToOptions))
	for _, opt := range idx.Options {
		if opt.Property == "" {
			continue
		}
		if _, ok := idx.PropertyOrdinal[opt.Property]; ok {
			continue
		}
		idx.PropertyOrdinal[opt.Property] = len(idx.PropertyNames)
		idx.PropertyNames = append(idx.PropertyNames, opt.Property)
	}

	return idx, nil
}

// Properties returns every distinct property name, in first-discovery
// order — the iteration order propenc's bi-implication pass requires for
// determinism.
func (idx *Index) Properties() []string {
	return idx.PropertyNames
}

// ResolveProperty returns the ordinal assigned to an already-declared
// property name, allocating a fresh one on the fly for names first seen
// after Build: a guard atom resolved in lenient mode (encoder package) or
// an antonym naming an undeclared property (propenc).
// Declared properties never take this lenient path since Build already
// assigned their ordinals.
func (idx *Index) ResolveProperty(name string) int {
	if ord, ok := idx.PropertyOrdinal[name]; ok {
		return ord
	}
	ord := len(idx.PropertyNames)
	idx.PropertyOrdinal[name] = ord
	idx.PropertyNames = append(idx.PropertyNames, name)
	return ord
}
