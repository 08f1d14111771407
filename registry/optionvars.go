package registry

import "fmt"

// OptionVars allocates and caches option-slot variables v(o,j). Several
// passes (groupenc, propenc, condition, coverage) all need the same
// v(o,j) for a given option ordinal and slot; sharing one OptionVars per
// Encoder run guarantees they all resolve to the identical VarID.
type OptionVars struct {
	reg   *Registry
	cache SlotVars
}

// NewOptionVars returns an OptionVars backed by reg.
func NewOptionVars(reg *Registry) *OptionVars {
	return &OptionVars{reg: reg, cache: make(SlotVars)}
}

// Get returns v(name, slot), interning it on first use.
func (o *OptionVars) Get(ordinal int, name string, slot int) VarID {
	if id, ok := o.cache.Get(ordinal, slot); ok {
		return id
	}
	id := o.reg.Intern(fmt.Sprintf("v(%s,%d)", name, slot), CategoryOption)
	o.cache.Set(ordinal, slot, id)
	return id
}

// PropertyVars allocates and caches property-slot variables p(π,j).
type PropertyVars struct {
	reg   *Registry
	cache SlotVars
}

// NewPropertyVars returns a PropertyVars backed by reg.
func NewPropertyVars(reg *Registry) *PropertyVars {
	return &PropertyVars{reg: reg, cache: make(SlotVars)}
}

// Get returns p(name, slot), interning it on first use.
func (p *PropertyVars) Get(ordinal int, name string, slot int) VarID {
	if id, ok := p.cache.Get(ordinal, slot); ok {
		return id
	}
	id := p.reg.Intern(fmt.Sprintf("p(%s,%d)", name, slot), CategoryProperty)
	p.cache.Set(ordinal, slot, id)
	return id
}
