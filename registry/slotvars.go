package registry

// SlotKey composes a base entity id (an option's or a property's ordinal)
// with a slot number. Passes use SlotKey as a map key instead of building
// synthetic string labels ("opt3@slot5") purely for lookups — the string
// form is still what gets interned (so diagnostics stay readable), but
// repeated lookups never re-format a string.
type SlotKey struct {
	Base int
	Slot int
}

// SlotVars caches Base/Slot → VarID for one category of per-slot
// variable (option-slot or property-slot). Create one with make; a nil
// SlotVars answers Get but panics on Set.
type SlotVars map[SlotKey]VarID

// Get returns the cached id for (base, slot) and whether it was present.
func (m SlotVars) Get(base, slot int) (VarID, bool) {
	id, ok := m[SlotKey{Base: base, Slot: slot}]
	return id, ok
}

// Set records the id for (base, slot).
func (m SlotVars) Set(base, slot int, id VarID) {
	m[SlotKey{Base: base, Slot: slot}] = id
}
