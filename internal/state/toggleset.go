package state

// ActiveSet is an immutable snapshot of the identifiers that are currently
// active (open, selected, checked). IDs are kept in activation order.
type ActiveSet[ID comparable] struct {
	ids []ID
}

// NewActiveSet builds a set from ids, dropping duplicates.
func NewActiveSet[ID comparable](ids ...ID) ActiveSet[ID] {
	var set ActiveSet[ID]
	for _, id := range ids {
		if !set.Contains(id) {
			set.ids = append(set.ids, id)
		}
	}
	return set
}

// Contains reports whether id is active.
func (s ActiveSet[ID]) Contains(id ID) bool {
	for _, candidate := range s.ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// Len returns the number of active identifiers.
func (s ActiveSet[ID]) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the active identifiers in activation order.
func (s ActiveSet[ID]) IDs() []ID {
	out := make([]ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Equal reports whether both sets hold the same identifiers, ignoring order.
func (s ActiveSet[ID]) Equal(other ActiveSet[ID]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func (s ActiveSet[ID]) without(id ID) ActiveSet[ID] {
	out := make([]ID, 0, len(s.ids))
	for _, candidate := range s.ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return ActiveSet[ID]{ids: out}
}

func (s ActiveSet[ID]) with(id ID) ActiveSet[ID] {
	out := make([]ID, len(s.ids), len(s.ids)+1)
	copy(out, s.ids)
	return ActiveSet[ID]{ids: append(out, id)}
}

// ToggleReduce is the pure toggle reducer. An active id is removed; an
// inactive id is added, after clearing the set when multiSelect is false.
func ToggleReduce[ID comparable](set ActiveSet[ID], id ID, multiSelect bool) ActiveSet[ID] {
	if set.Contains(id) {
		return set.without(id)
	}
	if !multiSelect {
		return ActiveSet[ID]{ids: []ID{id}}
	}
	return set.with(id)
}

// ToggleSet manages an ActiveSet under single- or multi-select discipline.
type ToggleSet[ID comparable] struct {
	multiSelect bool
	active      ActiveSet[ID]
}

// NewToggleSet creates a controller. In single-select mode only the last of
// the initial ids survives.
func NewToggleSet[ID comparable](multiSelect bool, initial ...ID) *ToggleSet[ID] {
	ts := &ToggleSet[ID]{multiSelect: multiSelect}
	for _, id := range initial {
		if !ts.active.Contains(id) {
			ts.active = ToggleReduce(ts.active, id, multiSelect)
		}
	}
	return ts
}

// Toggle flips id and returns the resulting set.
func (t *ToggleSet[ID]) Toggle(id ID) ActiveSet[ID] {
	t.active = ToggleReduce(t.active, id, t.multiSelect)
	return t.active
}

// Active returns the current set.
func (t *ToggleSet[ID]) Active() ActiveSet[ID] {
	return t.active
}

// IsActive reports whether id is currently active.
func (t *ToggleSet[ID]) IsActive(id ID) bool {
	return t.active.Contains(id)
}

// MultiSelect reports the discipline fixed at construction.
func (t *ToggleSet[ID]) MultiSelect() bool {
	return t.multiSelect
}

// Reset clears every active identifier.
func (t *ToggleSet[ID]) Reset() {
	t.active = ActiveSet[ID]{}
}
