package state

// ControlledValue reconciles an owner-supplied value with an internally held
// fallback. Presence of the external value is tracked explicitly, so a
// controlled zero value ("", 0, false) is still authoritative.
type ControlledValue[T any] struct {
	external    T
	hasExternal bool
	internal    T
	onChange    func(T)
}

// NewControlledValue creates an uncontrolled bridge seeded with defaultValue.
// onChange may be nil.
func NewControlledValue[T any](defaultValue T, onChange func(T)) *ControlledValue[T] {
	return &ControlledValue[T]{internal: defaultValue, onChange: onChange}
}

// SetExternal switches the bridge to controlled mode with value v.
func (c *ControlledValue[T]) SetExternal(v T) {
	c.external = v
	c.hasExternal = true
}

// ClearExternal returns the bridge to uncontrolled mode. The internal value
// is whatever it was before the owner took control.
func (c *ControlledValue[T]) ClearExternal() {
	var zero T
	c.external = zero
	c.hasExternal = false
}

// Controlled reports whether an external value is present.
func (c *ControlledValue[T]) Controlled() bool {
	return c.hasExternal
}

// Value returns the effective value.
func (c *ControlledValue[T]) Value() T {
	if c.hasExternal {
		return c.external
	}
	return c.internal
}

// Internal returns the uncontrolled fallback regardless of mode.
func (c *ControlledValue[T]) Internal() T {
	return c.internal
}

// Write records v in uncontrolled mode and always notifies the owner.
func (c *ControlledValue[T]) Write(v T) {
	if !c.hasExternal {
		c.internal = v
	}
	if c.onChange != nil {
		c.onChange(v)
	}
}

// OnChange replaces the change callback.
func (c *ControlledValue[T]) OnChange(fn func(T)) {
	c.onChange = fn
}
