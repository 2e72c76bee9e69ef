package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlledValuePrecedence(t *testing.T) {
	t.Parallel()

	cv := NewControlledValue("a", nil)
	cv.Write("y")
	cv.SetExternal("x")

	assert.True(t, cv.Controlled())
	assert.Equal(t, "x", cv.Value())
	assert.Equal(t, "y", cv.Internal())
}

func TestControlledValueFallback(t *testing.T) {
	t.Parallel()

	cv := NewControlledValue("1", nil)
	assert.Equal(t, "1", cv.Value())

	cv.Write("2")
	assert.Equal(t, "2", cv.Value())
}

func TestControlledValueWriteWhileControlled(t *testing.T) {
	t.Parallel()

	var notified []string
	cv := NewControlledValue("default", func(v string) { notified = append(notified, v) })
	cv.SetExternal("owner")

	cv.Write("requested")

	assert.Equal(t, "owner", cv.Value(), "controlled writes must not change the effective value")
	assert.Equal(t, "default", cv.Internal())
	assert.Equal(t, []string{"requested"}, notified)
}

func TestControlledValueNotifiesInBothModes(t *testing.T) {
	t.Parallel()

	calls := 0
	cv := NewControlledValue(0, func(int) { calls++ })
	cv.Write(1)
	cv.SetExternal(5)
	cv.Write(2)

	assert.Equal(t, 2, calls)
}

// Zero values supplied by the owner are real values, not "absent".
func TestControlledValueZeroIsAuthoritative(t *testing.T) {
	t.Parallel()

	num := NewControlledValue(7, nil)
	num.SetExternal(0)
	assert.Equal(t, 0, num.Value())

	str := NewControlledValue("fallback", nil)
	str.SetExternal("")
	assert.Equal(t, "", str.Value())

	flag := NewControlledValue(true, nil)
	flag.SetExternal(false)
	assert.False(t, flag.Value())
}

func TestControlledValueClearExternal(t *testing.T) {
	t.Parallel()

	cv := NewControlledValue("inner", nil)
	cv.SetExternal("outer")
	cv.ClearExternal()

	assert.False(t, cv.Controlled())
	assert.Equal(t, "inner", cv.Value())
}

func TestControlledValueOnChangeReplaced(t *testing.T) {
	t.Parallel()

	var got string
	cv := NewControlledValue("", nil)
	cv.Write("silent")
	cv.OnChange(func(v string) { got = v })
	cv.Write("loud")

	assert.Equal(t, "loud", got)
}
