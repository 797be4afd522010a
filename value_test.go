package flagtok

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		v := StringValue("8080")
		s, ok := v.Str()
		require.True(t, ok)
		assert.Equal(t, "8080", s)
		assert.False(t, v.IsPresence())
		assert.Equal(t, "8080", v.String())
	})
	t.Run("string true is not presence", func(t *testing.T) {
		t.Parallel()
		v := StringValue("true")
		assert.False(t, v.IsPresence())
		assert.NotEqual(t, Presence(), v)
	})
	t.Run("presence", func(t *testing.T) {
		t.Parallel()
		v := Presence()
		_, ok := v.Str()
		assert.False(t, ok)
		assert.True(t, v.IsPresence())
		assert.Equal(t, "true", v.String())
	})
	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		var v Value
		_, ok := v.Str()
		assert.False(t, ok)
		assert.False(t, v.IsPresence())
		assert.Equal(t, "", v.String())
	})
}

func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()

	res := Parse([]string{"in.txt", "--name", `say "hi"`, "--verbose", "-n="})
	b, err := json.Marshal(res.Flags)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"say \"hi\"","verbose":true,"n=":true}`, string(b))

	b, err = json.Marshal(Value{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
