package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesMemberOrder(t *testing.T) {
	data := []byte(`{"zebra": 1, "apple": 2, "mango": 3}`)

	v, err := Decode(data)
	require.NoError(t, err)

	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "zebra", members[0].Key)
	assert.Equal(t, "apple", members[1].Key)
	assert.Equal(t, "mango", members[2].Key)
}

func TestDecodeYAMLPreservesMemberOrder(t *testing.T) {
	data := []byte("paths:\n  /pets:\n    get: {}\n  /users:\n    get: {}\n  /admin:\n    get: {}\n")

	v, err := Decode(data)
	require.NoError(t, err)

	paths := v.Get("paths").Members()
	require.Len(t, paths, 3)
	assert.Equal(t, "/pets", paths[0].Key)
	assert.Equal(t, "/users", paths[1].Key)
	assert.Equal(t, "/admin", paths[2].Key)
}

func TestDecodeScalarKinds(t *testing.T) {
	data := []byte(`{"s": "text", "i": 42, "f": 2.5, "b": true, "n": null}`)

	v, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, String, v.Get("s").Kind())
	assert.Equal(t, Number, v.Get("i").Kind())
	assert.Equal(t, 42.0, v.Get("i").NumOr(0))
	assert.Equal(t, Number, v.Get("f").Kind())
	assert.Equal(t, 2.5, v.Get("f").NumOr(0))
	assert.Equal(t, Bool, v.Get("b").Kind())
	assert.Equal(t, Null, v.Get("n").Kind())
	assert.Equal(t, Absent, v.Get("missing").Kind())
}

func TestDecodeYAMLVersionStringStaysString(t *testing.T) {
	// A quoted version like "2.0" must not collapse to a float.
	v, err := Decode([]byte(`swagger: "2.0"`))
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.Get("swagger").StrOr(""))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("{unclosed"))
	assert.Error(t, err)
}

func TestDecodeYAMLAnchorsAndAliases(t *testing.T) {
	data := []byte("base: &b\n  type: string\nschema: *b\n")

	v, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "string", v.Get("schema").Get("type").StrOr(""))
}

func TestDecodeEmptyDocument(t *testing.T) {
	v, err := Decode([]byte(""))
	require.NoError(t, err)
	assert.True(t, v.IsNull() || v.IsAbsent())
}
