package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	root, err := Decode([]byte(`
components:
  schemas:
    Pet:
      type: object
    "a/b":
      type: string
    "t~x":
      type: integer
    "with space":
      type: boolean
list:
  - zero
  - one
`), FormatYAML)
	require.NoError(t, err)

	tests := []struct {
		pointer string
		want    string
	}{
		{"#/components/schemas/Pet/type", "object"},
		{"/components/schemas/a~1b/type", "string"},
		{"#/components/schemas/t~0x/type", "integer"},
		{"#/components/schemas/with%20space/type", "boolean"},
		{"#/list/1", "one"},
	}
	for _, tt := range tests {
		t.Run(tt.pointer, func(t *testing.T) {
			v, err := Lookup(root, tt.pointer)
			require.NoError(t, err)
			s, _ := v.Scalar()
			assert.Equal(t, tt.want, s)
		})
	}

	t.Run("root", func(t *testing.T) {
		v, err := Lookup(root, "#")
		require.NoError(t, err)
		assert.Same(t, root, v)
	})

	for _, bad := range []string{"#/components/schemas/Nope", "#/list/7", "#/list/x", "#/components/schemas/Pet/type/deeper", "components"} {
		t.Run("error "+bad, func(t *testing.T) {
			_, err := Lookup(root, bad)
			assert.Error(t, err)
		})
	}
}

func TestEscapeToken(t *testing.T) {
	assert.Equal(t, "a~1b~0c", EscapeToken("a/b~c"))
	assert.Equal(t, "a/b~c", UnescapeToken(EscapeToken("a/b~c")))
}
