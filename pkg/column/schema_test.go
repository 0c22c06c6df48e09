package column

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
defaults:
  number:
    precision: 2
    min_value: 0
columns:
  - id: name
    title: Name
    type: text
    editable: true
    stretched: true
  - id: price
    type: number
    options:
      min_value: 1
  - id: internal
    type: text
    hidden: true
`

func TestLoadSchemaBytes(t *testing.T) {
	props, err := LoadSchemaBytes([]byte(testSchema), logr.Discard())
	require.NoError(t, err)
	require.Len(t, props, 3)

	name := props[0]
	assert.Equal(t, "name", name.ID)
	assert.Equal(t, "Name", name.Title)
	assert.Equal(t, TypeText, name.CustomType)
	assert.True(t, name.IsEditable)
	assert.True(t, name.IsStretched)
	assert.Equal(t, 0, name.IndexNumber)

	price := props[1]
	assert.Equal(t, 1, price.IndexNumber)
	// Per-type defaults merge beneath the column's own options.
	assert.Equal(t, 2, price.TypeOptions["precision"])
	assert.Equal(t, 1, price.TypeOptions["min_value"])

	assert.True(t, props[2].IsHidden)
}

func TestLoadSchemaBytesTitleAndNameFallbacks(t *testing.T) {
	props, err := LoadSchemaBytes([]byte(`
columns:
  - id: col_a
    name: field_a
`), logr.Discard())
	require.NoError(t, err)
	assert.Equal(t, "field_a", props[0].Name)
	assert.Equal(t, "field_a", props[0].Title)

	props, err = LoadSchemaBytes([]byte(`
columns:
  - id: col_b
`), logr.Discard())
	require.NoError(t, err)
	assert.Equal(t, "col_b", props[0].Name)
}

func TestLoadSchemaBytesRejectsBadSchemas(t *testing.T) {
	_, err := LoadSchemaBytes([]byte("columns: []"), logr.Discard())
	assert.Error(t, err)

	_, err = LoadSchemaBytes([]byte(`
columns:
  - title: no id here
`), logr.Discard())
	assert.Error(t, err)

	_, err = LoadSchemaBytes([]byte(`
columns:
  - id: dup
  - id: dup
`), logr.Discard())
	assert.Error(t, err)

	_, err = LoadSchemaBytes([]byte("not: [valid"), logr.Discard())
	assert.Error(t, err)
}

func TestLoadSchemaFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))

	props, err := LoadSchema(path, logr.Discard())
	require.NoError(t, err)
	assert.Len(t, props, 3)

	_, err = LoadSchema(filepath.Join(dir, "missing.yaml"), logr.Discard())
	assert.Error(t, err)
}

func TestSchemaColumnsAreCreatable(t *testing.T) {
	props, err := LoadSchemaBytes([]byte(testSchema), logr.Discard())
	require.NoError(t, err)
	for _, p := range props {
		col := CreateColumn(p)
		require.NotNil(t, col)
		assert.Equal(t, p.ID, col.Props().ID)
	}
}
