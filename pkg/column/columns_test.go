package column

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridcol/pkg/grid"
)

func TestNumberColumnEndToEnd(t *testing.T) {
	col := CreateColumn(Props{ID: "price", CustomType: TypeNumber, IsEditable: true})

	cell := col.GetCell("1,234.5", true)
	require.False(t, grid.IsErrorCell(cell), "display data: %s", cell.DisplayData)
	assert.Equal(t, float64(1234.5), cell.Data)
	assert.Equal(t, "1,234.5", cell.DisplayData)
	assert.Equal(t, float64(1234.5), col.GetCellValue(cell))
}

func TestNumberColumnPrecisionTruncates(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "p",
		CustomType: TypeNumber,
		TypeOptions: map[string]any{
			"precision": 2,
		},
	})
	cell := col.GetCell(3.14159, false)
	assert.Equal(t, 3.14, cell.Data)
	assert.Equal(t, "3.14", cell.DisplayData)
}

func TestNumberColumnRangeValidation(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "p",
		CustomType: TypeNumber,
		TypeOptions: map[string]any{
			"min_value": 0,
			"max_value": 10,
		},
	})
	cell := col.GetCell(-1, true)
	assert.True(t, grid.IsErrorCell(cell))

	// Without validation the out-of-range value still converts.
	cell = col.GetCell(-1, false)
	assert.False(t, grid.IsErrorCell(cell))
	assert.Equal(t, float64(-1), cell.Data)

	_, ok := col.Validate(5)
	assert.True(t, ok)
	_, ok = col.Validate(11)
	assert.False(t, ok)
}

func TestNumberColumnInvalidAndMissing(t *testing.T) {
	col := CreateColumn(Props{ID: "p", CustomType: TypeNumber})

	cell := col.GetCell("not a number", false)
	assert.True(t, grid.IsErrorCell(cell))
	assert.False(t, grid.IsMissingValueCell(cell))

	cell = col.GetCell(nil, false)
	assert.True(t, grid.IsMissingValueCell(cell))
	assert.Nil(t, col.GetCellValue(cell))
}

func TestCheckboxColumn(t *testing.T) {
	col := CreateColumn(Props{ID: "done", CustomType: TypeCheckbox, IsEditable: true})

	cell := col.GetCell("yes", true)
	require.False(t, grid.IsErrorCell(cell))
	assert.Equal(t, true, cell.Data)
	assert.Equal(t, grid.KindBoolean, cell.Kind)

	cell = col.GetCell("maybe", false)
	assert.True(t, grid.IsErrorCell(cell))

	cell = col.GetCell("", false)
	assert.True(t, grid.IsMissingValueCell(cell))
}

func TestTextColumnMaxChars(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "name",
		CustomType: TypeText,
		IsEditable: true,
		TypeOptions: map[string]any{
			"max_chars": 3,
		},
	})
	_, ok := col.Validate("abc")
	assert.True(t, ok)
	_, ok = col.Validate("abcd")
	assert.False(t, ok)

	cell := col.GetCell("abcd", true)
	assert.True(t, grid.IsErrorCell(cell))

	cell = col.GetCell(12345, false)
	assert.Equal(t, "12345", cell.Data)
}

func TestTextColumnValidationRule(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "code",
		CustomType: TypeText,
		TypeOptions: map[string]any{
			"validate": `_.startsWith("C-")`,
		},
	})
	_, ok := col.Validate("C-42")
	assert.True(t, ok)
	_, ok = col.Validate("42")
	assert.False(t, ok)
}

func TestDatetimeColumn(t *testing.T) {
	col := CreateColumn(Props{ID: "added", CustomType: TypeDatetime})
	want := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)

	fromSeconds := col.GetCell(1700000000, false)
	fromString := col.GetCell("2023-11-14T22:13:20Z", false)
	require.False(t, grid.IsErrorCell(fromSeconds))
	require.False(t, grid.IsErrorCell(fromString))
	assert.Equal(t, want, fromSeconds.Data)
	assert.Equal(t, fromSeconds.Data, fromString.Data)
	assert.Equal(t, "2023-11-14 22:13:20", fromSeconds.DisplayData)
}

func TestDatetimeColumnFormatAndBounds(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "added",
		CustomType: TypeDatetime,
		TypeOptions: map[string]any{
			"format":    "2006-01-02",
			"min_value": "2020-01-01T00:00:00Z",
		},
	})
	cell := col.GetCell("2024-06-01", true)
	require.False(t, grid.IsErrorCell(cell))
	assert.Equal(t, "2024-06-01", cell.DisplayData)

	cell = col.GetCell("2019-06-01", true)
	assert.True(t, grid.IsErrorCell(cell))
}

func TestSelectColumn(t *testing.T) {
	col := CreateColumn(Props{
		ID:         "state",
		CustomType: TypeSelect,
		TypeOptions: map[string]any{
			"options": []any{"open", "closed"},
		},
	})
	_, ok := col.Validate("open")
	assert.True(t, ok)
	_, ok = col.Validate("pending")
	assert.False(t, ok)

	cell := col.GetCell("pending", true)
	assert.True(t, grid.IsErrorCell(cell))
}

func TestListColumn(t *testing.T) {
	col := CreateColumn(Props{ID: "tags", CustomType: TypeList})

	cell := col.GetCell("a,b,c", false)
	assert.Equal(t, grid.KindBubble, cell.Kind)
	assert.Equal(t, "a,b,c", cell.DisplayData)
	assert.Len(t, cell.Data, 3)
	assert.True(t, cell.ReadOnly)

	cell = col.GetCell("[1,2,3]", false)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, cell.Data)

	cell = col.GetCell(nil, false)
	assert.True(t, grid.IsMissingValueCell(cell))
	assert.Nil(t, col.GetCellValue(cell))
}

func TestLinkColumn(t *testing.T) {
	col := CreateColumn(Props{ID: "url", CustomType: TypeLink, IsEditable: true})

	cell := col.GetCell("  https://example.com/a ", true)
	require.False(t, grid.IsErrorCell(cell))
	assert.Equal(t, "https://example.com/a", cell.Data)
	assert.Equal(t, grid.KindURI, cell.Kind)

	cell = col.GetCell("not a url", true)
	assert.True(t, grid.IsErrorCell(cell))
}

func TestObjectColumnFallback(t *testing.T) {
	col := CreateColumn(Props{ID: "blob", CustomType: "no-such-kind"})
	assert.Equal(t, grid.KindText, col.Kind())

	cell := col.GetCell(map[string]any{"a": 1}, false)
	assert.Equal(t, `{"a":1}`, cell.DisplayData)
	assert.True(t, cell.ReadOnly)
}

func TestRequiredColumnsRejectNil(t *testing.T) {
	for _, typeName := range []string{TypeText, TypeNumber, TypeCheckbox, TypeDatetime, TypeSelect, TypeLink} {
		col := CreateColumn(Props{ID: "r", CustomType: typeName, IsRequired: true})
		_, ok := col.Validate(nil)
		assert.False(t, ok, "required %s column must reject nil", typeName)

		col = CreateColumn(Props{ID: "o", CustomType: typeName})
		_, ok = col.Validate(nil)
		assert.True(t, ok, "optional %s column must accept nil", typeName)
	}
}

func TestLookupCreator(t *testing.T) {
	c, known := LookupCreator(TypeNumber)
	assert.True(t, known)
	assert.True(t, c.Editable)

	c, known = LookupCreator(TypeList)
	assert.True(t, known)
	assert.False(t, c.Editable)

	c, known = LookupCreator("bogus")
	assert.False(t, known)
	require.NotNil(t, c.New)
	assert.Equal(t, grid.KindText, c.New(Props{ID: "x"}).Kind())
}

func TestKindForArrowType(t *testing.T) {
	tests := map[string]string{
		"bool":      TypeCheckbox,
		"float64":   TypeNumber,
		"int64":     TypeNumber,
		"timestamp": TypeDatetime,
		"list":      TypeList,
		"string":    TypeText,
		"mystery":   TypeObject,
	}
	for arrow, want := range tests {
		col := CreateColumn(Props{ID: "c", ArrowType: arrow})
		wantCreator, _ := LookupCreator(want)
		assert.Equal(t, wantCreator.New(Props{ID: "c"}).Kind(), col.Kind(), "arrow type %s", arrow)
	}
}

func TestSortModes(t *testing.T) {
	assert.Equal(t, SortSmart, CreateColumn(Props{CustomType: TypeNumber}).SortMode())
	assert.Equal(t, SortRaw, CreateColumn(Props{CustomType: TypeDatetime}).SortMode())
	assert.Equal(t, SortDefault, CreateColumn(Props{CustomType: TypeText}).SortMode())
}

func TestToGridColumn(t *testing.T) {
	col := CreateColumn(Props{
		ID:          "name",
		Title:       "Name",
		CustomType:  TypeText,
		IsStretched: true,
	})
	gc := ToGridColumn(col)
	assert.Equal(t, "name", gc.ID)
	assert.Equal(t, "Name", gc.Title)
	assert.Equal(t, 3, gc.Grow)
	assert.False(t, gc.HasMenu)

	col = CreateColumn(Props{ID: "idx", CustomType: TypeText, IsStretched: true, IsIndex: true})
	assert.Equal(t, 1, ToGridColumn(col).Grow)

	col = CreateColumn(Props{ID: "w", CustomType: TypeText, Width: 120})
	gc = ToGridColumn(col)
	assert.Equal(t, 120, gc.Width)
	assert.Equal(t, 0, gc.Grow)
}
