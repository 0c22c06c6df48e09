package column

import "github.com/oakwood-commons/gridcol/pkg/grid"

// Alignment positions cell content within a column.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Props is the immutable descriptor of a single table column. ID is unique
// within a table definition; IndexNumber defines stable column ordering.
type Props struct {
	// ID uniquely identifies the column within its table.
	ID string
	// Name is the source field name in the tabular data.
	Name string
	// Title is the display header text.
	Title string
	// IndexNumber is the positional index of the column.
	IndexNumber int
	// ArrowType tags the source data type (e.g. "float64", "bool").
	ArrowType string

	IsEditable  bool
	IsHidden    bool
	IsIndex     bool
	IsStretched bool
	IsRequired  bool

	// Width is an explicit column width. Zero means unset.
	Width int
	// Help is shown as header help text.
	Help string
	// CustomType overrides the kind derived from ArrowType.
	CustomType string
	// TypeOptions carries free-form per-kind options (merged defaults plus
	// user overrides).
	TypeOptions map[string]any
	// ContentAlignment is one of left, center, right. Empty means left.
	ContentAlignment Alignment
	// DefaultValue seeds new cells: a string, number, or boolean.
	DefaultValue any

	Theme *grid.Theme
	Icon  string
}
