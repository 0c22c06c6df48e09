// Package column implements the typed-column abstraction driving the grid:
// a uniform capability contract, a registry of concrete column kinds, and
// the coercion glue turning raw tabular values into renderable cells and
// back. Every conversion path is total; malformed input degrades to an
// error cell, never a panic.
package column

import "github.com/oakwood-commons/gridcol/pkg/grid"

// SortMode selects how cells of a column compare when sorting.
type SortMode string

const (
	// SortDefault compares display strings.
	SortDefault SortMode = "default"
	// SortRaw compares the underlying typed values.
	SortRaw SortMode = "raw"
	// SortSmart compares numerically when both values parse as numbers,
	// falling back to string comparison.
	SortSmart SortMode = "smart"
)

// Column is the capability contract every concrete column kind implements.
// Instances are constructed once per table column when the schema is
// established and are immutable afterwards.
type Column interface {
	// Kind tags the concrete cell variant this column produces.
	Kind() grid.Kind
	// SortMode returns the comparison mode for this column.
	SortMode() SortMode
	// Props returns the column definition.
	Props() Props
	// Validate checks a raw value against the column constraints. It may
	// return a corrected value to be used in place of the original.
	Validate(data any) (any, bool)
	// GetCell builds a cell from a raw value, optionally validating first
	// and returning an error cell on failure.
	GetCell(data any, validate bool) grid.Cell
	// GetCellValue extracts the semantic value back out of a cell,
	// returning nil for missing-value cells.
	GetCellValue(cell grid.Cell) any
}

// Creator is the factory contract for a column kind. Editable is a static
// capability flag the grid inspects without constructing an instance, e.g.
// to decide whether to offer an add-row affordance.
type Creator struct {
	New      func(Props) Column
	Editable bool
}
