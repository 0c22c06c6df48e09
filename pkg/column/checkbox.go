package column

import (
	"fmt"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// checkboxColumn holds editable boolean cells with flexible literal
// recognition on input (yes/no, on/off, 1/0, ...).
type checkboxColumn struct {
	baseColumn
}

func newCheckboxColumn(p Props) Column {
	return checkboxColumn{newBase(p)}
}

func (checkboxColumn) Kind() grid.Kind    { return grid.KindBoolean }
func (checkboxColumn) SortMode() SortMode { return SortDefault }

func (c checkboxColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	b, res := convert.SafeBool(data)
	if res != convert.OK {
		return data, false
	}
	if !c.allow(b) {
		return b, false
	}
	return b, true
}

func (c checkboxColumn) GetCell(data any, validate bool) grid.Cell {
	b, res := convert.SafeBool(data)
	switch res {
	case convert.Missing:
		return grid.NewMissingCell(grid.KindBoolean)
	case convert.Invalid:
		return grid.NewErrorCell("Invalid boolean",
			fmt.Sprintf("value %q cannot be interpreted as a boolean", convert.SafeString(data)))
	}
	if validate {
		if _, ok := c.Validate(b); !ok {
			return grid.NewErrorCell("Invalid boolean",
				fmt.Sprintf("value %v violates the column constraints", b))
		}
	}
	display := "false"
	if b {
		display = "true"
	}
	return grid.Cell{
		Kind:         grid.KindBoolean,
		Data:         b,
		DisplayData:  display,
		ReadOnly:     !c.props.IsEditable,
		AllowOverlay: false,
	}
}

func (c checkboxColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
