package column

import (
	"fmt"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// textColumn holds editable free-form strings. The "max_chars" option
// bounds input length; the "validate" option attaches a CEL expression.
type textColumn struct {
	baseColumn
}

func newTextColumn(p Props) Column {
	return textColumn{newBase(p)}
}

func (textColumn) Kind() grid.Kind    { return grid.KindText }
func (textColumn) SortMode() SortMode { return SortDefault }

func (c textColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	s := convert.SafeString(data)
	if max, ok := c.optInt("max_chars"); ok && len([]rune(s)) > max {
		return s, false
	}
	if !c.allow(s) {
		return s, false
	}
	return s, true
}

func (c textColumn) GetCell(data any, validate bool) grid.Cell {
	if data == nil {
		return grid.NewMissingCell(grid.KindText)
	}
	s := convert.SafeString(data)
	if validate {
		if _, ok := c.Validate(s); !ok {
			return grid.NewErrorCell("Invalid input",
				fmt.Sprintf("value %q does not satisfy the column constraints", s))
		}
	}
	return grid.Cell{
		Kind:         grid.KindText,
		Data:         s,
		DisplayData:  s,
		ReadOnly:     !c.props.IsEditable,
		AllowOverlay: true,
	}
}

func (c textColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
