package column

import (
	"fmt"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// numberColumn holds editable numeric cells. Options: "min_value" and
// "max_value" bound the accepted range, "precision" truncates fractional
// digits for storage and display without rounding.
type numberColumn struct {
	baseColumn
}

func newNumberColumn(p Props) Column {
	return numberColumn{newBase(p)}
}

func (numberColumn) Kind() grid.Kind    { return grid.KindNumber }
func (numberColumn) SortMode() SortMode { return SortSmart }

// Validate parses the input and checks range and rule constraints. When
// precision truncation changes the value, the corrected value is returned
// in place of the original.
func (c numberColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	f, res := convert.SafeNumber(data)
	if res != convert.OK {
		return data, false
	}
	if min, ok := c.optFloat("min_value"); ok && f < min {
		return f, false
	}
	if max, ok := c.optFloat("max_value"); ok && f > max {
		return f, false
	}
	if !c.allow(f) {
		return f, false
	}
	if p, ok := c.optInt("precision"); ok {
		if t := convert.TruncateDecimals(f, p); t != f {
			return t, true
		}
	}
	return f, true
}

func (c numberColumn) GetCell(data any, validate bool) grid.Cell {
	f, res := convert.SafeNumber(data)
	switch res {
	case convert.Missing:
		return grid.NewMissingCell(grid.KindNumber)
	case convert.Invalid:
		return grid.NewErrorCell("Invalid number",
			fmt.Sprintf("value %q cannot be interpreted as a number", convert.SafeString(data)))
	}
	if validate {
		corrected, ok := c.Validate(f)
		if !ok {
			return grid.NewErrorCell("Invalid number",
				fmt.Sprintf("value %v violates the column constraints", f))
		}
		if cf, isFloat := corrected.(float64); isFloat {
			f = cf
		}
	}
	precision, hasPrecision := c.optInt("precision")
	if hasPrecision {
		f = convert.TruncateDecimals(f, precision)
	} else {
		precision = 4
	}
	return grid.Cell{
		Kind:         grid.KindNumber,
		Data:         f,
		DisplayData:  convert.FormatNumber(f, precision, hasPrecision),
		ReadOnly:     !c.props.IsEditable,
		AllowOverlay: true,
	}
}

func (c numberColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
