package column

import (
	"fmt"
	"time"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// defaultDatetimeLayout renders cells when no "format" option is set.
const defaultDatetimeLayout = "2006-01-02 15:04:05"

// datetimeColumn holds UTC timestamps. Options: "format" overrides the
// display layout; "min_value" and "max_value" (RFC 3339 strings) bound the
// accepted range.
type datetimeColumn struct {
	baseColumn
}

func newDatetimeColumn(p Props) Column {
	return datetimeColumn{newBase(p)}
}

func (datetimeColumn) Kind() grid.Kind    { return grid.KindText }
func (datetimeColumn) SortMode() SortMode { return SortRaw }

func (c datetimeColumn) layout() string {
	if f := c.optString("format"); f != "" {
		return f
	}
	return defaultDatetimeLayout
}

func (c datetimeColumn) bound(key string) (time.Time, bool) {
	s := c.optString(key)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func (c datetimeColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	t, res := convert.SafeDate(data)
	if res != convert.OK {
		return data, false
	}
	if min, ok := c.bound("min_value"); ok && t.Before(min) {
		return t, false
	}
	if max, ok := c.bound("max_value"); ok && t.After(max) {
		return t, false
	}
	return t, true
}

func (c datetimeColumn) GetCell(data any, validate bool) grid.Cell {
	t, res := convert.SafeDate(data)
	switch res {
	case convert.Missing:
		return grid.NewMissingCell(grid.KindText)
	case convert.Invalid:
		return grid.NewErrorCell("Invalid date",
			fmt.Sprintf("value %q cannot be interpreted as a date", convert.SafeString(data)))
	}
	if validate {
		if _, ok := c.Validate(t); !ok {
			return grid.NewErrorCell("Invalid date",
				fmt.Sprintf("value %s is outside the allowed range", t.Format(time.RFC3339)))
		}
	}
	return grid.Cell{
		Kind:         grid.KindText,
		Data:         t,
		DisplayData:  t.Format(c.layout()),
		ReadOnly:     !c.props.IsEditable,
		AllowOverlay: true,
	}
}

func (c datetimeColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
