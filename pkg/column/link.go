package column

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// linkColumn holds editable URI cells. Validation requires the value to
// parse as an absolute URL.
type linkColumn struct {
	baseColumn
}

func newLinkColumn(p Props) Column {
	return linkColumn{newBase(p)}
}

func (linkColumn) Kind() grid.Kind    { return grid.KindURI }
func (linkColumn) SortMode() SortMode { return SortDefault }

func (c linkColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	s := strings.TrimSpace(convert.SafeString(data))
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return s, false
	}
	if !c.allow(s) {
		return s, false
	}
	return s, true
}

func (c linkColumn) GetCell(data any, validate bool) grid.Cell {
	if data == nil {
		return grid.NewMissingCell(grid.KindURI)
	}
	s := strings.TrimSpace(convert.SafeString(data))
	if validate {
		if _, ok := c.Validate(s); !ok {
			return grid.NewErrorCell("Invalid link",
				fmt.Sprintf("value %q is not an absolute URL", s))
		}
	}
	return grid.Cell{
		Kind:         grid.KindURI,
		Data:         s,
		DisplayData:  s,
		ReadOnly:     !c.props.IsEditable,
		AllowOverlay: true,
	}
}

func (c linkColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
