package column

import (
	"strings"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// listColumn holds read-only sequences. Input is normalized through the
// array coercion policy (JSON-looking strings, comma-separated strings,
// scalars, structured values) into a uniform ordered sequence.
type listColumn struct {
	baseColumn
}

func newListColumn(p Props) Column {
	return listColumn{newBase(p)}
}

func (listColumn) Kind() grid.Kind    { return grid.KindBubble }
func (listColumn) SortMode() SortMode { return SortDefault }

func (c listColumn) Validate(data any) (any, bool) {
	return convert.SafeArray(data), true
}

func (c listColumn) GetCell(data any, validate bool) grid.Cell {
	if data == nil {
		cell := grid.NewMissingCell(grid.KindBubble)
		cell.ReadOnly = true
		cell.AllowOverlay = false
		return cell
	}
	elems := convert.SafeArray(data)
	display := make([]string, len(elems))
	for i, e := range elems {
		display[i] = convert.SafeString(e)
	}
	return grid.Cell{
		Kind:        grid.KindBubble,
		Data:        elems,
		DisplayData: strings.Join(display, ","),
		ReadOnly:    true,
	}
}

func (c listColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
