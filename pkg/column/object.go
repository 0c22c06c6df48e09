package column

import (
	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// objectColumn renders any value as its safe-string form. It is the
// read-only fallback kind used when no better kind applies.
type objectColumn struct {
	baseColumn
}

func newObjectColumn(p Props) Column {
	return objectColumn{newBase(p)}
}

func (objectColumn) Kind() grid.Kind    { return grid.KindText }
func (objectColumn) SortMode() SortMode { return SortDefault }

func (c objectColumn) Validate(data any) (any, bool) {
	return convert.SafeString(data), true
}

func (c objectColumn) GetCell(data any, validate bool) grid.Cell {
	if data == nil {
		cell := grid.NewMissingCell(grid.KindText)
		cell.ReadOnly = true
		cell.AllowOverlay = false
		return cell
	}
	s := convert.SafeString(data)
	return grid.Cell{
		Kind:         grid.KindText,
		Data:         s,
		DisplayData:  s,
		ReadOnly:     true,
		AllowOverlay: true,
	}
}

func (c objectColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
