package column

import (
	"fmt"

	"github.com/oakwood-commons/gridcol/internal/convert"
	"github.com/oakwood-commons/gridcol/pkg/grid"
)

// selectColumn holds single-choice categorical cells. The "options" list
// defines the allowed values; anything outside it fails validation.
type selectColumn struct {
	baseColumn
	choices []string
}

func newSelectColumn(p Props) Column {
	c := selectColumn{baseColumn: newBase(p)}
	raw, _ := p.TypeOptions["options"].([]any)
	for _, v := range raw {
		c.choices = append(c.choices, convert.SafeString(v))
	}
	return c
}

func (selectColumn) Kind() grid.Kind    { return grid.KindText }
func (selectColumn) SortMode() SortMode { return SortDefault }

func (c selectColumn) isChoice(s string) bool {
	for _, choice := range c.choices {
		if choice == s {
			return true
		}
	}
	return false
}

func (c selectColumn) Validate(data any) (any, bool) {
	if data == nil {
		return nil, !c.props.IsRequired
	}
	s := convert.SafeString(data)
	if len(c.choices) > 0 && !c.isChoice(s) {
		return s, false
	}
	if !c.allow(s) {
		return s, false
	}
	return s, true
}

func (c selectColumn) GetCell(data any, validate bool) grid.Cell {
	if data == nil {
		return grid.NewMissingCell(grid.KindText)
	}
	s := convert.SafeString(data)
	if validate {
		if _, ok := c.Validate(s); !ok {
			return grid.NewErrorCell("Invalid option",
				fmt.Sprintf("value %q is not one of the configured options", s))
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

func (c selectColumn) GetCellValue(cell grid.Cell) any {
	if grid.IsMissingValueCell(cell) {
		return nil
	}
	return cell.Data
}
