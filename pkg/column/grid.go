package column

import "github.com/oakwood-commons/gridcol/pkg/grid"

// Grow weights for stretched columns. Index columns take less leftover
// space than data columns.
const (
	indexColumnGrow = 1
	dataColumnGrow  = 3
)

// ToGridColumn maps a column instance to the external grid-column shape.
// This is the single translation point to the rendering boundary.
func ToGridColumn(c Column) grid.Column {
	p := c.Props()
	gc := grid.Column{
		ID:      p.ID,
		Title:   p.Title,
		HasMenu: false,
		Theme:   p.Theme,
		Icon:    p.Icon,
	}
	if p.IsStretched {
		gc.Grow = dataColumnGrow
		if p.IsIndex {
			gc.Grow = indexColumnGrow
		}
	}
	if p.Width > 0 {
		gc.Width = p.Width
	}
	return gc
}
