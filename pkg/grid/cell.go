// Package grid defines the cell and column contract exchanged with the
// external grid renderer. Column implementations produce values conforming
// to this contract; rendering, theming, and interaction live outside this
// module.
package grid

// Kind identifies the renderable cell primitive a column kind produces.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindURI     Kind = "uri"
	KindBubble  Kind = "bubble"
	KindLoading Kind = "loading"
)

// Cell is the smallest renderable unit of tabular data. The base shape
// carries the kind tag, a raw payload, and a display-formatted payload.
// The tag fields (IsError, IsMissingValue, Tooltip) are structural and
// independent: a cell may carry several tags at once.
type Cell struct {
	Kind         Kind
	Data         any
	DisplayData  string
	ReadOnly     bool
	AllowOverlay bool

	IsError        bool
	ErrorDetails   string
	IsMissingValue bool
	Tooltip        string
	Faded          bool
}

// errorCellPrefix marks error cells in the rendered grid.
const errorCellPrefix = "⚠️ "

// NewErrorCell builds a read-only, overlay-allowed cell tagged as an error.
// The display text is the warning-prefixed short message; the raw payload
// additionally appends details when present.
func NewErrorCell(msg, details string) Cell {
	data := msg
	if details != "" {
		data = msg + "\n" + details
	}
	return Cell{
		Kind:         KindText,
		Data:         data,
		DisplayData:  errorCellPrefix + msg,
		ReadOnly:     true,
		AllowOverlay: true,
		IsError:      true,
		ErrorDetails: details,
	}
}

// NewMissingCell builds an overlay-allowed cell of the given kind tagged as
// holding no value. Callers set the payload a renderer should show for
// "nothing here" (usually nil data and an empty display string).
func NewMissingCell(kind Kind) Cell {
	return Cell{
		Kind:           kind,
		AllowOverlay:   true,
		IsMissingValue: true,
	}
}

// NewLoadingCell builds a non-overlay placeholder used while a value is not
// yet available.
func NewLoadingCell() Cell {
	return Cell{
		Kind: KindLoading,
	}
}

// NewTextCell builds an empty, overlay-allowed text cell with a style hint.
func NewTextCell(readOnly, faded bool) Cell {
	return Cell{
		Kind:         KindText,
		Data:         "",
		DisplayData:  "",
		ReadOnly:     readOnly,
		AllowOverlay: true,
		Faded:        faded,
	}
}

// IsErrorCell reports whether the cell carries the error tag.
func IsErrorCell(c Cell) bool {
	return c.IsError
}

// IsMissingValueCell reports whether the cell represents "no value",
// which is distinct from an error.
func IsMissingValueCell(c Cell) bool {
	return c.IsMissingValue
}

// HasTooltip reports whether the cell carries a non-empty tooltip.
func HasTooltip(c Cell) bool {
	return c.Tooltip != ""
}
