package column

import (
	"strings"

	"github.com/oakwood-commons/gridcol/pkg/logger"
)

// Registered type names for the built-in kinds.
const (
	TypeObject   = "object"
	TypeText     = "text"
	TypeNumber   = "number"
	TypeCheckbox = "checkbox"
	TypeDatetime = "datetime"
	TypeSelect   = "select"
	TypeList     = "list"
	TypeLink     = "link"
)

// creators enumerates every supported kind explicitly. The set is closed;
// unknown type names fall back to the object kind.
var creators = map[string]Creator{
	TypeObject:   {New: newObjectColumn, Editable: false},
	TypeText:     {New: newTextColumn, Editable: true},
	TypeNumber:   {New: newNumberColumn, Editable: true},
	TypeCheckbox: {New: newCheckboxColumn, Editable: true},
	TypeDatetime: {New: newDatetimeColumn, Editable: true},
	TypeSelect:   {New: newSelectColumn, Editable: true},
	TypeList:     {New: newListColumn, Editable: false},
	TypeLink:     {New: newLinkColumn, Editable: true},
}

// LookupCreator resolves a type name to its factory. Unknown names resolve
// to the object kind so that a table with a bad type tag still renders.
func LookupCreator(typeName string) (Creator, bool) {
	c, ok := creators[strings.ToLower(strings.TrimSpace(typeName))]
	if !ok {
		return creators[TypeObject], false
	}
	return c, true
}

// CreateColumn builds a column instance for the given definition. The kind
// is taken from CustomType when set, otherwise derived from the arrow type
// tag of the source data.
func CreateColumn(p Props) Column {
	typeName := p.CustomType
	if typeName == "" {
		typeName = kindForArrowType(p.ArrowType)
	}
	creator, known := LookupCreator(typeName)
	if !known {
		logger.GetGlobalLogger().Info("unknown column type, falling back to object",
			"column", p.ID, "type", typeName)
	}
	return creator.New(p)
}

// kindForArrowType maps a source data type tag onto a default column kind.
func kindForArrowType(arrowType string) string {
	switch strings.ToLower(arrowType) {
	case "bool", "boolean":
		return TypeCheckbox
	case "int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "decimal":
		return TypeNumber
	case "date", "datetime", "time", "timestamp":
		return TypeDatetime
	case "list", "array":
		return TypeList
	case "string", "unicode", "text":
		return TypeText
	default:
		return TypeObject
	}
}
