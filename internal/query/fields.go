package query

import "strings"

// Field is one of the queryable filesystem attributes. Parser,
// evaluator, and ordering all dispatch on the same enumeration, so an
// attribute added here is automatically available in every clause.
type Field int

const (
	FieldName Field = iota
	FieldPath
	FieldSize
	FieldModified
	FieldCreated
	FieldExt
	FieldPermissions
	FieldOwner
	FieldIsHidden
	FieldIsReadonly
	FieldType
)

// FieldKind is the comparison domain of a field
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumeric
	KindBool
	KindTime
)

var fieldNames = map[string]Field{
	"name":        FieldName,
	"path":        FieldPath,
	"size":        FieldSize,
	"modified":    FieldModified,
	"created":     FieldCreated,
	"ext":         FieldExt,
	"permissions": FieldPermissions,
	"owner":       FieldOwner,
	"is_hidden":   FieldIsHidden,
	"is_readonly": FieldIsReadonly,
	"type":        FieldType,
}

// AllFields lists every field in display order
var AllFields = []Field{
	FieldName,
	FieldPath,
	FieldSize,
	FieldModified,
	FieldCreated,
	FieldExt,
	FieldPermissions,
	FieldOwner,
	FieldIsHidden,
	FieldIsReadonly,
	FieldType,
}

// ParseField resolves a field name, case-insensitively
func ParseField(name string) (Field, bool) {
	f, ok := fieldNames[strings.ToLower(name)]
	return f, ok
}

// String returns the query-language name of the field
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPath:
		return "path"
	case FieldSize:
		return "size"
	case FieldModified:
		return "modified"
	case FieldCreated:
		return "created"
	case FieldExt:
		return "ext"
	case FieldPermissions:
		return "permissions"
	case FieldOwner:
		return "owner"
	case FieldIsHidden:
		return "is_hidden"
	case FieldIsReadonly:
		return "is_readonly"
	case FieldType:
		return "type"
	default:
		return "unknown"
	}
}

// Kind returns the comparison domain of the field
func (f Field) Kind() FieldKind {
	switch f {
	case FieldSize:
		return KindNumeric
	case FieldModified, FieldCreated:
		return KindTime
	case FieldIsHidden, FieldIsReadonly:
		return KindBool
	default:
		return KindString
	}
}
