package payload

import (
	"encoding/json"
	"slices"
)

// ReservedKeys names the metadata keys an XML-to-object parser adds to
// element objects. They never appear in a path inventory.
type ReservedKeys struct {
	Attributes string // "$": attribute map
	Namespaces string // "$ns": namespace info
	Text       string // "_": element text content
}

// DefaultReservedKeys matches the xml2js-style parser output.
var DefaultReservedKeys = ReservedKeys{
	Attributes: "$",
	Namespaces: "$ns",
	Text:       "_",
}

// IsReserved reports whether key is one of the metadata keys.
func (r ReservedKeys) IsReserved(key string) bool {
	return key != "" && (key == r.Attributes || key == r.Namespaces || key == r.Text)
}

// TextContent returns the text-content value of an element object.
func (r ReservedKeys) TextContent(v any) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok || r.Text == "" {
		return nil, false
	}

	text, ok := obj[r.Text]

	return text, ok
}

// ValueType is the JSON-ish type name of a payload value.
type ValueType string

const (
	TypeObject    ValueType = "object"
	TypeArray     ValueType = "array"
	TypeString    ValueType = "string"
	TypeNumber    ValueType = "number"
	TypeBoolean   ValueType = "boolean"
	TypeNull      ValueType = "null"
	TypeUndefined ValueType = "undefined"
)

// Placeholders reported instead of composite sample values.
const (
	ObjectSample = "[Object]"
	ArraySample  = "[Array]"
)

// TypeOf classifies v. found=false means the value does not exist at all,
// as opposed to an explicit null.
func TypeOf(v any, found bool) ValueType {
	if !found {
		return TypeUndefined
	}

	switch v.(type) {
	case nil:
		return TypeNull
	case map[string]any:
		return TypeObject
	case []any:
		return TypeArray
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TypeNumber
	default:
		return TypeObject
	}
}

// Sample returns the display value for v: the scalar itself, or a
// placeholder for composite values.
func Sample(v any, t ValueType) any {
	switch t {
	case TypeObject:
		return ObjectSample
	case TypeArray:
		return ArraySample
	default:
		return v
	}
}

// Keys returns the object keys in lexical order, so walks over the same
// object always visit keys in the same order.
func Keys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// IsComposite reports whether v is an object or a sequence.
func IsComposite(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
