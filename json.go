package html

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// AttrsFromJSON converts a JSON object into Attrs.  Strings, numbers, booleans and null map to string, float64, bool
// and nil; arrays become []string of their elements' string forms.  Nested objects are kept as their raw JSON text.
func AttrsFromJSON(js []byte) (Attrs, error) {
	if !gjson.ValidBytes(js) {
		return nil, fmt.Errorf(`invalid JSON attributes`)
	}
	data := gjson.ParseBytes(js)
	if !data.IsObject() {
		return nil, fmt.Errorf(`expected a JSON object for attributes, got %v`, data.Type)
	}
	return AttrsFromGJSON(data), nil
}

// AttrsFromGJSON converts a parsed GJSON object into Attrs.  Members of anything other than an object are ignored.
func AttrsFromGJSON(data gjson.Result) Attrs {
	attrs := make(Attrs)
	if !data.IsObject() {
		return attrs
	}
	data.ForEach(func(key, value gjson.Result) bool {
		attrs[key.String()] = fromGJSON(value)
		return true
	})
	return attrs
}

func fromGJSON(value gjson.Result) any {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return value.Float()
	case gjson.String:
		return value.String()
	}
	if value.IsArray() {
		items := value.Array()
		seq := make([]string, len(items))
		for i, item := range items {
			seq[i] = item.String()
		}
		return seq
	}
	return value.Raw
}
