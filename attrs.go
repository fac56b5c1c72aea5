package html

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Attrs maps attribute names to values.  Values may be strings, HTML, booleans, numbers, []string, []any,
// fmt.Stringers or nil; anything else is formatted with fmt.Sprint.
type Attrs map[string]any

// Attributes renders attrs as a fragment with a single leading space, like ` class="a" id="b"`.  It returns false if
// there is nothing to render, either because attrs is empty or because every value was nil or a false boolean
// attribute.
//
// Boolean attributes (see IsBooleanAttribute) render as `name="name"` when their value is anything but false or nil
// and are omitted otherwise.  Other attributes with a nil value are omitted.  Slices are joined with spaces.  When
// escape is true, values are escaped unless they are already HTML.
//
// Rendered fragments are sorted as whole strings, not by name, so output does not depend on map order.
func Attributes(attrs Attrs, escape bool) (HTML, bool) {
	if len(attrs) == 0 {
		return ``, false
	}
	fragments := make([]string, 0, len(attrs))
	for name, value := range attrs {
		if IsBooleanAttribute(name) {
			if truthy(value) {
				fragments = append(fragments, name+`="`+name+`"`)
			}
			continue
		}
		if value == nil {
			continue
		}
		str, safe := attrValue(value)
		if escape && !safe {
			str = entityReplacer.Replace(str)
		}
		fragments = append(fragments, name+`="`+str+`"`)
	}
	if len(fragments) == 0 {
		return ``, false
	}
	sort.Strings(fragments)
	return HTML(` ` + strings.Join(fragments, ` `)), true
}

// truthy treats only false and nil as false.  Empty strings and zero are true.
func truthy(value any) bool {
	return value != nil && value != false
}

// attrValue converts a value to its attribute text, reporting if the text is already HTML.
func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case HTML:
		return string(v), true
	case string:
		return v, false
	case []string:
		return strings.Join(v, ` `), false
	case []any:
		seq := make([]string, len(v))
		for i, item := range v {
			seq[i], _ = attrValue(item)
		}
		return strings.Join(seq, ` `), false
	case bool:
		return strconv.FormatBool(v), false
	case int:
		return strconv.Itoa(v), false
	case int8:
		return strconv.FormatInt(int64(v), 10), false
	case int16:
		return strconv.FormatInt(int64(v), 10), false
	case int32:
		return strconv.FormatInt(int64(v), 10), false
	case int64:
		return strconv.FormatInt(v, 10), false
	case uint:
		return strconv.FormatUint(uint64(v), 10), false
	case uint8:
		return strconv.FormatUint(uint64(v), 10), false
	case uint16:
		return strconv.FormatUint(uint64(v), 10), false
	case uint32:
		return strconv.FormatUint(uint64(v), 10), false
	case uint64:
		return strconv.FormatUint(v, 10), false
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), false
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), false
	case nil:
		return ``, false
	case fmt.Stringer:
		return v.String(), false
	default:
		return fmt.Sprint(v), false
	}
}

// IsBooleanAttribute reports if name is an attribute whose presence alone means true, such as "disabled".
func IsBooleanAttribute(name string) bool {
	_, ok := booleanAttributes[name]
	return ok
}

// BooleanAttributes returns the names recognized by IsBooleanAttribute, sorted.
func BooleanAttributes() []string {
	names := make([]string, 0, len(booleanAttributes))
	for name := range booleanAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var booleanAttributes = map[string]struct{}{
	`async`:          {},
	`autobuffer`:     {},
	`autofocus`:      {},
	`autoplay`:       {},
	`checked`:        {},
	`controls`:       {},
	`defer`:          {},
	`disabled`:       {},
	`formnovalidate`: {},
	`hidden`:         {},
	`ismap`:          {},
	`loop`:           {},
	`multiple`:       {},
	`muted`:          {},
	`novalidate`:     {},
	`open`:           {},
	`readonly`:       {},
	`required`:       {},
	`reversed`:       {},
	`scoped`:         {},
	`seemless`:       {}, // sic, kept for compatibility with existing markup.
	`selected`:       {},
}
