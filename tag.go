package html

import "fmt"

// Style selects how VoidTag closes a tag.
type Style int

const (
	// XHTML closes void tags with " />", like <br />.
	XHTML Style = iota
	// HTML4 leaves void tags open, like <br>.
	HTML4
)

// VoidTag renders a tag without content, such as br, img or input.  Tag names are not validated.
//
//	VoidTag(`br`, nil, XHTML, true)                                        // <br />
//	VoidTag(`br`, nil, HTML4, true)                                        // <br>
//	VoidTag(`input`, Attrs{`type`: `text`, `disabled`: true}, XHTML, true) // <input disabled="disabled" type="text" />
func VoidTag(name string, attrs Attrs, style Style, escape bool) HTML {
	buf := appendOpen(make([]byte, 0, 64), name, attrs, escape)
	if style == XHTML {
		buf = append(buf, ' ', '/')
	}
	buf = append(buf, '>')
	return HTML(buf)
}

// BlockTag renders a tag around content.  Text content is escaped when escape is true, while HTML and other
// elements are embedded as they render themselves.  A nil content renders an empty tag.
//
//	BlockTag(`p`, Text(`Hello world!`), nil, true) // <p>Hello world!</p>
func BlockTag(name string, content Element, attrs Attrs, escape bool) HTML {
	buf := appendOpen(make([]byte, 0, 128), name, attrs, escape)
	buf = append(buf, '>')
	buf = appendContent(buf, content, escape)
	buf = append(buf, '<', '/')
	buf = append(buf, name...)
	buf = append(buf, '>')
	return HTML(buf)
}

// BlockTagFunc is BlockTag with content produced by block, which is called exactly once before the tag is rendered.
// A nil block renders an empty tag.
func BlockTagFunc(name string, attrs Attrs, escape bool, block func() Element) HTML {
	var content Element
	if block != nil {
		content = block()
	}
	return BlockTag(name, content, attrs, escape)
}

// ContentTag renders a block tag where arg is either an attribute map or content.  If arg is Attrs or a
// map[string]any, it provides the attributes and content comes from block.  Otherwise arg is the content and block is
// ignored.  Escaping is always enabled; use BlockTag to disable it.
//
//	ContentTag(`div`, Attrs{`class`: `strong`}, func() Element { return Text(`Hello world!`) })
//	// <div class="strong">Hello world!</div>
func ContentTag(name string, arg any, block func() Element) HTML {
	switch arg := arg.(type) {
	case Attrs:
		return BlockTagFunc(name, arg, true, block)
	case map[string]any:
		return BlockTagFunc(name, Attrs(arg), true, block)
	default:
		return BlockTag(name, asContent(arg), nil, true)
	}
}

func asContent(arg any) Element {
	switch arg := arg.(type) {
	case nil:
		return nil
	case Element:
		return arg
	case string:
		return Text(arg)
	case fmt.Stringer:
		return Text(arg.String())
	default:
		return Text(fmt.Sprint(arg))
	}
}

// appendOpen appends "<name" and the attributes, but stops shy of completing the tag with a ">".
func appendOpen(buf []byte, name string, attrs Attrs, escape bool) []byte {
	buf = append(buf, '<')
	buf = append(buf, name...)
	if fragment, ok := Attributes(attrs, escape); ok {
		buf = append(buf, fragment...)
	}
	return buf
}

func appendContent(buf []byte, content Element, escape bool) []byte {
	switch c := content.(type) {
	case nil:
		return buf
	case Text:
		if escape {
			return c.AppendHTML(buf)
		}
		return append(buf, c...)
	default:
		return c.AppendHTML(buf)
	}
}
