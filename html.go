// Package html renders HTML element markup from a tag name, an attribute map and optional content.  Output is
// returned as HTML, a string type that marks markup as already escaped so it is never escaped twice.
package html

import "strings"

// An Element is something that can be appended to HTML.
type Element interface {
	AppendHTML(buf []byte) []byte
}

// Append appends the HTML from each of its elements to the provided buffer.  Nil elements are skipped.
func Append(buf []byte, elements ...Element) []byte {
	for _, element := range elements {
		if element == nil {
			continue
		}
		buf = element.AppendHTML(buf)
	}
	return buf
}

// Static renders the provided elements once, speeding up subsequent addition as HTML.
func Static(elements ...Element) HTML {
	return HTML(Append(make([]byte, 0, 1024), elements...))
}

// Join renders each element and separates them with sep, which is emitted verbatim.
func Join(sep string, elements ...Element) HTML {
	buf := make([]byte, 0, 256)
	for i, element := range elements {
		if i > 0 {
			buf = append(buf, sep...)
		}
		if element != nil {
			buf = element.AppendHTML(buf)
		}
	}
	return HTML(buf)
}

// HTML is markup that is safe to emit verbatim.  Converting caller input to HTML skips escaping, so only do that
// for text you control.
type HTML string

// AppendHTML implements Element by appending the markup unchanged.
func (e HTML) AppendHTML(buf []byte) []byte { return append(buf, e...) }

func (e HTML) String() string { return string(e) }

// Text is character data that still needs escaping.
type Text string

// AppendHTML implements Element by appending the text with '&', '<', '>', '"' and '\'' replaced by entities.
func (e Text) AppendHTML(buf []byte) []byte {
	return appendEscaped(buf, string(e))
}

// A Group is a sequence of elements rendered in order.
type Group []Element

func (g Group) AppendHTML(buf []byte) []byte { return Append(buf, g...) }

// Escape replaces the characters that could be misunderstood by an HTML parser with entities.
func Escape(s string) HTML {
	return HTML(entityReplacer.Replace(s))
}

func appendEscaped(buf []byte, s string) []byte {
	if strings.IndexAny(s, `&<>"'`) < 0 {
		return append(buf, s...)
	}
	return append(buf, entityReplacer.Replace(s)...)
}

var entityReplacer = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
	`'`, `&#39;`,
)
