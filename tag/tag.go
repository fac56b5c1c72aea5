// Package tag provides a system of functional options that build HTML tags programmatically.
package tag

import (
	"maps"

	"github.com/swdunlop/tagkit-go"
)

// New constructs a new HTML tag and applies the provided options.
func New(name string, options ...Option) Tag {
	tag := Tag{Name: name}
	for _, option := range options {
		option(&tag)
	}
	return tag
}

// Factory constructs an html tag factory using functional options.  This is generally used to stamp out basic
// HTML element functions, applying some basic options as a template.
func Factory(name string, options ...Option) func(...Option) Tag {
	base := New(name, options...)
	return func(options ...Option) Tag {
		tag := base.clone()
		for _, option := range options {
			option(&tag)
		}
		return tag
	}
}

// A Tag describes an element that is rendered by html.VoidTag or html.BlockTag.
type Tag struct {
	Name    string
	Attrs   html.Attrs
	Content html.Group
	Block   func() html.Element // replaces Content when present.
	Void    bool
	Style   html.Style
	Raw     bool // disables escaping of text and attribute values.
}

// AppendHTML implements html.Element by rendering the tag.  The block, if any, is called once per render.
func (tag Tag) AppendHTML(buf []byte) []byte {
	return append(buf, tag.HTML()...)
}

// HTML renders the tag.
func (tag Tag) HTML() html.HTML {
	escape := !tag.Raw
	switch {
	case tag.Void:
		return html.VoidTag(tag.Name, tag.Attrs, tag.Style, escape)
	case tag.Block != nil:
		return html.BlockTagFunc(tag.Name, tag.Attrs, escape, tag.Block)
	default:
		return html.BlockTag(tag.Name, tag.content(), tag.Attrs, escape)
	}
}

// content flattens Content for html.BlockTag, which only leaves bare Text unescaped.
func (tag Tag) content() html.Element {
	switch {
	case len(tag.Content) == 0:
		return nil
	case len(tag.Content) == 1:
		return tag.Content[0]
	case !tag.Raw:
		return tag.Content
	}
	group := make(html.Group, len(tag.Content))
	for i, item := range tag.Content {
		if text, ok := item.(html.Text); ok {
			item = html.HTML(text)
		}
		group[i] = item
	}
	return group
}

// ID returns the id attribute of the tag, if it is a string.
func (tag Tag) ID() string {
	id, _ := tag.Attrs[`id`].(string)
	return id
}

func (tag Tag) clone() Tag {
	tag.Attrs = maps.Clone(tag.Attrs)
	if classes, ok := tag.Attrs[`class`].([]string); ok {
		tag.Attrs[`class`] = append([]string(nil), classes...)
	}
	tag.Content = append(html.Group(nil), tag.Content...)
	return tag
}

// Static appends content inside the tag that is rendered once, now.
func Static(contents ...html.Element) Option {
	return Content(html.Static(contents...))
}

// Text appends text content inside the tag.  The text is escaped unless Raw is used.
func Text(text string) Option {
	return Content(html.Text(text))
}

// Content appends content inside the tag.
func Content(contents ...html.Element) Option {
	return func(tag *Tag) {
		tag.Content = append(tag.Content, contents...)
	}
}

// Block produces the content of the tag when it is rendered, replacing any other content.
func Block(block func() html.Element) Option {
	return func(tag *Tag) { tag.Block = block }
}

// Void marks the tag as having no content or closing tag, like br or img.
func Void(style html.Style) Option {
	return func(tag *Tag) {
		tag.Void = true
		tag.Style = style
	}
}

// Raw disables escaping of the tag's text content and attribute values.
func Raw() Option {
	return func(tag *Tag) { tag.Raw = true }
}

// ID sets the id attribute on the tag.
func ID(id string) Option {
	return Attr(`id`, id)
}

// Class appends classes to the class attribute of the tag.
func Class(classes ...string) Option {
	return func(tag *Tag) {
		var prev []string
		switch class := tag.Attrs[`class`].(type) {
		case []string:
			prev = class
		case string:
			prev = []string{class}
		}
		tag.set(`class`, append(append([]string(nil), prev...), classes...))
	}
}

// Bool sets a boolean attribute, like disabled or checked.  A false value removes it from the output.
func Bool(name string, value bool) Option {
	return Attr(name, value)
}

// Attr sets an attribute on the tag, replacing any previous value.
func Attr(name string, value any) Option {
	return func(tag *Tag) { tag.set(name, value) }
}

// Attrs sets each attribute in attrs on the tag.
func Attrs(attrs html.Attrs) Option {
	return func(tag *Tag) {
		for name, value := range attrs {
			tag.set(name, value)
		}
	}
}

func (tag *Tag) set(name string, value any) {
	if tag.Attrs == nil {
		tag.Attrs = make(html.Attrs)
	}
	tag.Attrs[name] = value
}

// Apply applies a series of options as an option.
func Apply(options ...Option) Option {
	return func(tag *Tag) {
		for _, option := range options {
			option(tag)
		}
	}
}

// An Option affects an HTML tag.
type Option func(*Tag)
