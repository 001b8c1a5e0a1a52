package dto

import (
	"encoding/xml"
	"strings"
)

// Element is a generic parsed XML element.
//
// Response parsing is permissive by design: missing attributes and missing
// child elements resolve to the empty string, never an error. All attribute
// values are strings; numeric or boolean coercion is the caller's
// responsibility.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	InnerXML string     `xml:",innerxml"`
	Children []Element  `xml:",any"`
}

// ParseElement parses an XML document and returns its root element.
func ParseElement(data []byte) (*Element, error) {
	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Tag returns the element's local name.
func (e *Element) Tag() string {
	return e.XMLName.Local
}

// Attribute returns the named attribute's value, or "" when absent.
func (e *Element) Attribute(name string) string {
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// BoolAttribute returns true when the named attribute is the literal "true".
func (e *Element) BoolAttribute(name string) bool {
	return e.Attribute(name) == "true"
}

// Child returns the first child element with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == tag {
			return &e.Children[i]
		}
	}
	return nil
}

// ChildContent returns the inner markup of the first child element with the
// given tag, with double-encoded HTML recovered. Inner markup is preserved,
// not just text content, so rich text fields keep their embedded tags.
func (e *Element) ChildContent(tag string) string {
	child := e.Child(tag)
	if child == nil {
		return ""
	}
	return UnescapeHTML(child.InnerXML)
}

// writeAttribute emits a name="value" pair when the value is non-empty.
// Omission, not the empty string, signals "unset" on the wire.
func writeAttribute(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteString(`"`)
}

// writeBoolAttribute emits name="true" only when the value is set; absence
// means false.
func writeBoolAttribute(b *strings.Builder, name string, value bool) {
	if !value {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="true"`)
}

// writeOptionalBoolAttribute emits name="true" or name="false" when the
// tri-state value is set, and nothing when it is nil.
func writeOptionalBoolAttribute(b *strings.Builder, name string, value *bool) {
	if value == nil {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	if *value {
		b.WriteString(`="true"`)
	} else {
		b.WriteString(`="false"`)
	}
}

// writeTextElement emits <tag>escaped content</tag> when the value is
// non-empty.
func writeTextElement(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(EscapeHTML(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}
