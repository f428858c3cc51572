// Package svg is a small owned element tree that charts draw into and that
// renders as XML.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

type attr struct {
	name, value string
}

// Element is a node of the tree. The zero value is not usable; use New or Append.
type Element struct {
	Name     string
	attrs    []attr
	styles   map[string]string
	text     string
	children []*Element
	parent   *Element
}

// New returns a detached element.
func New(name string) *Element {
	return &Element{Name: name}
}

// Append creates a child element and returns it.
func (e *Element) Append(name string) *Element {
	child := New(name)
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// SetAttr sets an attribute, keeping the position of an existing one.
func (e *Element) SetAttr(name string, value any) *Element {
	v := fmt.Sprint(value)
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = v
			return e
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: v})
	return e
}

// Attr returns an attribute value, or "" when it is unset.
func (e *Element) Attr(name string) string {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value
		}
	}
	return ""
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(name string, value any) *Element {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[name] = fmt.Sprint(value)
	return e
}

// Style returns an inline style property, or "" when it is unset.
func (e *Element) Style(name string) string {
	return e.styles[name]
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// Children returns the direct children.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent, or nil for a detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// HasClass reports whether the class attribute contains class.
func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the descendants of e carrying class, in document order.
func (e *Element) Find(class string) []*Element {
	var found []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if c.HasClass(class) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(e)
	return found
}

// Render writes the subtree rooted at e as XML.
func (e *Element) Render(w io.Writer) error {
	var sb strings.Builder
	e.render(&sb, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the rendered subtree.
func (e *Element) String() string {
	var sb strings.Builder
	e.render(&sb, 0)
	return sb.String()
}

func (e *Element) render(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(e.Name)
	for _, a := range e.attrs {
		writeAttr(sb, a.name, a.value)
	}
	if len(e.styles) > 0 {
		writeAttr(sb, "style", e.styleString())
	}

	if len(e.children) == 0 && e.text == "" {
		sb.WriteString("/>\n")
		return
	}
	sb.WriteString(">")
	if e.text != "" {
		xml.EscapeText(sb, []byte(e.text))
	}
	if len(e.children) > 0 {
		sb.WriteString("\n")
		for _, c := range e.children {
			c.render(sb, depth+1)
		}
		sb.WriteString(indent)
	}
	sb.WriteString("</")
	sb.WriteString(e.Name)
	sb.WriteString(">\n")
}

func (e *Element) styleString() string {
	keys := make([]string, 0, len(e.styles))
	for k := range e.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.styles[k])
	}
	return strings.Join(parts, "; ")
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	xml.EscapeText(sb, []byte(value))
	sb.WriteString(`"`)
}
