package lang

import (
	"encoding/xml"
	"strconv"
)

// Document is the structured output tree built from successful declarations.
// It has a fixed "config" root whose children are "constant" nodes, one per
// declaration, in declaration order. The tree is exclusively owned by its
// session; serialization never mutates it.
type Document struct {
	constants []*Constant
}

// Constant is one declaration node in the document tree.
type Constant struct {
	Name  string
	Value *Value
}

// NewDocument creates an empty document tree.
func NewDocument() *Document {
	return &Document{}
}

// Append adds one constant node under the root. Integer values become the
// node's text content; list values become a sequence of "value" child nodes,
// nested recursively for nested lists.
func (d *Document) Append(name string, value *Value) {
	d.constants = append(d.constants, &Constant{Name: name, Value: value})
}

// Len returns the number of constant nodes.
func (d *Document) Len() int { return len(d.constants) }

// Constants returns the constant nodes in declaration order.
func (d *Document) Constants() []*Constant { return d.constants }

// ToMap converts the document to a native Go map structure keyed by constant
// name, with integers as int64 and lists as []any. This is the form
// serialized by [Document.FormatJSON] and [Document.FormatYAML].
func (d *Document) ToMap() map[string]any {
	result := make(map[string]any, len(d.constants))

	for _, c := range d.constants {
		result[c.Name] = c.Value.ToNative()
	}

	return result
}

// ToNative converts a Value to its native Go type.
func (v *Value) ToNative() any {
	if v == nil {
		return nil
	}

	if v.Kind == KindInt {
		return v.Int
	}

	result := make([]any, len(v.List))
	for i, e := range v.List {
		result[i] = e.ToNative()
	}

	return result
}

// xmlNode is the wire form shared by "constant" and "value" elements: either
// text content (integers) or nested "value" children (lists).
type xmlNode struct {
	Text  string    `xml:",chardata"`
	Nodes []xmlNode `xml:"value"`
}

// xmlConstant is the wire form of one "constant" element.
type xmlConstant struct {
	Name string `xml:"name,attr"`
	xmlNode
}

// xmlConfig is the wire form of the document root.
type xmlConfig struct {
	XMLName   xml.Name      `xml:"config"`
	Constants []xmlConstant `xml:"constant"`
}

// toXMLNode converts a Value to its XML wire form.
func (v *Value) toXMLNode() xmlNode {
	if v.Kind == KindInt {
		return xmlNode{Text: strconv.FormatInt(v.Int, 10)}
	}

	nodes := make([]xmlNode, len(v.List))
	for i, e := range v.List {
		nodes[i] = e.toXMLNode()
	}

	return xmlNode{Nodes: nodes}
}

// toXML converts the document to its XML wire form.
func (d *Document) toXML() xmlConfig {
	constants := make([]xmlConstant, len(d.constants))

	for i, c := range d.constants {
		constants[i] = xmlConstant{
			Name:    c.Name,
			xmlNode: c.Value.toXMLNode(),
		}
	}

	return xmlConfig{Constants: constants}
}
