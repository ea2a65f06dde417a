package model

// Node is one element of the appserver configuration tree.
//
// Nodes are built once, by the schema package or the constructors in this
// package, and never change afterwards. They may be shared freely between
// goroutines.
type Node interface {
	// UUID returns the identifier assigned at construction. Nodes without
	// per-instance identity return an empty string.
	UUID() string
}

type node struct {
	uuid string
}

func (n node) UUID() string {
	return n.uuid
}

// Value is an optional scalar carried by a value node.
type Value struct {
	s string
}

// NewValue wraps s. An empty string still yields a non-nil value.
func NewValue(s string) *Value {
	return &Value{s: s}
}

// String returns the wrapped scalar, or "" for a nil value.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return v.s
}

// valueNode is embedded by nodes whose payload is their text content.
type valueNode struct {
	node
	value *Value
}

// NodeValue returns the content of the node, nil if it was never bound.
func (n *valueNode) NodeValue() *Value {
	return n.value
}

// ValueNode is implemented by nodes carrying a scalar content value.
type ValueNode interface {
	Node
	NodeValue() *Value
}

var (
	_ ValueNode = (*DescriptionNode)(nil)
	_ ValueNode = (*DatabaseHostNode)(nil)
	_ ValueNode = (*Param)(nil)
	_ ValueNode = (*Arg)(nil)
)

// typedNode is embedded by nodes referencing a pluggable implementation.
type typedNode struct {
	typ string
}

// Type returns the configured implementation class name. An empty string
// means the attribute was never bound; consumers decide whether that is an
// error.
func (n typedNode) Type() string {
	return n.typ
}

// Typed is implemented by every node exposing an implementation class name.
type Typed interface {
	Node
	Type() string
}

func optionalValue(s string) *Value {
	if s == "" {
		return nil
	}
	return NewValue(s)
}
