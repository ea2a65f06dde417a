package model

import (
	"errors"
	"fmt"
	"strconv"
)

// Param types understood by the typed accessors of Param.
const (
	ParamTypeString  = "string"
	ParamTypeInteger = "integer"
	ParamTypeBoolean = "boolean"
	ParamTypeFloat   = "float"
)

// ErrInvalidParamValue is wrapped by every failed param cast.
var ErrInvalidParamValue = errors.New("invalid param value")

// Param is a name/value pair attached to a container node.
type Param struct {
	node
	name  string
	typ   string
	value *Value
}

// NewParam creates a param. An empty typ is treated as ParamTypeString.
func NewParam(name, typ, value string) *Param {
	if typ == "" {
		typ = ParamTypeString
	}
	return &Param{name: name, typ: typ, value: NewValue(value)}
}

func (p *Param) Name() string {
	return p.name
}

func (p *Param) Type() string {
	return p.typ
}

func (p *Param) NodeValue() *Value {
	return p.value
}

func (p *Param) String() string {
	return p.value.String()
}

func (p *Param) Int() (int, error) {
	v, err := strconv.Atoi(p.value.String())
	if err != nil {
		return 0, p.castError(err)
	}
	return v, nil
}

func (p *Param) Bool() (bool, error) {
	v, err := strconv.ParseBool(p.value.String())
	if err != nil {
		return false, p.castError(err)
	}
	return v, nil
}

func (p *Param) Float() (float64, error) {
	v, err := strconv.ParseFloat(p.value.String(), 64)
	if err != nil {
		return 0, p.castError(err)
	}
	return v, nil
}

// Check verifies that the value can be read as the declared type. Unknown
// types are accepted as plain strings.
func (p *Param) Check() error {
	var err error
	switch p.typ {
	case ParamTypeInteger:
		_, err = p.Int()
	case ParamTypeBoolean:
		_, err = p.Bool()
	case ParamTypeFloat:
		_, err = p.Float()
	}
	return err
}

func (p *Param) castError(err error) error {
	return fmt.Errorf("param %q (%s) value %q: %w: %v", p.name, p.typ, p.value.String(), ErrInvalidParamValue, err)
}

// ParamsNode holds an ordered sequence of params. Order is significant: when
// several params share a name the last one bound wins.
type ParamsNode struct {
	params []*Param
}

func NewParamsNode(params ...*Param) ParamsNode {
	return ParamsNode{params: append([]*Param(nil), params...)}
}

// Params returns the params in the order they were bound.
func (n ParamsNode) Params() []*Param {
	return append([]*Param(nil), n.params...)
}

// Param returns the last bound param called name.
func (n ParamsNode) Param(name string) (*Param, bool) {
	for i := len(n.params) - 1; i >= 0; i-- {
		if n.params[i].name == name {
			return n.params[i], true
		}
	}
	return nil, false
}

// ParamValue returns the value of the param called name, "" when unbound.
func (n ParamsNode) ParamValue(name string) string {
	if p, ok := n.Param(name); ok {
		return p.String()
	}
	return ""
}

// ParamsAsMap flattens the params, later params overriding earlier ones.
func (n ParamsNode) ParamsAsMap() map[string]string {
	m := make(map[string]string, len(n.params))
	for _, p := range n.params {
		m[p.name] = p.String()
	}
	return m
}

// ParamNames returns the distinct param names in first-bound order.
func (n ParamsNode) ParamNames() []string {
	seen := make(map[string]bool, len(n.params))
	names := make([]string, 0, len(n.params))
	for _, p := range n.params {
		if !seen[p.name] {
			seen[p.name] = true
			names = append(names, p.name)
		}
	}
	return names
}

// Parameterized is implemented by container nodes owning params.
type Parameterized interface {
	Params() []*Param
	Param(name string) (*Param, bool)
}

var (
	_ Parameterized = (*Appserver)(nil)
	_ Parameterized = (*ServerNode)(nil)
	_ Parameterized = (*RewriteMapNode)(nil)
	_ Parameterized = (*StepNode)(nil)
)
