package model

// Arg is one positional argument of an execute step.
type Arg struct {
	node
	name  string
	typ   string
	value *Value
}

func NewArg(name, typ, value string) *Arg {
	if typ == "" {
		typ = ParamTypeString
	}
	return &Arg{name: name, typ: typ, value: NewValue(value)}
}

func (a *Arg) Name() string {
	return a.name
}

func (a *Arg) Type() string {
	return a.typ
}

func (a *Arg) NodeValue() *Value {
	return a.value
}

func (a *Arg) String() string {
	return a.value.String()
}

// ArgsNode holds ordered arguments.
type ArgsNode struct {
	args []*Arg
}

func NewArgsNode(args ...*Arg) ArgsNode {
	return ArgsNode{args: append([]*Arg(nil), args...)}
}

// Args returns the arguments in bind order. The result is never nil.
func (n ArgsNode) Args() []*Arg {
	return append(make([]*Arg, 0, len(n.args)), n.args...)
}

// ArgValues returns the argument values in order.
func (n ArgsNode) ArgValues() []string {
	values := make([]string, len(n.args))
	for i, a := range n.args {
		values[i] = a.String()
	}
	return values
}

// ExecuteNode is a script invocation with its arguments.
type ExecuteNode struct {
	node
	ArgsNode
	script string
}

func NewExecuteNode(script string, args ...*Arg) *ExecuteNode {
	return &ExecuteNode{ArgsNode: NewArgsNode(args...), script: script}
}

// Script returns the path or command to execute.
func (n *ExecuteNode) Script() string {
	return n.script
}

// CommandLine returns the script followed by the argument values.
func (n *ExecuteNode) CommandLine() []string {
	return append([]string{n.script}, n.ArgValues()...)
}
