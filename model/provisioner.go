package model

// Provisioner is the capability offered by nodes that configure a
// provisioning implementation.
type Provisioner interface {
	Name() string
	Type() string
}

// StepNode is one step of a provisioner, optionally running a script.
type StepNode struct {
	node
	typedNode
	ParamsNode
	execute *ExecuteNode
}

func NewStepNode(typ string, execute *ExecuteNode, params ...*Param) *StepNode {
	return &StepNode{
		typedNode:  typedNode{typ: typ},
		ParamsNode: NewParamsNode(params...),
		execute:    execute,
	}
}

// Execute returns the script invocation of the step, nil when none is bound.
func (n *StepNode) Execute() *ExecuteNode {
	return n.execute
}

// ProvisionerNode is the configured provisioner of the server.
type ProvisionerNode struct {
	node
	typedNode
	name        string
	description *DescriptionNode
	steps       []*StepNode
}

var _ Provisioner = (*ProvisionerNode)(nil)

func NewProvisionerNode(name, typ string, description *DescriptionNode, steps ...*StepNode) *ProvisionerNode {
	return &ProvisionerNode{
		typedNode:   typedNode{typ: typ},
		name:        name,
		description: description,
		steps:       append([]*StepNode(nil), steps...),
	}
}

func (n *ProvisionerNode) Name() string {
	return n.name
}

func (n *ProvisionerNode) Description() *DescriptionNode {
	return n.description
}

// Steps returns the provisioning steps in execution order.
func (n *ProvisionerNode) Steps() []*StepNode {
	return append([]*StepNode(nil), n.steps...)
}
