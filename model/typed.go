package model

// DeploymentNode references the deployment strategy of a container.
type DeploymentNode struct {
	node
	typedNode
}

func NewDeploymentNode(typ string) *DeploymentNode {
	return &DeploymentNode{typedNode: typedNode{typ: typ}}
}

// ModuleNode references a pluggable web server module.
type ModuleNode struct {
	node
	typedNode
}

func NewModuleNode(typ string) *ModuleNode {
	return &ModuleNode{typedNode: typedNode{typ: typ}}
}

// ThreadNode references the thread implementation a container runs in.
type ThreadNode struct {
	node
	typedNode
}

func NewThreadNode(typ string) *ThreadNode {
	return &ThreadNode{typedNode: typedNode{typ: typ}}
}

// RewriteMapNode references a rewrite map implementation configured by
// an ordered list of params.
type RewriteMapNode struct {
	node
	typedNode
	ParamsNode
}

func NewRewriteMapNode(typ string, params ...*Param) *RewriteMapNode {
	return &RewriteMapNode{
		typedNode:  typedNode{typ: typ},
		ParamsNode: NewParamsNode(params...),
	}
}
