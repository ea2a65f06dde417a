package model

// ServerFields are the bound attributes and children of a ServerNode.
type ServerFields struct {
	Name         string
	Type         string
	Socket       string
	Worker       string
	WorkerNumber int
	Params       []*Param
	Modules      []*ModuleNode
	RewriteMaps  []*RewriteMapNode
}

// ServerNode is a server hosted by a container.
type ServerNode struct {
	node
	typedNode
	ParamsNode
	name         string
	socket       string
	worker       string
	workerNumber int
	modules      []*ModuleNode
	rewriteMaps  []*RewriteMapNode
}

func NewServerNode(f ServerFields) *ServerNode {
	return &ServerNode{
		typedNode:    typedNode{typ: f.Type},
		ParamsNode:   NewParamsNode(f.Params...),
		name:         f.Name,
		socket:       f.Socket,
		worker:       f.Worker,
		workerNumber: f.WorkerNumber,
		modules:      append([]*ModuleNode(nil), f.Modules...),
		rewriteMaps:  append([]*RewriteMapNode(nil), f.RewriteMaps...),
	}
}

func (n *ServerNode) Name() string {
	return n.name
}

func (n *ServerNode) Socket() string {
	return n.socket
}

func (n *ServerNode) Worker() string {
	return n.worker
}

func (n *ServerNode) WorkerNumber() int {
	return n.workerNumber
}

// Modules returns the server modules in processing order.
func (n *ServerNode) Modules() []*ModuleNode {
	return append([]*ModuleNode(nil), n.modules...)
}

func (n *ServerNode) RewriteMaps() []*RewriteMapNode {
	return append([]*RewriteMapNode(nil), n.rewriteMaps...)
}

// ContainerFields are the bound attributes and children of a ContainerNode.
type ContainerFields struct {
	Name        string
	Type        string
	Description *DescriptionNode
	Deployment  *DeploymentNode
	Thread      *ThreadNode
	Servers     []*ServerNode
}

// ContainerNode groups servers sharing a deployment and a thread.
type ContainerNode struct {
	node
	typedNode
	name        string
	description *DescriptionNode
	deployment  *DeploymentNode
	thread      *ThreadNode
	servers     []*ServerNode
}

func NewContainerNode(f ContainerFields) *ContainerNode {
	return &ContainerNode{
		typedNode:   typedNode{typ: f.Type},
		name:        f.Name,
		description: f.Description,
		deployment:  f.Deployment,
		thread:      f.Thread,
		servers:     append([]*ServerNode(nil), f.Servers...),
	}
}

func (n *ContainerNode) Name() string {
	return n.name
}

func (n *ContainerNode) Description() *DescriptionNode {
	return n.description
}

func (n *ContainerNode) Deployment() *DeploymentNode {
	return n.deployment
}

func (n *ContainerNode) Thread() *ThreadNode {
	return n.thread
}

func (n *ContainerNode) Servers() []*ServerNode {
	return append([]*ServerNode(nil), n.servers...)
}

// Server returns the first server called name.
func (n *ContainerNode) Server(name string) (*ServerNode, bool) {
	for _, s := range n.servers {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}
