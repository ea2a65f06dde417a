package model

import "fmt"

type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses the tree in document order. Visit is called with nil once
// all children of a node have been walked.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Appserver:
		if n.description != nil {
			Walk(v, n.description)
		}
		walkParams(v, n.params)

		for _, c := range n.containers {
			Walk(v, c)
		}

		for _, d := range n.datasources {
			Walk(v, d)
		}

		for _, p := range n.provisioners {
			Walk(v, p)
		}

		for _, j := range n.jobs {
			Walk(v, j)
		}

	case *ContainerNode:
		if n.description != nil {
			Walk(v, n.description)
		}

		if n.deployment != nil {
			Walk(v, n.deployment)
		}

		if n.thread != nil {
			Walk(v, n.thread)
		}

		for _, s := range n.servers {
			Walk(v, s)
		}

	case *ServerNode:
		walkParams(v, n.params)

		for _, m := range n.modules {
			Walk(v, m)
		}

		for _, r := range n.rewriteMaps {
			Walk(v, r)
		}

	case *RewriteMapNode:
		walkParams(v, n.params)

	case *DatasourceNode:
		if n.description != nil {
			Walk(v, n.description)
		}

		if n.database != nil {
			Walk(v, n.database)
		}

	case *DatabaseNode:
		if n.f.Host != nil {
			Walk(v, n.f.Host)
		}

	case *ProvisionerNode:
		if n.description != nil {
			Walk(v, n.description)
		}

		for _, s := range n.steps {
			Walk(v, s)
		}

	case *StepNode:
		if n.execute != nil {
			Walk(v, n.execute)
		}
		walkParams(v, n.params)

	case *JobNode:
		if n.execute != nil {
			Walk(v, n.execute)
		}

	case *ExecuteNode:
		for _, a := range n.args {
			Walk(v, a)
		}

	case *DescriptionNode, *DatabaseHostNode, *DeploymentNode, *ModuleNode, *ThreadNode, *Param, *Arg:
		// nothing further

	default:
		panic(fmt.Sprintf("model.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkParams(v Visitor, params []*Param) {
	for _, p := range params {
		Walk(v, p)
	}
}

type WalkFunc func(Node) bool

func (fn WalkFunc) Visit(node Node) Visitor {
	if fn(node) {
		return fn
	}
	return nil
}

// Inspect calls fn for every node of the tree, skipping the children of
// nodes for which fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	Walk(WalkFunc(func(n Node) bool {
		if n == nil {
			return false
		}
		return fn(n)
	}), node)
}
