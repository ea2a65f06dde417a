package config

import (
	"fmt"
	"strings"

	"github.com/appserver-io/confnode/model"
)

type unbound struct {
	path     []string
	warnings []string
}

func (u *unbound) Visit(node model.Node) model.Visitor {
	if node == nil {
		u.path = u.path[:len(u.path)-1]
		return u
	}

	u.path = append(u.path, label(node))

	switch n := node.(type) {
	case *model.ContainerNode, *model.ServerNode, *model.DeploymentNode, *model.ThreadNode,
		*model.ModuleNode, *model.RewriteMapNode, *model.ProvisionerNode, *model.StepNode:
		if n.(model.Typed).Type() == "" {
			u.warn("type is not set")
		}

	case *model.ExecuteNode:
		if n.Script() == "" {
			u.warn("script is not set")
		}
	}

	return u
}

func (u *unbound) warn(msg string) {
	u.warnings = append(u.warnings, strings.Join(u.path[1:], " > ")+": "+msg)
}

func label(node model.Node) string {
	switch n := node.(type) {
	case *model.ContainerNode:
		return fmt.Sprintf("container %q", n.Name())
	case *model.ServerNode:
		return fmt.Sprintf("server %q", n.Name())
	case *model.DatasourceNode:
		return fmt.Sprintf("datasource %q", n.Name())
	case *model.ProvisionerNode:
		return fmt.Sprintf("provisioner %q", n.Name())
	case *model.JobNode:
		return fmt.Sprintf("job %q", n.Name())
	case *model.Param:
		return fmt.Sprintf("param %q", n.Name())
	case *model.DeploymentNode:
		return "deployment"
	case *model.ThreadNode:
		return "thread"
	case *model.ModuleNode:
		return "module"
	case *model.RewriteMapNode:
		return "rewriteMap"
	case *model.StepNode:
		return "step"
	case *model.ExecuteNode:
		return "execute"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", node), "*model.")
	}
}

// Unbound lists the type and script attributes the document left empty.
// Consumers instantiating those implementations will fail on them.
func Unbound(root *model.Appserver) []string {
	var u unbound
	model.Walk(&u, root)
	return u.warnings
}
