package schema

import (
	"strings"

	"github.com/appserver-io/confnode/model"
)

type options struct {
	mapping func(string) string
}

type OptionFn func(o *options)

// WithMapping expands ${var} references in scripts, args, param values and
// value nodes with fn. Any other use of $ is kept as written, and $${ stands
// for a literal ${.
func WithMapping(fn func(string) string) OptionFn {
	return func(o *options) {
		o.mapping = fn
	}
}

type builder struct {
	options
}

// Build converts the document into an immutable configuration tree.
func (a *Appserver) Build(opts ...OptionFn) *model.Appserver {
	var b builder
	for _, opt := range opts {
		opt(&b.options)
	}
	return b.appserver(a)
}

func (b *builder) expand(s string) string {
	s = strings.TrimSpace(s)
	if b.mapping == nil {
		return s
	}
	return expand(s, b.mapping)
}

func expand(s string, mapping func(string) string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var buf strings.Builder
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "$${"):
			buf.WriteString("${")
			i += 3
		case strings.HasPrefix(s[i:], "${"):
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				buf.WriteString(s[i:])
				return buf.String()
			}
			if end == 0 {
				buf.WriteString("${}")
			} else {
				buf.WriteString(mapping(s[i+2 : i+2+end]))
			}
			i += end + 3
		default:
			buf.WriteByte(s[i])
			i++
		}
	}
	return buf.String()
}

func (b *builder) appserver(a *Appserver) *model.Appserver {
	f := model.AppserverFields{
		Description: b.description(a.Description),
		Params:      b.params(a.Params),
	}

	for _, c := range a.Containers {
		f.Containers = append(f.Containers, b.container(c))
	}

	for _, d := range a.Datasources {
		f.Datasources = append(f.Datasources, b.datasource(d))
	}

	for _, p := range a.Provisioners {
		f.Provisioners = append(f.Provisioners, b.provisioner(p))
	}

	for _, j := range a.Jobs {
		f.Jobs = append(f.Jobs, model.NewJobNode(j.Name, strings.TrimSpace(j.Schedule), b.execute(j.Execute)))
	}

	return model.NewAppserver(f)
}

func (b *builder) description(s string) *model.DescriptionNode {
	s = b.expand(s)
	if s == "" {
		return nil
	}
	return model.NewDescriptionNode(s)
}

func (b *builder) params(in []*Param) []*model.Param {
	if len(in) == 0 {
		return nil
	}
	out := make([]*model.Param, 0, len(in))
	for _, p := range in {
		out = append(out, model.NewParam(p.Name, p.Type, b.expand(p.Value)))
	}
	return out
}

func (b *builder) execute(e *Execute) *model.ExecuteNode {
	if e == nil {
		return nil
	}
	args := make([]*model.Arg, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, model.NewArg(a.Name, a.Type, b.expand(a.Value)))
	}
	return model.NewExecuteNode(b.expand(e.Script), args...)
}

func (b *builder) container(c *Container) *model.ContainerNode {
	f := model.ContainerFields{
		Name:        c.Name,
		Type:        c.Type,
		Description: b.description(c.Description),
	}

	if c.Deployment != nil {
		f.Deployment = model.NewDeploymentNode(c.Deployment.Type)
	}

	if c.Thread != nil {
		f.Thread = model.NewThreadNode(c.Thread.Type)
	}

	for _, s := range c.Servers {
		f.Servers = append(f.Servers, b.server(s))
	}

	return model.NewContainerNode(f)
}

func (b *builder) server(s *Server) *model.ServerNode {
	f := model.ServerFields{
		Name:         s.Name,
		Type:         s.Type,
		Socket:       s.Socket,
		Worker:       s.Worker,
		WorkerNumber: s.WorkerNumber,
		Params:       b.params(s.Params),
	}

	for _, m := range s.Modules {
		f.Modules = append(f.Modules, model.NewModuleNode(m.Type))
	}

	for _, r := range s.RewriteMaps {
		f.RewriteMaps = append(f.RewriteMaps, model.NewRewriteMapNode(r.Type, b.params(r.Params)...))
	}

	return model.NewServerNode(f)
}

func (b *builder) datasource(d *Datasource) *model.DatasourceNode {
	var db *model.DatabaseNode
	if d.Database != nil {
		db = model.NewDatabaseNode(model.DatabaseFields{
			Driver:       d.Database.Driver,
			User:         b.expand(d.Database.User),
			Password:     b.expand(d.Database.Password),
			DatabaseName: b.expand(d.Database.DatabaseName),
			Port:         d.Database.DatabasePort,
			Host:         model.NewDatabaseHostNode(b.expand(d.Database.DatabaseHost)),
		})
	}
	return model.NewDatasourceNode(d.Name, d.Type, b.description(d.Description), db)
}

func (b *builder) provisioner(p *Provisioner) *model.ProvisionerNode {
	steps := make([]*model.StepNode, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, model.NewStepNode(s.Type, b.execute(s.Execute), b.params(s.Params)...))
	}
	return model.NewProvisionerNode(p.Name, p.Type, b.description(p.Description), steps...)
}
