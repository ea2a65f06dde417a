package schema

import "github.com/appserver-io/confnode/model"

// Merge appends the children of other to a. Params are appended after the
// existing ones, so a param of other overrides a param of a with the same
// name. The description of other is only used when a has none.
func (a *Appserver) Merge(other *Appserver) {
	if other == nil {
		return
	}
	if a.Description == "" {
		a.Description = other.Description
	}
	a.Params = append(a.Params, other.Params...)
	a.Containers = append(a.Containers, other.Containers...)
	a.Datasources = append(a.Datasources, other.Datasources...)
	a.Provisioners = append(a.Provisioners, other.Provisioners...)
	a.Jobs = append(a.Jobs, other.Jobs...)
}

// FromModel converts a configuration tree back into its document form.
func FromModel(m *model.Appserver) *Appserver {
	a := &Appserver{
		Description: text(m.Description()),
		Params:      fromParams(m.Params()),
	}

	for _, c := range m.Containers() {
		a.Containers = append(a.Containers, FromContainer(c))
	}

	for _, d := range m.Datasources() {
		a.Datasources = append(a.Datasources, fromDatasource(d))
	}

	for _, p := range m.Provisioners() {
		a.Provisioners = append(a.Provisioners, fromProvisioner(p))
	}

	for _, j := range m.Jobs() {
		a.Jobs = append(a.Jobs, &Job{Name: j.Name(), Schedule: j.Schedule(), Execute: fromExecute(j.Execute())})
	}

	return a
}

func fromParams(in []*model.Param) []*Param {
	if len(in) == 0 {
		return nil
	}
	out := make([]*Param, 0, len(in))
	for _, p := range in {
		out = append(out, &Param{Name: p.Name(), Type: p.Type(), Value: p.String()})
	}
	return out
}

func fromExecute(e *model.ExecuteNode) *Execute {
	if e == nil {
		return nil
	}
	out := &Execute{Script: e.Script()}
	for _, a := range e.Args() {
		out.Args = append(out.Args, &Arg{Name: a.Name(), Type: a.Type(), Value: a.String()})
	}
	return out
}

// FromContainer converts a single container back into its document form.
func FromContainer(c *model.ContainerNode) *Container {
	out := &Container{
		Name:        c.Name(),
		Type:        c.Type(),
		Description: text(c.Description()),
	}

	if d := c.Deployment(); d != nil {
		out.Deployment = &Deployment{Type: d.Type()}
	}

	if t := c.Thread(); t != nil {
		out.Thread = &Thread{Type: t.Type()}
	}

	for _, s := range c.Servers() {
		srv := &Server{
			Name:         s.Name(),
			Type:         s.Type(),
			Socket:       s.Socket(),
			Worker:       s.Worker(),
			WorkerNumber: s.WorkerNumber(),
			Params:       fromParams(s.Params()),
		}
		for _, m := range s.Modules() {
			srv.Modules = append(srv.Modules, &Module{Type: m.Type()})
		}
		for _, r := range s.RewriteMaps() {
			srv.RewriteMaps = append(srv.RewriteMaps, &RewriteMap{Type: r.Type(), Params: fromParams(r.Params())})
		}
		out.Servers = append(out.Servers, srv)
	}

	return out
}

func fromDatasource(d *model.DatasourceNode) *Datasource {
	out := &Datasource{
		Name:        d.Name(),
		Type:        d.Type(),
		Description: text(d.Description()),
	}
	if db := d.Database(); db != nil {
		out.Database = &Database{
			Driver:       db.Driver(),
			User:         db.User(),
			Password:     db.Password(),
			DatabaseName: db.DatabaseName(),
			DatabaseHost: hostText(db.Host()),
			DatabasePort: db.Port(),
		}
	}
	return out
}

func fromProvisioner(p *model.ProvisionerNode) *Provisioner {
	out := &Provisioner{
		Name:        p.Name(),
		Type:        p.Type(),
		Description: text(p.Description()),
	}
	for _, s := range p.Steps() {
		out.Steps = append(out.Steps, &Step{Type: s.Type(), Execute: fromExecute(s.Execute()), Params: fromParams(s.Params())})
	}
	return out
}

func text(d *model.DescriptionNode) string {
	if d == nil {
		return ""
	}
	return d.NodeValue().String()
}

func hostText(h *model.DatabaseHostNode) string {
	if h == nil {
		return ""
	}
	return h.NodeValue().String()
}
