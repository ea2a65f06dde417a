package model

// AppserverFields are the top level children of the configuration document.
type AppserverFields struct {
	Description  *DescriptionNode
	Params       []*Param
	Containers   []*ContainerNode
	Datasources  []*DatasourceNode
	Provisioners []*ProvisionerNode
	Jobs         []*JobNode
}

// Appserver is the root of the configuration tree.
type Appserver struct {
	node
	ParamsNode
	description  *DescriptionNode
	containers   []*ContainerNode
	datasources  []*DatasourceNode
	provisioners []*ProvisionerNode
	jobs         []*JobNode
}

func NewAppserver(f AppserverFields) *Appserver {
	return &Appserver{
		ParamsNode:   NewParamsNode(f.Params...),
		description:  f.Description,
		containers:   append([]*ContainerNode(nil), f.Containers...),
		datasources:  append([]*DatasourceNode(nil), f.Datasources...),
		provisioners: append([]*ProvisionerNode(nil), f.Provisioners...),
		jobs:         append([]*JobNode(nil), f.Jobs...),
	}
}

func (a *Appserver) Description() *DescriptionNode {
	return a.description
}

func (a *Appserver) Containers() []*ContainerNode {
	return append([]*ContainerNode(nil), a.containers...)
}

func (a *Appserver) Datasources() []*DatasourceNode {
	return append([]*DatasourceNode(nil), a.datasources...)
}

func (a *Appserver) Provisioners() []*ProvisionerNode {
	return append([]*ProvisionerNode(nil), a.provisioners...)
}

func (a *Appserver) Jobs() []*JobNode {
	return append([]*JobNode(nil), a.jobs...)
}

// Container returns the first container called name.
func (a *Appserver) Container(name string) (*ContainerNode, bool) {
	for _, c := range a.containers {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (a *Appserver) Provisioner(name string) (*ProvisionerNode, bool) {
	for _, p := range a.provisioners {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

func (a *Appserver) Datasource(name string) (*DatasourceNode, bool) {
	for _, d := range a.datasources {
		if d.name == name {
			return d, true
		}
	}
	return nil, false
}

func (a *Appserver) Job(name string) (*JobNode, bool) {
	for _, j := range a.jobs {
		if j.name == name {
			return j, true
		}
	}
	return nil, false
}
