package model

// DatabaseFields are the bound attributes of a DatabaseNode.
type DatabaseFields struct {
	Driver       string
	User         string
	Password     string
	DatabaseName string
	Port         int
	Host         *DatabaseHostNode
}

// DatabaseNode describes a database connection.
type DatabaseNode struct {
	node
	f DatabaseFields
}

func NewDatabaseNode(f DatabaseFields) *DatabaseNode {
	return &DatabaseNode{f: f}
}

func (n *DatabaseNode) Driver() string {
	return n.f.Driver
}

func (n *DatabaseNode) User() string {
	return n.f.User
}

func (n *DatabaseNode) Password() string {
	return n.f.Password
}

func (n *DatabaseNode) DatabaseName() string {
	return n.f.DatabaseName
}

func (n *DatabaseNode) Port() int {
	return n.f.Port
}

// Host returns the host node, nil when the document has no host element.
func (n *DatabaseNode) Host() *DatabaseHostNode {
	return n.f.Host
}

// DatasourceNode is a named datasource backed by a database.
type DatasourceNode struct {
	node
	typedNode
	name        string
	description *DescriptionNode
	database    *DatabaseNode
}

func NewDatasourceNode(name, typ string, description *DescriptionNode, database *DatabaseNode) *DatasourceNode {
	return &DatasourceNode{
		typedNode:   typedNode{typ: typ},
		name:        name,
		description: description,
		database:    database,
	}
}

func (n *DatasourceNode) Name() string {
	return n.name
}

func (n *DatasourceNode) Description() *DescriptionNode {
	return n.description
}

func (n *DatasourceNode) Database() *DatabaseNode {
	return n.database
}
