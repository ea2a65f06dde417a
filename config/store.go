package config

import (
	"sort"
	"sync"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/schema"
	"github.com/hashicorp/go-memdb"
	"github.com/r3labs/diff"
)

const (
	tableRoot        = "root"
	tableContainer   = "container"
	tableDatasource  = "datasource"
	tableProvisioner = "provisioner"
	tableJob         = "job"
	tableParam       = "param"

	rootID = "appserver"
)

var entityTables = []string{tableContainer, tableDatasource, tableProvisioner, tableJob, tableParam}

type rootRow struct {
	ID       string
	Revision uint64
	Node     *model.Appserver
}

// entityRow indexes one named node of the current tree. Doc is the document
// form of the node, compared across reloads to find what changed.
type entityRow struct {
	Name     string
	Revision uint64
	Doc      interface{}
	Node     model.Node
}

type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
)

type Change struct {
	Table string
	Name  string
	Kind  ChangeKind
}

func storeSchema() *memdb.DBSchema {
	tables := map[string]*memdb.TableSchema{
		tableRoot: {
			Name: tableRoot,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}},
			},
		},
	}
	for _, t := range entityTables {
		tables[t] = &memdb.TableSchema{
			Name: t,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Name"}},
			},
		}
	}
	return &memdb.DBSchema{Tables: tables}
}

// Store holds the current configuration tree. Apply replaces the whole tree
// in one transaction; readers never observe a partially applied tree.
type Store struct {
	db *memdb.MemDB
	mu sync.Mutex
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(storeSchema())
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Apply swaps in root and returns what changed compared to the previous
// tree. Rows whose document form is unchanged keep their revision.
func (s *Store) Apply(root *model.Appserver) ([]Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.db.Txn(true)
	defer txn.Abort()

	var rev uint64 = 1
	if raw, _ := txn.First(tableRoot, "id", rootID); raw != nil {
		rev = raw.(*rootRow).Revision + 1
	}

	rows := entityRows(root)
	var changes []Change
	for _, table := range entityTables {
		c, err := s.replace(txn, table, rows[table], rev)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c...)
	}

	if err := txn.Insert(tableRoot, &rootRow{ID: rootID, Revision: rev, Node: root}); err != nil {
		return nil, err
	}
	txn.Commit()
	return changes, nil
}

func (s *Store) replace(txn *memdb.Txn, table string, rows []*entityRow, rev uint64) ([]Change, error) {
	it, err := txn.Get(table, "id")
	if err != nil {
		return nil, err
	}
	old := make(map[string]*entityRow)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		row := raw.(*entityRow)
		old[row.Name] = row
	}
	for _, row := range old {
		if err := txn.Delete(table, row); err != nil {
			return nil, err
		}
	}

	var changes []Change
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[row.Name] = true
		orig, ok := old[row.Name]
		switch {
		case !ok:
			row.Revision = rev
			changes = append(changes, Change{Table: table, Name: row.Name, Kind: ChangeAdded})
		case diff.Changed(orig.Doc, row.Doc):
			row.Revision = rev
			changes = append(changes, Change{Table: table, Name: row.Name, Kind: ChangeUpdated})
		default:
			row.Revision = orig.Revision
		}
		if err := txn.Insert(table, row); err != nil {
			return nil, err
		}
	}

	var removed []string
	for name := range old {
		if !seen[name] {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	for _, name := range removed {
		changes = append(changes, Change{Table: table, Name: name, Kind: ChangeRemoved})
	}
	return changes, nil
}

// entityRows indexes the named children of root. Unnamed nodes are not
// indexed. When names repeat the first node wins, as with the lookups of
// model.Appserver. Params are reduced to their effective, last bound, value.
func entityRows(root *model.Appserver) map[string][]*entityRow {
	doc := schema.FromModel(root)
	rows := make(map[string][]*entityRow, len(entityTables))
	for i, c := range root.Containers() {
		rows[tableContainer] = append(rows[tableContainer], &entityRow{Name: c.Name(), Doc: doc.Containers[i], Node: c})
	}
	for i, d := range root.Datasources() {
		rows[tableDatasource] = append(rows[tableDatasource], &entityRow{Name: d.Name(), Doc: doc.Datasources[i], Node: d})
	}
	for i, p := range root.Provisioners() {
		rows[tableProvisioner] = append(rows[tableProvisioner], &entityRow{Name: p.Name(), Doc: doc.Provisioners[i], Node: p})
	}
	for i, j := range root.Jobs() {
		rows[tableJob] = append(rows[tableJob], &entityRow{Name: j.Name(), Doc: doc.Jobs[i], Node: j})
	}
	for _, name := range root.ParamNames() {
		p, _ := root.Param(name)
		rows[tableParam] = append(rows[tableParam], &entityRow{Name: name, Doc: &schema.Param{Name: p.Name(), Type: p.Type(), Value: p.String()}, Node: p})
	}
	for _, t := range entityTables {
		rows[t] = dedupe(rows[t])
	}
	return rows
}

func dedupe(rows []*entityRow) []*entityRow {
	seen := make(map[string]bool, len(rows))
	out := rows[:0]
	for _, row := range rows {
		if row.Name == "" || seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		out = append(out, row)
	}
	return out
}

// Snapshot returns a consistent read view of the current tree. It is not
// affected by later calls to Apply.
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{txn: s.db.Txn(false)}
}

func (s *Store) Root() *model.Appserver {
	return s.Snapshot().Root()
}

func (s *Store) Revision() uint64 {
	return s.Snapshot().Revision()
}

type Snapshot struct {
	txn *memdb.Txn
}

// Root returns the tree of the snapshot, nil before the first Apply.
func (s *Snapshot) Root() *model.Appserver {
	if row := s.root(); row != nil {
		return row.Node
	}
	return nil
}

func (s *Snapshot) Revision() uint64 {
	if row := s.root(); row != nil {
		return row.Revision
	}
	return 0
}

func (s *Snapshot) root() *rootRow {
	raw, err := s.txn.First(tableRoot, "id", rootID)
	if err != nil || raw == nil {
		return nil
	}
	return raw.(*rootRow)
}

func (s *Snapshot) lookup(table, name string) (*entityRow, bool) {
	raw, err := s.txn.First(table, "id", name)
	if err != nil || raw == nil {
		return nil, false
	}
	return raw.(*entityRow), true
}

func (s *Snapshot) Container(name string) (*model.ContainerNode, bool) {
	row, ok := s.lookup(tableContainer, name)
	if !ok {
		return nil, false
	}
	return row.Node.(*model.ContainerNode), true
}

func (s *Snapshot) Datasource(name string) (*model.DatasourceNode, bool) {
	row, ok := s.lookup(tableDatasource, name)
	if !ok {
		return nil, false
	}
	return row.Node.(*model.DatasourceNode), true
}

func (s *Snapshot) Provisioner(name string) (*model.ProvisionerNode, bool) {
	row, ok := s.lookup(tableProvisioner, name)
	if !ok {
		return nil, false
	}
	return row.Node.(*model.ProvisionerNode), true
}

func (s *Snapshot) Job(name string) (*model.JobNode, bool) {
	row, ok := s.lookup(tableJob, name)
	if !ok {
		return nil, false
	}
	return row.Node.(*model.JobNode), true
}

// Param returns the effective param called name: the last one bound.
func (s *Snapshot) Param(name string) (*model.Param, bool) {
	row, ok := s.lookup(tableParam, name)
	if !ok {
		return nil, false
	}
	return row.Node.(*model.Param), true
}

// RevisionOf returns the revision at which the named row last changed.
func (s *Snapshot) RevisionOf(table, name string) (uint64, bool) {
	row, ok := s.lookup(table, name)
	if !ok {
		return 0, false
	}
	return row.Revision, true
}
