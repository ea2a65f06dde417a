// Package schema holds the document form of the appserver configuration.
//
// The structs in this package are what the XML and YAML codecs decode into.
// They are mutable and only live for the duration of a load: Build turns a
// document into an immutable model.Appserver in one call.
package schema

import (
	"encoding/xml"

	"github.com/creasty/defaults"
)

type Appserver struct {
	XMLName      xml.Name       `xml:"appserver" yaml:"-" json:"-"`
	Description  string         `xml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Params       []*Param       `xml:"params>param,omitempty" yaml:"params,omitempty" json:"params,omitempty"`
	Containers   []*Container   `xml:"containers>container,omitempty" yaml:"containers,omitempty" json:"containers,omitempty"`
	Datasources  []*Datasource  `xml:"datasources>datasource,omitempty" yaml:"datasources,omitempty" json:"datasources,omitempty"`
	Provisioners []*Provisioner `xml:"provisioners>provisioner,omitempty" yaml:"provisioners,omitempty" json:"provisioners,omitempty"`
	Jobs         []*Job         `xml:"cron>job,omitempty" yaml:"jobs,omitempty" json:"jobs,omitempty"`
}

type Param struct {
	Name  string `xml:"name,attr" yaml:"name" json:"name"`
	Type  string `xml:"type,attr,omitempty" yaml:"type,omitempty" json:"type,omitempty" default:"string"`
	Value string `xml:",chardata" yaml:"value" json:"value"`
}

func (p *Param) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	_ = defaults.Set(p)
	type tmp Param // avoid recursive calls to UnmarshalXML
	return d.DecodeElement((*tmp)(p), &start)
}

func (p *Param) UnmarshalYAML(f func(interface{}) error) error {
	_ = defaults.Set(p)
	type tmp Param // avoid recursive calls to UnmarshalYAML
	return f((*tmp)(p))
}

type Arg struct {
	Name  string `xml:"name,attr,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Type  string `xml:"type,attr,omitempty" yaml:"type,omitempty" json:"type,omitempty" default:"string"`
	Value string `xml:",chardata" yaml:"value" json:"value"`
}

func (a *Arg) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	_ = defaults.Set(a)
	type tmp Arg
	return d.DecodeElement((*tmp)(a), &start)
}

func (a *Arg) UnmarshalYAML(f func(interface{}) error) error {
	_ = defaults.Set(a)
	type tmp Arg
	return f((*tmp)(a))
}

type Deployment struct {
	Type string `xml:"type,attr" yaml:"type" json:"type"`
}

type Thread struct {
	Type string `xml:"type,attr" yaml:"type" json:"type"`
}

type Module struct {
	Type string `xml:"type,attr" yaml:"type" json:"type"`
}

type RewriteMap struct {
	Type   string   `xml:"type,attr" yaml:"type" json:"type"`
	Params []*Param `xml:"params>param,omitempty" yaml:"params,omitempty" json:"params,omitempty"`
}

type Execute struct {
	Script string `xml:"script,attr" yaml:"script" json:"script"`
	Args   []*Arg `xml:"args>arg,omitempty" yaml:"args,omitempty" json:"args,omitempty"`
}

type Step struct {
	Type    string   `xml:"type,attr" yaml:"type" json:"type"`
	Execute *Execute `xml:"execute,omitempty" yaml:"execute,omitempty" json:"execute,omitempty"`
	Params  []*Param `xml:"params>param,omitempty" yaml:"params,omitempty" json:"params,omitempty"`
}

type Provisioner struct {
	Name        string  `xml:"name,attr" yaml:"name" json:"name"`
	Type        string  `xml:"type,attr" yaml:"type" json:"type"`
	Description string  `xml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []*Step `xml:"steps>step,omitempty" yaml:"steps,omitempty" json:"steps,omitempty"`
}

type Database struct {
	Driver       string `xml:"driver" yaml:"driver" json:"driver"`
	User         string `xml:"user,omitempty" yaml:"user,omitempty" json:"user,omitempty"`
	Password     string `xml:"password,omitempty" yaml:"password,omitempty" json:"password,omitempty"`
	DatabaseName string `xml:"databaseName,omitempty" yaml:"databaseName,omitempty" json:"databaseName,omitempty"`
	DatabaseHost string `xml:"databaseHost,omitempty" yaml:"databaseHost,omitempty" json:"databaseHost,omitempty"`
	DatabasePort int    `xml:"databasePort,omitempty" yaml:"databasePort,omitempty" json:"databasePort,omitempty" default:"3306"`
}

func (db *Database) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	_ = defaults.Set(db)
	type tmp Database
	return d.DecodeElement((*tmp)(db), &start)
}

func (db *Database) UnmarshalYAML(f func(interface{}) error) error {
	_ = defaults.Set(db)
	type tmp Database
	return f((*tmp)(db))
}

type Datasource struct {
	Name        string    `xml:"name,attr" yaml:"name" json:"name"`
	Type        string    `xml:"type,attr,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Description string    `xml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Database    *Database `xml:"database,omitempty" yaml:"database,omitempty" json:"database,omitempty"`
}

type Server struct {
	Name         string        `xml:"name,attr" yaml:"name" json:"name"`
	Type         string        `xml:"type,attr" yaml:"type" json:"type"`
	Socket       string        `xml:"socket,attr,omitempty" yaml:"socket,omitempty" json:"socket,omitempty"`
	Worker       string        `xml:"worker,attr,omitempty" yaml:"worker,omitempty" json:"worker,omitempty"`
	WorkerNumber int           `xml:"workerNumber,attr,omitempty" yaml:"workerNumber,omitempty" json:"workerNumber,omitempty" default:"64"`
	Params       []*Param      `xml:"params>param,omitempty" yaml:"params,omitempty" json:"params,omitempty"`
	Modules      []*Module     `xml:"modules>module,omitempty" yaml:"modules,omitempty" json:"modules,omitempty"`
	RewriteMaps  []*RewriteMap `xml:"rewriteMaps>rewriteMap,omitempty" yaml:"rewriteMaps,omitempty" json:"rewriteMaps,omitempty"`
}

func (s *Server) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	_ = defaults.Set(s)
	type tmp Server
	return d.DecodeElement((*tmp)(s), &start)
}

func (s *Server) UnmarshalYAML(f func(interface{}) error) error {
	_ = defaults.Set(s)
	type tmp Server
	return f((*tmp)(s))
}

type Container struct {
	Name        string      `xml:"name,attr" yaml:"name" json:"name"`
	Type        string      `xml:"type,attr" yaml:"type" json:"type"`
	Description string      `xml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Deployment  *Deployment `xml:"deployment,omitempty" yaml:"deployment,omitempty" json:"deployment,omitempty"`
	Thread      *Thread     `xml:"thread,omitempty" yaml:"thread,omitempty" json:"thread,omitempty"`
	Servers     []*Server   `xml:"servers>server,omitempty" yaml:"servers,omitempty" json:"servers,omitempty"`
}

type Job struct {
	Name     string   `xml:"name,attr" yaml:"name" json:"name"`
	Schedule string   `xml:"schedule" yaml:"schedule" json:"schedule"`
	Execute  *Execute `xml:"execute,omitempty" yaml:"execute,omitempty" json:"execute,omitempty"`
}
