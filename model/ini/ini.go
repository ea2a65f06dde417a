// Package ini reads param override files.
//
// An override file lists params in a [params] section. Typed params go to
// a child section named after the type:
//
//	[params]
//	user = www-data
//
//	[params.integer]
//	workerNumber = 16
//
// Params keep the order of the file, sections first to last.
package ini

import (
	"io"
	"strings"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/schema"
	"gopkg.in/ini.v1"
)

const paramsSection = "params"

type Reader struct{}

func (r *Reader) LoadReader(reader io.Reader) ([]*schema.Param, error) {
	f, err := ini.Load(reader)
	if err != nil {
		return nil, err
	}
	return r.parseParams(f), nil
}

func (r *Reader) LoadPath(path string) ([]*schema.Param, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return r.parseParams(f), nil
}

// LoadParams reads the override file at path into model params.
func (r *Reader) LoadParams(path string) ([]*model.Param, error) {
	params, err := r.LoadPath(path)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Param, 0, len(params))
	for _, p := range params {
		out = append(out, model.NewParam(p.Name, p.Type, p.Value))
	}
	return out, nil
}

func (r *Reader) parseParams(f *ini.File) []*schema.Param {
	var params []*schema.Param
	for _, section := range f.Sections() {
		typ, ok := paramType(section.Name())
		if !ok {
			continue
		}
		for _, key := range section.Keys() {
			params = append(params, &schema.Param{
				Name:  key.Name(),
				Type:  typ,
				Value: key.Value(),
			})
		}
	}
	return params
}

func paramType(section string) (string, bool) {
	if section == paramsSection {
		return model.ParamTypeString, true
	}
	if strings.HasPrefix(section, paramsSection+".") {
		return section[len(paramsSection)+1:], true
	}
	return "", false
}
