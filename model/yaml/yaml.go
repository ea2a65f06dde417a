package yaml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/schema"
	"github.com/goccy/go-yaml"
)

type Reader struct{}

func (r *Reader) Decode(reader io.Reader) (*schema.Appserver, error) {
	dec := yaml.NewDecoder(reader)
	var v schema.Appserver
	err := dec.Decode(&v)
	if err != nil {
		if err == io.EOF {
			return &v, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *Reader) DecodePath(path string) (*schema.Appserver, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	v, err := r.Decode(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

func (r *Reader) LoadReader(reader io.Reader) (*model.Appserver, error) {
	v, err := r.Decode(reader)
	if err != nil {
		return nil, err
	}
	return v.Build(), nil
}

func (r *Reader) LoadString(s string) (*model.Appserver, error) {
	return r.LoadReader(strings.NewReader(s))
}

func (r *Reader) LoadPath(path string) (*model.Appserver, error) {
	v, err := r.DecodePath(path)
	if err != nil {
		return nil, err
	}
	return v.Build(), nil
}

func Marshal(v *schema.Appserver) ([]byte, error) {
	return yaml.Marshal(v)
}
