package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/schema"
)

type Reader struct{}

// Decode reads a document without building the tree, so that several
// documents can be merged first.
func (r *Reader) Decode(reader io.Reader) (*schema.Appserver, error) {
	dec := xml.NewDecoder(reader)
	var v schema.Appserver
	if err := dec.Decode(&v); err != nil {
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

func (r *Reader) MustLoadString(s string) *model.Appserver {
	m, err := r.LoadString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (r *Reader) LoadPath(path string) (*model.Appserver, error) {
	v, err := r.DecodePath(path)
	if err != nil {
		return nil, err
	}
	return v.Build(), nil
}

func MustLoadString(s string) *model.Appserver {
	var r Reader
	return r.MustLoadString(s)
}

// Marshal encodes the document as indented XML with a header.
func Marshal(v *schema.Appserver) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
