package config

import (
	"encoding/json"
	"fmt"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/schema"
	"github.com/appserver-io/confnode/model/xml"
	"github.com/appserver-io/confnode/model/yaml"
)

const (
	FormatXML  = "xml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Marshal encodes the configuration tree in the given format.
func Marshal(root *model.Appserver, format string) ([]byte, error) {
	doc := schema.FromModel(root)
	switch format {
	case FormatXML:
		return xml.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Export renders the tree as appserver.<format> documents.
func Export(root *model.Appserver, formats ...string) ([]*Document, error) {
	docs := make([]*Document, 0, len(formats))
	for _, f := range formats {
		b, err := Marshal(root, f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &Document{Path: "appserver." + f, Content: b})
	}
	return docs, nil
}
