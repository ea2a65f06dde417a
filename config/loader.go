package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appserver-io/confnode/model"
	"github.com/appserver-io/confnode/model/ini"
	"github.com/appserver-io/confnode/model/schema"
	"github.com/appserver-io/confnode/model/xml"
	"github.com/appserver-io/confnode/model/yaml"
	"github.com/appserver-io/confnode/pkg/env"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownFormat = errors.New("unknown configuration format")

// Loader reads the appserver configuration: the main document, the
// fragments of an include directory and a param override file, in that
// order.
type Loader struct {
	path       string
	includeDir string
	paramsPath string
	envFile    string
	validate   bool
}

type OptionFn func(l *Loader)

// WithIncludeDir merges every *.xml, *.yaml and *.yml file of dir, in
// lexical order, after the main document.
func WithIncludeDir(dir string) OptionFn {
	return func(l *Loader) {
		l.includeDir = dir
	}
}

// WithParamOverrides appends the params of an ini file after all document
// params, so they win over params of the same name.
func WithParamOverrides(path string) OptionFn {
	return func(l *Loader) {
		l.paramsPath = path
	}
}

// WithEnvFile resolves ${VAR} references from the file before the process
// environment.
func WithEnvFile(path string) OptionFn {
	return func(l *Loader) {
		l.envFile = path
	}
}

func WithoutValidation() OptionFn {
	return func(l *Loader) {
		l.validate = false
	}
}

func NewLoader(path string, opts ...OptionFn) *Loader {
	l := &Loader{path: path, validate: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) IncludeDir() string {
	return l.includeDir
}

// Load builds and validates the configuration tree.
func (l *Loader) Load() (*model.Appserver, error) {
	doc, err := l.LoadDocument()
	if err != nil {
		return nil, err
	}

	kvs, err := l.environment()
	if err != nil {
		return nil, err
	}

	root := doc.Build(schema.WithMapping(kvs.Mapping()))
	if l.validate {
		if err := Validate(root); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// LoadDocument returns the merged document without building it.
func (l *Loader) LoadDocument() (*schema.Appserver, error) {
	zap.L().Info("Loading configuration", zap.String("file", l.path))
	doc, err := decodeFile(l.path)
	if err != nil {
		return nil, err
	}

	files, err := l.includeFiles()
	if err != nil {
		return nil, err
	}

	fragments := make([]*schema.Appserver, len(files))
	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			frag, err := decodeFile(f)
			if err != nil {
				return err
			}
			fragments[i] = frag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, frag := range fragments {
		zap.L().Debug("Merging configuration fragment", zap.String("file", files[i]))
		doc.Merge(frag)
	}

	if l.paramsPath != "" {
		var r ini.Reader
		params, err := r.LoadPath(l.paramsPath)
		if err != nil {
			return nil, fmt.Errorf("param overrides %s: %w", l.paramsPath, err)
		}
		zap.L().Debug("Applying param overrides", zap.String("file", l.paramsPath), zap.Int("count", len(params)))
		doc.Params = append(doc.Params, params...)
	}

	return doc, nil
}

func (l *Loader) environment() (env.KeyValues, error) {
	if l.envFile == "" {
		return nil, nil
	}
	kvs, err := env.ReadFile(l.envFile)
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", l.envFile, err)
	}
	return kvs, nil
}

func (l *Loader) includeFiles() ([]string, error) {
	if l.includeDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(l.includeDir)
	if err != nil {
		return nil, fmt.Errorf("include dir %s: %w", l.includeDir, err)
	}

	mainPath, err := filepath.Abs(l.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isDocument(e.Name()) {
			continue
		}
		path := filepath.Join(l.includeDir, e.Name())
		// the main document may live in the include dir itself
		if abs, err := filepath.Abs(path); err == nil && abs == mainPath {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func isDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml", ".yaml", ".yml":
		return true
	}
	return false
}

// decodeFile reads YAML for .yaml and .yml files and XML for anything else.
func decodeFile(path string) (*schema.Appserver, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var r yaml.Reader
		return r.DecodePath(path)
	default:
		var r xml.Reader
		return r.DecodePath(path)
	}
}
