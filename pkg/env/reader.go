// Package env reads environment files used to expand ${VAR} references in
// configuration documents.
package env

import (
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-envparse"
)

type KeyValue struct {
	Key   string
	Value string
}

type KeyValues []KeyValue

// Read parses KEY=VALUE lines, with the quoting, comment and export rules of
// go-envparse. The result is sorted by key.
func Read(r io.Reader) (KeyValues, error) {
	m, err := envparse.Parse(r)
	if err != nil {
		return nil, err
	}

	kvs := make(KeyValues, 0, len(m))
	for k, v := range m {
		kvs = append(kvs, KeyValue{Key: k, Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs, nil
}

func ReadFile(name string) (KeyValues, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func (kvs KeyValues) Lookup(key string) (string, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Mapping returns a function for schema.WithMapping that resolves keys from kvs, then
// from the process environment. Unresolved references are kept verbatim.
func (kvs KeyValues) Mapping() func(string) string {
	return func(key string) string {
		if v, ok := kvs.Lookup(key); ok {
			return v
		}
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return "${" + key + "}"
	}
}
