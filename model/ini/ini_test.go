package ini_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appserver-io/confnode/model/ini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overrides = `
[params]
user = www-data
group = www-data

[other]
ignored = yes

[params.integer]
workerNumber = 16
`

func TestReader_LoadReader(t *testing.T) {
	var r ini.Reader
	params, err := r.LoadReader(strings.NewReader(overrides))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, "user", params[0].Name)
	assert.Equal(t, "www-data", params[0].Value)
	assert.Equal(t, "string", params[0].Type)
	assert.Equal(t, "group", params[1].Name)
	assert.Equal(t, "workerNumber", params[2].Name)
	assert.Equal(t, "integer", params[2].Type)
}

func TestReader_LoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.ini")
	require.NoError(t, os.WriteFile(path, []byte(overrides), 0o644))

	var r ini.Reader
	params, err := r.LoadParams(path)
	require.NoError(t, err)
	require.Len(t, params, 3)

	n, err := params[2].Int()
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestReader_MissingFile(t *testing.T) {
	var r ini.Reader
	_, err := r.LoadParams(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
