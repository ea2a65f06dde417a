package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<appserver>
    <params>
        <param name="user">_www</param>
        <param name="port" type="integer">9080</param>
    </params>
    <containers>
        <container name="combined-appserver" type="GenericContainer">
            <deployment type="GenericDeployment"/>
        </container>
    </containers>
    <cron>
        <job name="cleanup">
            <schedule>0 0 3 * * *</schedule>
            <execute script="bin/cleanup"/>
        </job>
    </cron>
</appserver>`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appserver.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, document)
		out, err := execute(t, "validate", "-c", path)
		require.NoError(t, err)
		assert.Equal(t, path+": ok\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeConfig(t, `<appserver><containers><container type="T"/></containers></appserver>`)
		_, err := execute(t, "validate", "-c", path)
		assert.EqualError(t, err, "1 configuration errors")
	})
}

func TestParams(t *testing.T) {
	path := writeConfig(t, document)

	out, err := execute(t, "params", "-c", path, "port")
	require.NoError(t, err)
	assert.Equal(t, "9080\n", out)

	out, err = execute(t, "params", "-c", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "user"))
	assert.Contains(t, lines[1], "integer")

	_, err = execute(t, "params", "-c", path, "missing")
	assert.EqualError(t, err, `param "missing" is not set`)
}

func TestDump(t *testing.T) {
	path := writeConfig(t, document)

	out, err := execute(t, "dump", "-c", path, "--format", "json", "--out", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"combined-appserver"`)

	dir := t.TempDir()
	out, err = execute(t, "dump", "-c", path, "--format", "yaml", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 1 file(s)")
	_, err = os.Stat(filepath.Join(dir, "appserver.yaml"))
	assert.NoError(t, err)
}

func TestJobs(t *testing.T) {
	path := writeConfig(t, document)
	out, err := execute(t, "jobs", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cleanup")
	assert.Contains(t, out, "bin/cleanup")
}
