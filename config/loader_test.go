package config_test

import (
	"path/filepath"
	"testing"

	"github.com/appserver-io/confnode/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoader(t *testing.T) {
	t.Run("main document only", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)

		root, err := config.NewLoader(path).Load()
		require.NoError(t, err)
		c, ok := root.Container("combined-appserver")
		require.True(t, ok)
		assert.Equal(t, "GenericDeployment", c.Deployment().Type())
		assert.Equal(t, "main", root.Description().NodeValue().String())
	})

	t.Run("keeps unresolved references", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", `<appserver><params><param name="p">${CONFNODE_NEVER_SET}/x</param></params></appserver>`)

		root, err := config.NewLoader(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "${CONFNODE_NEVER_SET}/x", root.ParamValue("p"))
	})

	t.Run("keeps literal dollar signs", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", `<appserver>
  <params>
    <param name="password">pa$$word</param>
    <param name="shell">$word and $HOME</param>
    <param name="escaped">$${APPSERVER_HOME}</param>
  </params>
  <containers>
    <container name="c" type="GenericContainer">
      <servers>
        <server name="http" type="MultiThreadedServer">
          <rewriteMaps>
            <rewriteMap type="RewriteMapProvider">
              <params><param name="target">/index.php?q=$1</param></params>
            </rewriteMap>
          </rewriteMaps>
        </server>
      </servers>
    </container>
  </containers>
</appserver>`)
		envFile := writeFile(t, dir, ".env", "APPSERVER_HOME=/opt/appserver\nword=expanded\n")

		root, err := config.NewLoader(path, config.WithEnvFile(envFile)).Load()
		require.NoError(t, err)
		assert.Equal(t, "pa$$word", root.ParamValue("password"))
		assert.Equal(t, "$word and $HOME", root.ParamValue("shell"))
		assert.Equal(t, "${APPSERVER_HOME}", root.ParamValue("escaped"))

		c, ok := root.Container("c")
		require.True(t, ok)
		srv, ok := c.Server("http")
		require.True(t, ok)
		require.Len(t, srv.RewriteMaps(), 1)
		assert.Equal(t, "/index.php?q=$1", srv.RewriteMaps()[0].ParamValue("target"))
	})

	t.Run("expands env file values", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)
		envFile := writeFile(t, dir, ".env", "APPSERVER_HOME=/opt/appserver\n")

		root, err := config.NewLoader(path, config.WithEnvFile(envFile)).Load()
		require.NoError(t, err)
		assert.Equal(t, "/opt/appserver", root.ParamValue("baseDirectory"))
	})

	t.Run("merges fragments in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)
		confd := filepath.Join(dir, "conf.d")
		writeFile(t, confd, "20-cron.yaml", `
params:
  - name: user
    value: from-yaml
jobs:
  - name: cleanup
    schedule: "@hourly"
    execute:
      script: /bin/cleanup.sh
`)
		writeFile(t, confd, "10-example.xml", `<appserver>
  <params><param name="user">from-xml</param></params>
  <containers><container name="example" type="GenericContainer"/></containers>
</appserver>`)
		writeFile(t, confd, "README.md", "not a document")

		root, err := config.NewLoader(path, config.WithIncludeDir(confd)).Load()
		require.NoError(t, err)

		containers := root.Containers()
		require.Len(t, containers, 2)
		assert.Equal(t, "combined-appserver", containers[0].Name())
		assert.Equal(t, "example", containers[1].Name())

		_, ok := root.Job("cleanup")
		assert.True(t, ok)

		params := root.Params()
		require.Len(t, params, 4)
		assert.Equal(t, "from-xml", params[2].String())
		assert.Equal(t, "from-yaml", root.ParamValue("user"))
	})

	t.Run("include dir holding the main document", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)
		writeFile(t, dir, "cron.xml", `<appserver><cron><job name="cleanup"><schedule>@daily</schedule><execute script="bin/cleanup"/></job></cron></appserver>`)

		root, err := config.NewLoader(path, config.WithIncludeDir(dir)).Load()
		require.NoError(t, err)
		assert.Len(t, root.Containers(), 1)
		assert.Len(t, root.Params(), 2)
		assert.Len(t, root.Jobs(), 1)
	})

	t.Run("include dir spelled differently from the main document", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "appserver.xml", mainDocument)
		writeFile(t, dir, "conf.d/.keep.txt", "")

		root, err := config.NewLoader(filepath.Join(dir, ".", "appserver.xml"), config.WithIncludeDir(dir+"/conf.d/..")).Load()
		require.NoError(t, err)
		assert.Len(t, root.Containers(), 1)
	})

	t.Run("param overrides win", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)
		overrides := writeFile(t, dir, "overrides.ini", "[params]\nuser = www-data\n")

		root, err := config.NewLoader(path, config.WithParamOverrides(overrides)).Load()
		require.NoError(t, err)
		assert.Equal(t, "www-data", root.ParamValue("user"))
		assert.Len(t, root.Params(), 3)
	})

	t.Run("yaml main document", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.yml", "containers:\n  - name: c\n    type: T\n")

		root, err := config.NewLoader(path).Load()
		require.NoError(t, err)
		assert.Len(t, root.Containers(), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewLoader(filepath.Join(t.TempDir(), "missing.xml")).Load()
		assert.Error(t, err)
	})

	t.Run("broken fragment", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", mainDocument)
		confd := filepath.Join(dir, "conf.d")
		writeFile(t, confd, "broken.xml", "<appserver><containers>")

		_, err := config.NewLoader(path, config.WithIncludeDir(confd)).Load()
		assert.ErrorContains(t, err, "broken.xml")
	})

	t.Run("validation errors", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "appserver.xml", `<appserver>
  <containers><container name="a"/><container name="a"/></containers>
  <cron><job name="bad"><schedule>not a schedule</schedule></job></cron>
</appserver>`)

		_, err := config.NewLoader(path).Load()
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 3)

		root, err := config.NewLoader(path, config.WithoutValidation()).Load()
		require.NoError(t, err)
		assert.Len(t, root.Containers(), 2)
	})
}
