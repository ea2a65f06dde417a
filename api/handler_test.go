package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appserver-io/confnode/api"
	"github.com/appserver-io/confnode/config"
	"github.com/appserver-io/confnode/model/schema"
	"github.com/appserver-io/confnode/model/xml"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<appserver>
    <description>api</description>
    <params>
        <param name="user">_www</param>
        <param name="user">www-data</param>
    </params>
    <containers>
        <container name="combined-appserver" type="GenericContainer">
            <deployment type="GenericDeployment"/>
        </container>
    </containers>
    <provisioners>
        <provisioner name="standalone" type="StandardProvisioner"/>
    </provisioners>
</appserver>`

func newServer(t *testing.T, loaded bool) *httptest.Server {
	t.Helper()
	store, err := config.NewStore()
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	m := config.NewMetrics(reg)
	if loaded {
		root := xml.MustLoadString(document)
		changes, err := store.Apply(root)
		require.NoError(t, err)
		m.ObserveReload(root, store.Revision(), changes)
	}
	srv := httptest.NewServer(api.NewHandler(store, api.WithGatherer(reg)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if v != nil && res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	}
	return res
}

func TestHandler(t *testing.T) {
	srv := newServer(t, true)

	t.Run("config", func(t *testing.T) {
		var doc schema.Appserver
		res := get(t, srv.URL+"/config", &doc)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "1", res.Header.Get("X-Config-Revision"))
		assert.Equal(t, "api", doc.Description)
		assert.Len(t, doc.Params, 2)
	})

	t.Run("container", func(t *testing.T) {
		var c schema.Container
		res := get(t, srv.URL+"/containers/combined-appserver", &c)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "GenericContainer", c.Type)
		require.NotNil(t, c.Deployment)
		assert.Equal(t, "GenericDeployment", c.Deployment.Type)
	})

	t.Run("unknown container", func(t *testing.T) {
		res := get(t, srv.URL+"/containers/nope", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("param is last bound", func(t *testing.T) {
		var p schema.Param
		res := get(t, srv.URL+"/params/user", &p)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "www-data", p.Value)
	})

	t.Run("unknown param", func(t *testing.T) {
		res := get(t, srv.URL+"/params/nope", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("provisioners", func(t *testing.T) {
		var ps []*schema.Provisioner
		res := get(t, srv.URL+"/provisioners", &ps)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		require.Len(t, ps, 1)
		assert.Equal(t, "standalone", ps[0].Name)
	})

	t.Run("metrics", func(t *testing.T) {
		res := get(t, srv.URL+"/metrics", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("method not allowed", func(t *testing.T) {
		res, err := http.Post(srv.URL+"/config", "application/json", nil)
		require.NoError(t, err)
		_ = res.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	})
}

func TestHandler_NothingLoaded(t *testing.T) {
	srv := newServer(t, false)

	res := get(t, srv.URL+"/config", nil)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	var ps []*schema.Provisioner
	res = get(t, srv.URL+"/provisioners", &ps)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, ps)
}
