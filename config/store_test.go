package config_test

import (
	"testing"

	"github.com/appserver-io/confnode/config"
	"github.com/appserver-io/confnode/model/xml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeDocument = `<appserver>
  <params>
    <param name="user">_www</param>
    <param name="user">www-data</param>
  </params>
  <containers>
    <container name="a" type="GenericContainer"/>
    <container name="b" type="GenericContainer"/>
  </containers>
  <provisioners><provisioner name="standalone" type="StandardProvisioner"/></provisioners>
</appserver>`

func TestStore(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		s, err := config.NewStore()
		require.NoError(t, err)
		assert.Nil(t, s.Root())
		assert.Equal(t, uint64(0), s.Revision())
		_, ok := s.Snapshot().Container("a")
		assert.False(t, ok)
	})

	t.Run("apply and lookup", func(t *testing.T) {
		s, err := config.NewStore()
		require.NoError(t, err)

		root := xml.MustLoadString(storeDocument)
		changes, err := s.Apply(root)
		require.NoError(t, err)
		assert.Equal(t, []config.Change{
			{Table: "container", Name: "a", Kind: config.ChangeAdded},
			{Table: "container", Name: "b", Kind: config.ChangeAdded},
			{Table: "provisioner", Name: "standalone", Kind: config.ChangeAdded},
			{Table: "param", Name: "user", Kind: config.ChangeAdded},
		}, changes)

		assert.Same(t, root, s.Root())
		assert.Equal(t, uint64(1), s.Revision())

		snap := s.Snapshot()
		c, ok := snap.Container("b")
		require.True(t, ok)
		assert.Equal(t, "b", c.Name())

		p, ok := snap.Param("user")
		require.True(t, ok)
		assert.Equal(t, "www-data", p.String())

		prov, ok := snap.Provisioner("standalone")
		require.True(t, ok)
		assert.Equal(t, "StandardProvisioner", prov.Type())
	})

	t.Run("reload swaps the whole tree", func(t *testing.T) {
		s, err := config.NewStore()
		require.NoError(t, err)

		first := xml.MustLoadString(storeDocument)
		_, err = s.Apply(first)
		require.NoError(t, err)
		before := s.Snapshot()

		second := xml.MustLoadString(`<appserver>
  <params><param name="user">nobody</param></params>
  <containers>
    <container name="a" type="GenericContainer"/>
    <container name="c" type="OtherContainer"/>
  </containers>
</appserver>`)
		changes, err := s.Apply(second)
		require.NoError(t, err)
		assert.ElementsMatch(t, []config.Change{
			{Table: "container", Name: "c", Kind: config.ChangeAdded},
			{Table: "container", Name: "b", Kind: config.ChangeRemoved},
			{Table: "provisioner", Name: "standalone", Kind: config.ChangeRemoved},
			{Table: "param", Name: "user", Kind: config.ChangeUpdated},
		}, changes)

		assert.Same(t, second, s.Root())
		assert.Equal(t, uint64(2), s.Revision())

		// the old snapshot still sees the first tree
		assert.Same(t, first, before.Root())
		_, ok := before.Container("b")
		assert.True(t, ok)

		after := s.Snapshot()
		_, ok = after.Container("b")
		assert.False(t, ok)

		a, ok := after.Container("a")
		require.True(t, ok)
		want, _ := second.Container("a")
		assert.Same(t, want, a)

		rev, ok := after.RevisionOf("container", "a")
		require.True(t, ok)
		assert.Equal(t, uint64(1), rev, "unchanged container keeps its revision")

		rev, ok = after.RevisionOf("container", "c")
		require.True(t, ok)
		assert.Equal(t, uint64(2), rev)
	})
}
