package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const mainDocument = `<?xml version="1.0" encoding="UTF-8"?>
<appserver>
    <description>main</description>
    <params>
        <param name="user">_www</param>
        <param name="baseDirectory">${APPSERVER_HOME}</param>
    </params>
    <containers>
        <container name="combined-appserver" type="GenericContainer">
            <deployment type="GenericDeployment"/>
            <thread type="ContainerThread"/>
            <servers>
                <server name="http" type="MultiThreadedServer">
                    <modules>
                        <module type="CoreModule"/>
                    </modules>
                </server>
            </servers>
        </container>
    </containers>
</appserver>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
