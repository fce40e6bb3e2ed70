package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 9090

[database]
user = "booking"
password = "secret"
dbname = "gt_booking"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"
`

func TestLoad_Success(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "booking", cfg.Database.User)
	assert.Equal(t, "http://localhost:8081", cfg.UserService.URL)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
user = "booking"
dbname = "gt_booking"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database user",
			content: `
[database]
dbname = "gt_booking"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"
`,
		},
		{
			name: "missing user_service url",
			content: `
[database]
user = "booking"
dbname = "gt_booking"

[catalog_service]
url = "http://localhost:8082"
`,
		},
		{
			name: "invalid port",
			content: `
[server]
http_port = 70000

[database]
user = "booking"
dbname = "gt_booking"

[user_service]
url = "http://localhost:8081"

[catalog_service]
url = "http://localhost:8082"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "booking", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=booking sslmode=disable", c.DSN())
}
