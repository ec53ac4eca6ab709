package config

import (
	"os"
	"path/filepath"
	"strings"
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
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "trv_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 10
conn_max_lifetime = 300

[logs]
file = "logs/booking-engine.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "trv-booking-engine"

[razorpay]
base_url = "https://api.razorpay.com"
key_id = "rzp_test_key"
key_secret = "rzp_test_secret"
timeout = 10
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "trv_booking", cfg.Database.DBName)
	assert.Equal(t, "logs/booking-engine.log", cfg.Logs.File)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "rzp_test_secret", cfg.Razorpay.KeySecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		missing string
	}{
		{"missing port", "http_port = 8080", "http_port = 0"},
		{"missing db host", `host = "localhost"`, `host = ""`},
		{"missing log file", `file = "logs/booking-engine.log"`, `file = ""`},
		{"missing razorpay secret", `key_secret = "rzp_test_secret"`, `key_secret = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(validConfig, tt.mutate, tt.missing, 1)

			_, err := Load(writeConfig(t, broken))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		DBName:   "bookings",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=pw dbname=bookings sslmode=require",
		d.DSN())
}
