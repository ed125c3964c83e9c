package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":6000",
		"-l", ":6001",
		"-k", BackendPostgres,
		"-d", "postgres://example/db",
		"-s", "flag-secret",
		"-i", "flag-issuer",
		"-t", "45",
		"-couch-url", "http://couch:5984",
		"-couch-db", "cms",
		"-b", "assets",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, ":6001", cfg.EndpointAddrHTTP)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "postgres://example/db", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, "flag-issuer", cfg.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "http://couch:5984", cfg.CouchURL)
	assert.Equal(t, "cms", cfg.CouchDatabase)
	assert.Equal(t, "assets", cfg.S3Bucket)
	// Flags not passed keep their previous values.
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func Test_parseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-config", "somewhere.json", "-a", ":6000"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
}
