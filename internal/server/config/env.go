package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays INKPRESS_* environment variables onto the config. A
// .env file in the working directory is folded into the environment first;
// its absence is not an error. Variables already exported win over the file,
// which is godotenv's default.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("INKPRESS_GRPC_ADDR", &config.EndpointAddrGRPC)
	setString("INKPRESS_HTTP_ADDR", &config.EndpointAddrHTTP)
	setString("INKPRESS_BACKEND", &config.Backend)
	setString("INKPRESS_COUCH_URL", &config.CouchURL)
	setString("INKPRESS_COUCH_DATABASE", &config.CouchDatabase)
	setString("INKPRESS_COUCH_USER", &config.CouchUser)
	setString("INKPRESS_COUCH_PASSWORD", &config.CouchPassword)
	setString("INKPRESS_DATABASE_DSN", &config.DatabaseDSN)
	setString("INKPRESS_SECRET_KEY", &config.SecretKey)
	setString("INKPRESS_TOKEN_ISSUER", &config.TokenIssuer)
	setString("INKPRESS_S3_ROOT_USER", &config.S3RootUser)
	setString("INKPRESS_S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("INKPRESS_S3_BUCKET", &config.S3Bucket)
	setString("INKPRESS_S3_REGION", &config.S3Region)
	setString("INKPRESS_S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	if v, ok := os.LookupEnv("INKPRESS_ACCESS_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
