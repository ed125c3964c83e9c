package config

import (
	"flag"
	"os"
	"time"

	"github.com/inkpresscms/inkpress/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string              gRPC bind address (e.g., ":50051")
//	-l string              HTTP bind address (e.g., ":8080")
//	-k string              storage backend, "couch" or "postgres"
//	-d string              PostgreSQL DSN
//	-s string              JWT HMAC secret key
//	-i string              JWT issuer
//	-t int                 access token validity, minutes
//	-couch-url string      document store base URL
//	-couch-db string       document store database name
//	-couch-user string     document store user
//	-couch-password string document store password
//	-u string              S3 root user
//	-p string              S3 root password
//	-b string              S3 bucket name
//	-g string              S3 region
//	-e string              S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-l", "-k", "-d", "-s", "-i", "-t",
		"-couch-url", "-couch-db", "-couch-user", "-couch-password",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port for the gRPC endpoint")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "address and port for the HTTP endpoint")
	fs.StringVar(&config.Backend, "k", config.Backend, "storage backend (couch or postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "JWT issuer")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.CouchURL, "couch-url", config.CouchURL, "document store base URL")
	fs.StringVar(&config.CouchDatabase, "couch-db", config.CouchDatabase, "document store database")
	fs.StringVar(&config.CouchUser, "couch-user", config.CouchUser, "document store user")
	fs.StringVar(&config.CouchPassword, "couch-password", config.CouchPassword, "document store password")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
}
