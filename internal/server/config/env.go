package config

import (
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// envFiles are loaded, when present, before the environment is read.
// Variables already set in the process environment win over file values.
var envFiles = []string{".env", ".env.local"}

// parseEnv overlays environment variables onto config.
//
// DATABASE_DSN takes precedence; otherwise a DSN is assembled from
// DB_USER, DB_PASSWORD, DB_HOST, DB_PORT (5432), DB_NAME and DB_SSLMODE
// (disable) when DB_HOST is set. APP_ENV=production switches Production on.
func parseEnv(config *Config) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	// an empty HEALTH_ADDR turns the gRPC health server off
	if v, ok := os.LookupEnv("HEALTH_ADDR"); ok {
		config.EndpointAddrHealth = v
	}
	lookupDuration("HEALTH_CHECK_INTERVAL", &config.HealthCheckInterval)
	lookupDuration("SHUTDOWN_TIMEOUT", &config.ShutdownTimeout)
	lookupString("JWT_SECRET_KEY", &config.SecretKey)
	lookupDuration("TOKEN_VALIDITY", &config.TokenValidityDuration)
	lookupString("FRONTEND_URL", &config.FrontendURL)
	lookupString("STATIC_DIR", &config.StaticDir)
	lookupString("LOG_LEVEL", &config.LogLevel)
	lookupString("S3_ACCESS_KEY", &config.S3RootUser)
	lookupString("S3_SECRET_KEY", &config.S3RootPassword)
	lookupString("S3_BUCKET", &config.S3Bucket)
	lookupString("S3_REGION", &config.S3Region)
	lookupString("S3_ENDPOINT", &config.S3BaseEndpoint)
	lookupString("S3_PUBLIC_URL", &config.S3PublicURL)

	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Production = v == "production"
	}

	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	} else if host := os.Getenv("DB_HOST"); host != "" {
		config.DatabaseDSN = buildDSN(
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			envOr("DB_PORT", "5432"),
			os.Getenv("DB_NAME"),
			envOr("DB_SSLMODE", "disable"),
		)
	}
}

func buildDSN(user, password, host, port, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// lookupDuration ignores values time.ParseDuration rejects.
func lookupDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}
