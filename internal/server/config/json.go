package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hotelbook/internal/flagx"
	"github.com/dmitrijs2005/hotelbook/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept "24h"
// style strings. Absent keys leave the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	EndpointAddrHealth    *string         `json:"endpoint_addr_health"`
	HealthCheckInterval   *timex.Duration `json:"health_check_interval"`
	ShutdownTimeout       *timex.Duration `json:"shutdown_timeout"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	FrontendURL           *string         `json:"frontend_url"`
	Production            *bool           `json:"production"`
	StaticDir             *string         `json:"static_dir"`
	LogLevel              *string         `json:"log_level"`
	S3RootUser            *string         `json:"s3_root_user"`
	S3RootPassword        *string         `json:"s3_root_password"`
	S3Bucket              *string         `json:"s3_bucket"`
	S3Region              *string         `json:"s3_region"`
	S3BaseEndpoint        *string         `json:"s3_base_endpoint"`
	S3PublicURL           *string         `json:"s3_public_url"`
}

// parseJson overlays the JSON file named by -c/-config (or $CONFIG) onto
// config. No file means no change; an unreadable or invalid file panics,
// since the server must not start with a half-read configuration.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrHealth, c.EndpointAddrHealth)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.FrontendURL, c.FrontendURL)
	setString(&config.StaticDir, c.StaticDir)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicURL, c.S3PublicURL)

	if c.Production != nil {
		config.Production = *c.Production
	}
	if c.HealthCheckInterval != nil {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
