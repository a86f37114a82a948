package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/keykeeper/internal/flagx"
	"github.com/dmitrijs2005/keykeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted. Fields
// left out of the file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC       string         `json:"endpoint_addr_grpc"`
	MetricsAddr            string         `json:"metrics_addr"`
	DatabaseDSN            string         `json:"database_dsn"`
	SecretKey              string         `json:"secret_key"`
	HashCost               int            `json:"hash_cost"`
	RequestTimeout         timex.Duration `json:"request_timeout"`
	LogLevel               string         `json:"log_level"`
	S3RootUser             string         `json:"s3_root_user"`
	S3RootPassword         string         `json:"s3_root_password"`
	S3Bucket               string         `json:"s3_bucket"`
	S3Region               string         `json:"s3_region"`
	S3BaseEndpoint         string         `json:"s3_base_endpoint"`
	AuditExportURLValidity timex.Duration `json:"audit_export_url_validity"`
}

// parseJson overlays config with the JSON file named by -c/-config or the
// KEYKEEPER_CONFIG environment variable. No path means nothing to load.
func parseJson(config *Config) error {
	path := flagx.ConfigPath(ConfigEnv)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.HashCost != 0 {
		config.HashCost = c.HashCost
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.AuditExportURLValidity.Duration != 0 {
		config.AuditExportURLValidity = c.AuditExportURLValidity.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
