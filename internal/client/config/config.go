package config

import (
	"errors"
	"fmt"
	"time"
)

// ConfigEnv names the environment variable consulted for a JSON config file
// when -c/-config is not given.
const ConfigEnv = "KEYKEEPER_CLIENT_CONFIG"

// Config holds runtime settings for the keykeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the keykeeper gRPC endpoint.
//   - AccessToken: bearer token sent as access_token metadata. When empty the
//     CLI prompts for it.
//   - RequestTimeout: deadline applied to every call.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return errors.New("server address is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig applies defaults, then the JSON file, then flags found in args.
// The returned slice holds the arguments left after the flags, i.e. the
// command to run.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, nil, err
	}

	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
