package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags overlays cfg with flags at the start of args and returns the
// remaining arguments.
//
//	-a string     address and port of the keykeeper server
//	-t string     access token
//	-w duration   per-call timeout
//	-c string     JSON config file (read by parseJson)
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("keykeeper-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	fs.DurationVar(&cfg.RequestTimeout, "w", cfg.RequestTimeout, "request timeout")

	var ignored string
	fs.StringVar(&ignored, "c", "", "path to config file")
	fs.StringVar(&ignored, "config", "", "path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return fs.Args(), nil
}
