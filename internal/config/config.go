// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON file and environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the server.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"server_address" env:"SERVER_ADDRESS"`

	// DatabaseDSN is either a SQLite file path or a postgres:// URL.
	DatabaseDSN string `json:"database_dsn" env:"DATABASE_DSN"`

	// TokenSecret signs session tokens.
	TokenSecret string `json:"token_secret" env:"TOKEN_SECRET"`

	// LogLevel is a zap level name.
	LogLevel string `json:"log_level" env:"LOG_LEVEL"`

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	TLSCertFile string `json:"tls_cert_file" env:"TLS_CERT_FILE"`
	TLSKeyFile  string `json:"tls_key_file" env:"TLS_KEY_FILE"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// TLSEnabled reports whether a certificate and key were configured.
func (o *Options) TLSEnabled() bool {
	return o.TLSCertFile != "" && o.TLSKeyFile != ""
}

// Parse parses the command-line flags, config file and environment variables
// to set configuration values. Later sources override earlier ones.
func Parse() *Options {
	options, err := parse(os.Args[1:])
	if err != nil {
		log.Fatalf("error while reading configuration: %v", err)
	}
	return options
}

func parse(args []string) (*Options, error) {
	options := &Options{}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&options.DatabaseDSN, "d", "growth_mindset.db", "sqlite file or postgres url")
	fs.StringVar(&options.TokenSecret, "s", "", "session token secret")
	fs.StringVar(&options.LogLevel, "l", "info", "log level")
	fs.StringVar(&options.TLSCertFile, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&options.TLSKeyFile, "tls-key", "", "TLS key file")
	fs.StringVar(&options.Config, "config", "config.json", "path to config file")
	fs.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(options); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if (options.TLSCertFile == "") != (options.TLSKeyFile == "") {
		return nil, errors.New("tls cert and key must be set together")
	}

	return options, nil
}
