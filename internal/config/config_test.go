package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("CONFIG", "")
	opts, err := parse([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Address != "localhost:8080" {
		t.Errorf("Address = %q", opts.Address)
	}
	if opts.DatabaseDSN != "growth_mindset.db" {
		t.Errorf("DatabaseDSN = %q", opts.DatabaseDSN)
	}
	if opts.LogLevel != "info" {
		t.Errorf("LogLevel = %q", opts.LogLevel)
	}
	if opts.TLSEnabled() {
		t.Error("TLS should be disabled by default")
	}
}

func TestParse_Flags(t *testing.T) {
	t.Setenv("CONFIG", "")
	opts, err := parse([]string{
		"-a", ":9090",
		"-d", "postgres://localhost/growth",
		"-s", "secret",
		"-config", filepath.Join(t.TempDir(), "none.json"),
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Address != ":9090" || opts.DatabaseDSN != "postgres://localhost/growth" || opts.TokenSecret != "secret" {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParse_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_address":":7000","database_dsn":"file.db","log_level":"debug"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG", path)
	t.Setenv("SERVER_ADDRESS", ":7001")

	opts, err := parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Address != ":7001" {
		t.Errorf("env should override file, Address = %q", opts.Address)
	}
	if opts.DatabaseDSN != "file.db" {
		t.Errorf("DatabaseDSN = %q; want value from file", opts.DatabaseDSN)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want value from file", opts.LogLevel)
	}
}

func TestParse_BadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG", "")

	if _, err := parse([]string{"-c", path}); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestParse_TLSPairRequired(t *testing.T) {
	t.Setenv("CONFIG", "")
	dir := t.TempDir()

	if _, err := parse([]string{"-c", filepath.Join(dir, "x.json"), "-tls-cert", "cert.pem"}); err == nil {
		t.Fatal("expected error when only the certificate is set")
	}

	opts, err := parse([]string{"-c", filepath.Join(dir, "x.json"), "-tls-cert", "cert.pem", "-tls-key", "key.pem"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.TLSEnabled() {
		t.Error("TLS should be enabled")
	}
}
