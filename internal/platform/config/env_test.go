package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"USERDASH_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Records int    `env:"TEST_RECORDS" envDefault:"48"`
	Addr    string `env:"TEST_ADDR" envDefault:"localhost:8082"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("USERDASH_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST_RECORDS", "7")
	t.Setenv("TEST_ADDR", "unprefixed:1")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Records != 7 {
		t.Fatalf("expected prefixed records 7, got %d", cfg.Records)
	}
	if cfg.Addr != "localhost:8082" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST_RECORDS", "many")

	var cfg prefixedTestConfig
	err := ParseEnvWithPrefix(&cfg, EnvPrefix)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}
