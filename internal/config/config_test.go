package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := New()
	cfg.Target.Path = " . "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if cfg.Target.Path != "." {
		t.Fatalf("expected path to be trimmed, got %q", cfg.Target.Path)
	}
	if cfg.Source.Mode != SourceClone || cfg.Output.ConsoleFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate_RequiresPath(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_NormalizesEnums(t *testing.T) {
	cfg := New()
	cfg.Target.Path = "."
	cfg.Source.Mode = " API "
	cfg.Output.ConsoleFormat = "NDJSON"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if cfg.Source.Mode != "api" || cfg.Output.ConsoleFormat != "ndjson" {
		t.Fatalf("enums not normalized: %+v", cfg)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		substr string
	}{
		{name: "bad source", mutate: func(c *Config) { c.Source.Mode = "ftp" }, substr: "--source"},
		{name: "bad console format", mutate: func(c *Config) { c.Output.ConsoleFormat = "xml" }, substr: "--console-format"},
		{name: "empty console format", mutate: func(c *Config) { c.Output.ConsoleFormat = " " }, substr: "--console-format"},
		{name: "fail-under too high", mutate: func(c *Config) { c.Scoring.FailUnder = 101 }, substr: "--fail-under"},
		{name: "negative timeout", mutate: func(c *Config) { c.Runtime.Timeout = -time.Second }, substr: "--timeout"},
		{name: "out without extension", mutate: func(c *Config) { c.Output.Out = "result" }, substr: "missing extension"},
		{name: "out unknown extension", mutate: func(c *Config) { c.Output.Out = "result.xml" }, substr: ".xml"},
		{name: "bad out format", mutate: func(c *Config) { c.Output.Out = "r.json"; c.Output.OutFormat = "yaml" }, substr: "unsupported output format"},
		{
			name: "api source with non-github url",
			mutate: func(c *Config) {
				c.Target.Path = "https://gitlab.com/a/b"
				c.Source.Mode = "api"
			},
			substr: "github.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Target.Path = "."
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Fatalf("error %q should mention %q", err, tt.substr)
			}
		})
	}
}

func TestValidate_InfersOutFormat(t *testing.T) {
	tests := map[string]string{
		"out.json":   "json",
		"out.ndjson": "ndjson",
		"OUT.JSONL":  "ndjson",
	}
	for path, want := range tests {
		cfg := New()
		cfg.Target.Path = "."
		cfg.Output.Out = path
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%s) returned error: %v", path, err)
		}
		if cfg.Output.OutFormat != want {
			t.Errorf("OutFormat for %s = %q, want %q", path, cfg.Output.OutFormat, want)
		}
	}
}

func TestValidate_APISourceAcceptsGitHubPages(t *testing.T) {
	cfg := New()
	cfg.Target.Path = "https://alice.github.io/myproj/"
	cfg.Source.Mode = "api"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
}
