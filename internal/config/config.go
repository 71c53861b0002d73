package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields, keep the CLI
	// flags in internal/cli/root.go in sync.
	Target  Target
	Source  Source
	Scoring Scoring
	Output  Output
	Runtime Runtime
}

type Target struct {
	// Path is the positional argument: a local directory or a repository URL.
	Path string
}

type Source struct {
	// Mode controls how remote URLs are acquired (see --source).
	// Allowed values: clone, api.
	Mode string
}

type Scoring struct {
	// FailUnder makes the run exit 1 when the score is below it (see --fail-under).
	// 0 disables the check.
	FailUnder int
}

type Output struct {
	// ConsoleFormat controls the console sink format (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool

	// NoColor disables ANSI colours in text output (see --no-color).
	NoColor bool

	// Report writes a Markdown report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string
}

type Runtime struct {
	// Verbose writes diagnostics to stderr.
	Verbose bool

	// Strict makes acquisition failures exit non-zero (see --strict).
	Strict bool

	// Timeout bounds acquisition (see --timeout). 0 means no timeout.
	Timeout time.Duration
}

const (
	SourceClone = "clone"
	SourceAPI   = "api"
)

func New() *Config {
	return &Config{
		Source: Source{
			Mode: SourceClone,
		},
		Output: Output{
			ConsoleFormat: "text",
		},
	}
}

func (c *Config) Validate() error {
	c.Target.Path = strings.TrimSpace(c.Target.Path)
	if c.Target.Path == "" {
		return errors.New("a local path or repository URL is required")
	}

	c.Source.Mode = normalizeEnumValue(c.Source.Mode)
	if c.Source.Mode == "" {
		c.Source.Mode = SourceClone
	}
	if c.Source.Mode != SourceClone && c.Source.Mode != SourceAPI {
		return fmt.Errorf("unsupported --source: %s (must be one of: clone, api)", c.Source.Mode)
	}
	if c.Source.Mode == SourceAPI && IsURL(c.Target.Path) {
		if _, _, err := ParseGitHubRepo(NormalizeURL(c.Target.Path)); err != nil {
			return fmt.Errorf("--source api requires a github.com repository URL: %w", err)
		}
	}

	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		return errors.New("--console-format must be one of: text, json, ndjson")
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	if c.Scoring.FailUnder < 0 || c.Scoring.FailUnder > 100 {
		return errors.New("--fail-under must be between 0 and 100")
	}
	if c.Runtime.Timeout < 0 {
		return errors.New("--timeout must be >= 0")
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
