// Package manifest reads the structured files found at a repository root:
// package.json, pyproject.toml, docker-compose.yml and .env.example.
//
// Nothing here is allowed to fail an analysis. Callers get a *ParseError they
// may log and otherwise ignore.
package manifest

import (
	"context"
	"errors"
	"fmt"

	"readmefirst/internal/data"
)

// ParseError reports a manifest that could not be read or decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func read(ctx context.Context, src data.Source, name data.MarkerFile) ([]byte, error) {
	b, err := src.ReadFile(ctx, string(name))
	if err != nil {
		return nil, &ParseError{File: string(name), Err: err}
	}
	return b, nil
}

// Details is informational configuration detected in manifests. It never
// affects the score.
type Details struct {
	PythonRequires  string   `json:"python_requires,omitempty"`
	NodeEngine      string   `json:"node_engine,omitempty"`
	ComposeServices []string `json:"compose_services,omitempty"`
	EnvKeys         []string `json:"env_keys,omitempty"`
}

func (d Details) Empty() bool {
	return d.PythonRequires == "" && d.NodeEngine == "" && len(d.ComposeServices) == 0 && len(d.EnvKeys) == 0
}

// Inspect reads every manifest among markers. Whatever parses is returned;
// failures are joined into the error.
func Inspect(ctx context.Context, src data.Source, markers data.MarkerSet) (Details, error) {
	var d Details
	var errs []error

	if markers.Has(data.MarkerPyprojectToml) {
		p, err := ReadPyproject(ctx, src)
		if err != nil {
			errs = append(errs, err)
		} else {
			d.PythonRequires = p.PythonRequirement()
		}
	}
	if markers.Has(data.MarkerPackageJSON) {
		p, err := ReadPackageJSON(ctx, src)
		if err != nil {
			errs = append(errs, err)
		} else {
			d.NodeEngine = p.Engine("node")
		}
	}
	if markers.Has(data.MarkerDockerCompose) {
		c, err := ReadCompose(ctx, src)
		if err != nil {
			errs = append(errs, err)
		} else {
			d.ComposeServices = c.ServiceNames()
		}
	}
	if markers.Has(data.MarkerEnvExample) {
		keys, err := ReadEnvExample(ctx, src)
		if err != nil {
			errs = append(errs, err)
		} else {
			d.EnvKeys = keys
		}
	}

	return d, errors.Join(errs...)
}
