package manifest

import (
	"context"

	"github.com/BurntSushi/toml"

	"readmefirst/internal/data"
)

// Pyproject is the subset of pyproject.toml the analysis reads.
type Pyproject struct {
	Project struct {
		Name           string `toml:"name"`
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string         `toml:"name"`
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func ParsePyproject(b []byte) (*Pyproject, error) {
	var p Pyproject
	if _, err := toml.Decode(string(b), &p); err != nil {
		return nil, &ParseError{File: string(data.MarkerPyprojectToml), Err: err}
	}
	return &p, nil
}

func ReadPyproject(ctx context.Context, src data.Source) (*Pyproject, error) {
	b, err := read(ctx, src, data.MarkerPyprojectToml)
	if err != nil {
		return nil, err
	}
	return ParsePyproject(b)
}

// PythonRequirement returns the supported Python range: PEP 621
// requires-python first, then Poetry's python dependency.
func (p *Pyproject) PythonRequirement() string {
	if p == nil {
		return ""
	}
	if p.Project.RequiresPython != "" {
		return p.Project.RequiresPython
	}
	switch v := p.Tool.Poetry.Dependencies["python"].(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			return s
		}
	}
	return ""
}
