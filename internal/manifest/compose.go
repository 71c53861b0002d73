package manifest

import (
	"context"
	"sort"

	"gopkg.in/yaml.v3"

	"readmefirst/internal/data"
)

// Compose is the subset of docker-compose.yml the analysis reads.
type Compose struct {
	Services map[string]yaml.Node `yaml:"services"`
}

func ParseCompose(b []byte) (*Compose, error) {
	var c Compose
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, &ParseError{File: string(data.MarkerDockerCompose), Err: err}
	}
	return &c, nil
}

func ReadCompose(ctx context.Context, src data.Source) (*Compose, error) {
	b, err := read(ctx, src, data.MarkerDockerCompose)
	if err != nil {
		return nil, err
	}
	return ParseCompose(b)
}

// ServiceNames returns the declared services, sorted.
func (c *Compose) ServiceNames() []string {
	if c == nil || len(c.Services) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
