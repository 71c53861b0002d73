package manifest

import (
	"bytes"
	"context"
	"sort"

	"github.com/joho/godotenv"

	"readmefirst/internal/data"
)

// ParseEnvExample returns the variable names declared in an env template,
// sorted.
func ParseEnvExample(b []byte) ([]string, error) {
	vars, err := godotenv.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, &ParseError{File: string(data.MarkerEnvExample), Err: err}
	}
	if len(vars) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func ReadEnvExample(ctx context.Context, src data.Source) ([]string, error) {
	b, err := read(ctx, src, data.MarkerEnvExample)
	if err != nil {
		return nil, err
	}
	return ParseEnvExample(b)
}
