// Package readme locates a repository README and decides which documentation
// sections it covers.
package readme

import (
	"context"
	"fmt"
	"strings"

	"readmefirst/internal/data"
)

// Candidates are the README filenames looked up at the repository root, in
// priority order.
var Candidates = []string{"README.md", "README.rst", "README.txt"}

// Find returns the first README candidate present in src, or "" if none is.
func Find(ctx context.Context, src data.Source) (string, error) {
	for _, name := range Candidates {
		ok, err := src.Exists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("probe %s: %w", name, err)
		}
		if ok {
			return name, nil
		}
	}
	return "", nil
}

// Normalize decodes README bytes permissively and lowercases them.
// Invalid UTF-8 sequences are dropped rather than reported.
func Normalize(b []byte) string {
	return strings.ToLower(strings.ToValidUTF8(string(b), ""))
}

// Read finds and reads the README from src. The returned path is empty when
// the repository has no README.
func Read(ctx context.Context, src data.Source) (path string, text string, err error) {
	path, err = Find(ctx, src)
	if err != nil || path == "" {
		return "", "", err
	}
	b, err := src.ReadFile(ctx, path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return path, Normalize(b), nil
}
