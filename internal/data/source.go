package data

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Source is a read-only view of a repository's top-level entries.
//
// Names are always relative to the repository root (e.g. "package.json").
type Source interface {
	Exists(ctx context.Context, name string) (bool, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// DirSource serves a repository checked out on the local filesystem.
type DirSource struct {
	root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// Exists reports whether name is present at the root. Any stat failure counts
// as absent.
func (s *DirSource) Exists(_ context.Context, name string) (bool, error) {
	p, err := s.resolve(name)
	if err != nil {
		return false, nil
	}
	if _, err := os.Stat(p); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *DirSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	p, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// resolve joins name onto the root. Symlinks inside a cloned repository are
// untrusted, so they are resolved without leaving the root.
func (s *DirSource) resolve(name string) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("dir source: empty root")
	}
	p, err := securejoin.SecureJoin(s.root, name)
	if err != nil {
		return "", fmt.Errorf("dir source: resolve %q: %w", name, err)
	}
	return p, nil
}

// MapSource is a simple read-only in-memory Source.
type MapSource struct {
	files map[string][]byte
}

func NewMapSource(files map[string][]byte) *MapSource {
	// A nil map is treated as an empty repository.
	return &MapSource{files: files}
}

// NewMapSourceFromStrings is a convenience for tests and fixtures.
func NewMapSourceFromStrings(files map[string]string) *MapSource {
	m := make(map[string][]byte, len(files))
	for k, v := range files {
		m[k] = []byte(v)
	}
	return &MapSource{files: m}
}

func (s *MapSource) Exists(_ context.Context, name string) (bool, error) {
	if s == nil {
		return false, nil
	}
	_, ok := s.files[name]
	return ok, nil
}

func (s *MapSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	if s == nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	b, ok := s.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
