// Package acquire turns a target into a local directory the analysis can
// read: an existing path, or a shallow clone in a temporary directory.
package acquire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// TempDirPrefix names clone directories under os.TempDir.
const TempDirPrefix = "readme_first_"

// PathNotFoundError reports a local target that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return "Path does not exist: " + e.Path
}

// CloneError reports a failed clone. Stderr holds git's output, if any.
type CloneError struct {
	URL    string
	Stderr string
	Err    error
}

func (e *CloneError) Error() string {
	msg := "Failed to clone repository: " + e.URL
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Local checks that path exists.
func Local(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PathNotFoundError{Path: path}
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}

// Runner executes a command and returns its stderr.
type Runner func(ctx context.Context, name string, args ...string) (stderr []byte, err error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

type options struct {
	runner  Runner
	verbose io.Writer
	tempDir string
}

type Option func(*options)

// WithRunner replaces the process runner (tests).
func WithRunner(r Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithVerbose logs the clone command line to w.
func WithVerbose(w io.Writer) Option {
	return func(o *options) {
		o.verbose = w
	}
}

// withTempDir sets the parent of the clone directory. Empty means os.TempDir.
func withTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// Checkout is a scoped clone. Callers must Close it once the report is
// rendered.
type Checkout struct {
	Dir string
}

// Close removes the clone. Removal is best-effort and never reported.
func (c *Checkout) Close() {
	if c == nil || c.Dir == "" {
		return
	}
	_ = os.RemoveAll(c.Dir)
}

// Clone makes a depth-1 clone of url in a fresh temporary directory. On
// failure the directory is already removed.
func Clone(ctx context.Context, url string, opts ...Option) (*Checkout, error) {
	o := &options{runner: execRunner}
	for _, apply := range opts {
		if apply != nil {
			apply(o)
		}
	}

	dir, err := os.MkdirTemp(o.tempDir, TempDirPrefix)
	if err != nil {
		return nil, &CloneError{URL: url, Err: fmt.Errorf("create temp dir: %w", err)}
	}
	co := &Checkout{Dir: dir}

	args := []string{"clone", "--depth", "1", url, dir}
	if o.verbose != nil {
		_, _ = fmt.Fprintf(o.verbose, "[verbose] exec: %s\n", shellquote.Join(append([]string{"git"}, args...)...))
	}

	stderr, err := o.runner(ctx, "git", args...)
	if err != nil {
		co.Close()
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &CloneError{URL: url, Stderr: strings.TrimSpace(string(stderr)), Err: err}
	}
	return co, nil
}
