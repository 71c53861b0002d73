package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-github/v81/github"

	"readmefirst/internal/acquire"
)

func TestPresentFailure(t *testing.T) {
	apiErr := &github.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"},
		Message:  "API rate limit exceeded",
	}
	cloneErr := &acquire.CloneError{URL: "https://github.com/a/b", Stderr: "fatal: repository not found", Err: errors.New("exit status 128")}

	tests := []struct {
		name    string
		err     error
		verbose bool
		want    string
		notWant string
	}{
		{
			name: "path not found",
			err:  fmt.Errorf("acquire: %w", &acquire.PathNotFoundError{Path: "nope"}),
			want: "Path does not exist: nope",
		},
		{
			name:    "clone quiet",
			err:     cloneErr,
			want:    "Failed to clone repository: https://github.com/a/b",
			notWant: "fatal:",
		},
		{
			name:    "clone verbose includes stderr",
			err:     cloneErr,
			verbose: true,
			want:    "fatal: repository not found",
		},
		{
			name: "clone timeout",
			err:  &acquire.CloneError{URL: "https://x/y", Err: context.DeadlineExceeded},
			want: "Failed to clone repository: https://x/y (timed out)",
		},
		{
			name: "github api error",
			err:  &fetchError{URL: "https://github.com/a/b", Err: fmt.Errorf("get repository a/b: %w", apiErr)},
			want: "Failed to fetch repository: https://github.com/a/b (403 Forbidden: API rate limit exceeded)",
		},
		{
			name: "repository not found",
			err:  &fetchError{URL: "https://github.com/a/b", Err: errors.New("repository a/b not found or not accessible")},
			want: "Failed to fetch repository: https://github.com/a/b (repository a/b not found or not accessible)",
		},
		{
			name:    "scrubbed request url",
			err:     errors.New("GET https://api.github.com/repos/a/b/contents/: 500 boom"),
			want:    "An error occurred: 500 boom",
			notWant: "api.github.com",
		},
		{
			name: "generic",
			err:  errors.New("disk on fire"),
			want: "An error occurred: disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := presentFailure(tt.err, tt.verbose)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("presentFailure = %q, want it to contain %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Fatalf("presentFailure = %q, must not contain %q", got, tt.notWant)
			}
		})
	}
}

func TestScrubGitHubRequestFromErrorString(t *testing.T) {
	s := "GET https://api.github.com/repos/acme/foo/contents/README.md: 403 some message []"
	if got, want := scrubGitHubRequestFromErrorString(s), "403 some message []"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := scrubGitHubRequestFromErrorString("plain error"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
