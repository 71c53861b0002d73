package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v81/github"

	"readmefirst/internal/acquire"
)

// presentFailure turns an analysis error into the one-line message shown to
// the user. Verbose mode adds the underlying detail (git stderr, full API
// error).
func presentFailure(err error, verbose bool) string {
	if err == nil {
		return "An error occurred: unknown error"
	}

	var pnf *acquire.PathNotFoundError
	if errors.As(err, &pnf) {
		return pnf.Error()
	}

	var ce *acquire.CloneError
	if errors.As(err, &ce) {
		msg := fmt.Sprintf("Failed to clone repository: %s", ce.URL)
		if errors.Is(ce.Err, context.DeadlineExceeded) {
			msg += " (timed out)"
		}
		if verbose && ce.Stderr != "" {
			msg += "\n" + ce.Stderr
		}
		return msg
	}

	var fe *fetchError
	if errors.As(err, &fe) {
		return fmt.Sprintf("Failed to fetch repository: %s (%s)", fe.URL, apiDetail(fe.Err, verbose))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "An error occurred: timed out"
	}

	s := strings.TrimSpace(err.Error())
	if !verbose {
		if scrubbed := scrubGitHubRequestFromErrorString(s); scrubbed != "" {
			s = scrubbed
		}
	}
	return "An error occurred: " + s
}

// fetchError is an acquisition failure in --source api mode.
type fetchError struct {
	URL string
	Err error
}

func (e *fetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *fetchError) Unwrap() error {
	return e.Err
}

// apiDetail describes a GitHub API failure without the request URL unless
// verbose is set.
func apiDetail(err error, verbose bool) string {
	if verbose {
		return err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}
	var er *github.ErrorResponse
	if errors.As(err, &er) {
		msg := strings.TrimSpace(er.Message)
		if msg == "" {
			msg = "request failed"
		}
		if er.Response != nil {
			code := er.Response.StatusCode
			return fmt.Sprintf("%d %s: %s", code, http.StatusText(code), msg)
		}
		return msg
	}
	s := strings.TrimSpace(err.Error())
	if scrubbed := scrubGitHubRequestFromErrorString(s); scrubbed != "" {
		return scrubbed
	}
	return s
}

// scrubGitHubRequestFromErrorString drops the leading "GET https://...: "
// part of a go-github error string.
func scrubGitHubRequestFromErrorString(s string) string {
	for _, m := range []string{"GET ", "POST ", "PUT ", "PATCH ", "DELETE "} {
		idx := strings.Index(s, m+"https://")
		if idx < 0 {
			continue
		}
		rest := s[idx+len(m):]
		if j := strings.Index(rest, ": "); j >= 0 {
			return strings.TrimSpace(s[:idx] + rest[j+2:])
		}
	}
	return ""
}
