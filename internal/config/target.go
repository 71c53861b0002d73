package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// IsURL reports whether s parses with both a scheme and a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// NormalizeURL rewrites GitHub Pages URLs to the repository that serves them:
//
//	https://alice.github.io/myproj/  ->  https://github.com/alice/myproj
//
// A Pages URL without a path is a user site, served from the
// <user>.github.io repository. Every other URL is returned unmodified.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if !strings.HasSuffix(u.Host, "github.io") {
		return raw
	}

	user, _, _ := strings.Cut(u.Host, ".")
	repo, _, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
	if repo == "" {
		repo = u.Host
	}
	return fmt.Sprintf("https://github.com/%s/%s", user, repo)
}

// RepoName is the display name for a target: "user/repo" for URLs, the
// directory name for local paths.
func RepoName(target string) string {
	if IsURL(target) {
		u, err := url.Parse(target)
		if err == nil {
			if p := strings.Trim(u.Path, "/"); p != "" {
				return p
			}
		}
		return target
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return filepath.Base(target)
	}
	return filepath.Base(abs)
}

// ParseGitHubRepo extracts OWNER and REPO from a github.com repository URL
// such as https://github.com/owner/repo(.git).
func ParseGitHubRepo(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "github.com/") || strings.HasPrefix(raw, "www.github.com/") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%q", raw)
	}
	host := strings.ToLower(u.Hostname())
	if host == "www.github.com" {
		host = "github.com"
	}
	if host != "github.com" {
		return "", "", fmt.Errorf("%q is not a github.com URL", raw)
	}
	parts := strings.FieldsFunc(strings.Trim(u.Path, "/"), func(r rune) bool { return r == '/' })
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%q does not name OWNER/REPO", raw)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
