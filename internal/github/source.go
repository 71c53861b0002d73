package github

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/google/go-github/v81/github"
)

// RepoSource serves the top level of a GitHub repository through the REST
// contents API, without cloning it.
//
// The root listing is fetched once and answers every Exists call. Reads are
// not cached here; wrap a RepoSource in a fetcher.Fetcher for that.
type RepoSource struct {
	client *Client
	owner  string
	repo   string
	ref    string

	mu      sync.Mutex
	entries map[string]string // name -> type ("file", "dir", "symlink", ...)
}

func NewRepoSource(client *Client, owner, repo string) *RepoSource {
	return &RepoSource{client: client, owner: owner, repo: repo}
}

// Ref returns the ref contents are read at. It is empty until Resolve
// succeeds, in which case the API's default branch is used.
func (s *RepoSource) Ref() string {
	return s.ref
}

// Resolve checks that the repository is reachable and pins reads to its
// default branch.
func (s *RepoSource) Resolve(ctx context.Context) (*github.Repository, error) {
	if s == nil || s.client == nil || s.client.Client == nil {
		return nil, errors.New("github source: nil client")
	}
	repo, resp, err := s.client.Client.Repositories.Get(ctx, s.owner, s.repo)
	if err != nil {
		if isNotFound(resp) {
			return nil, fmt.Errorf("repository %s/%s not found or not accessible", s.owner, s.repo)
		}
		return nil, fmt.Errorf("get repository %s/%s: %w", s.owner, s.repo, err)
	}
	s.ref = repo.GetDefaultBranch()
	return repo, nil
}

func (s *RepoSource) Exists(ctx context.Context, name string) (bool, error) {
	entries, err := s.listing(ctx)
	if err != nil {
		return false, err
	}
	_, ok := entries[name]
	return ok, nil
}

func (s *RepoSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if s == nil || s.client == nil || s.client.Client == nil {
		return nil, errors.New("github source: nil client")
	}
	file, _, resp, err := s.client.Client.Repositories.GetContents(ctx, s.owner, s.repo, name, s.contentOptions())
	if err != nil {
		if isNotFound(resp) {
			return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
		}
		return nil, fmt.Errorf("get contents %s: %w", name, err)
	}
	if file == nil {
		return nil, fmt.Errorf("get contents %s: is a directory", name)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode contents %s: %w", name, err)
	}
	return []byte(content), nil
}

func (s *RepoSource) listing(ctx context.Context) (map[string]string, error) {
	if s == nil || s.client == nil || s.client.Client == nil {
		return nil, errors.New("github source: nil client")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries != nil {
		return s.entries, nil
	}

	_, dir, resp, err := s.client.Client.Repositories.GetContents(ctx, s.owner, s.repo, "", s.contentOptions())
	if err != nil {
		if isNotFound(resp) {
			// Empty repositories have no contents at all.
			s.entries = map[string]string{}
			return s.entries, nil
		}
		return nil, fmt.Errorf("list repository root: %w", err)
	}
	entries := make(map[string]string, len(dir))
	for _, e := range dir {
		entries[e.GetName()] = e.GetType()
	}
	s.entries = entries
	return entries, nil
}

func (s *RepoSource) contentOptions() *github.RepositoryContentGetOptions {
	if s.ref == "" {
		return nil
	}
	return &github.RepositoryContentGetOptions{Ref: s.ref}
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}
