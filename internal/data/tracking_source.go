package data

import (
	"context"
	"sort"
	"sync"
)

// TrackingSource wraps another Source and records every name that callers
// probe or read.
//
// The engine uses it to report, in verbose mode, exactly which files an
// analysis looked at.
type TrackingSource struct {
	inner    Source
	mu       sync.Mutex
	accessed map[string]struct{}
}

func NewTrackingSource(inner Source) *TrackingSource {
	return &TrackingSource{
		inner:    inner,
		accessed: make(map[string]struct{}),
	}
}

func (s *TrackingSource) Exists(ctx context.Context, name string) (bool, error) {
	if s == nil {
		return false, nil
	}
	s.record(name)
	if s.inner == nil {
		return false, nil
	}
	return s.inner.Exists(ctx, name)
}

func (s *TrackingSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if s == nil {
		return nil, errNilSource
	}
	s.record(name)
	if s.inner == nil {
		return nil, errNilSource
	}
	return s.inner.ReadFile(ctx, name)
}

func (s *TrackingSource) record(name string) {
	s.mu.Lock()
	s.accessed[name] = struct{}{}
	s.mu.Unlock()
}

// AccessedNames returns every probed name, sorted.
func (s *TrackingSource) AccessedNames() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.accessed))
	for k := range s.accessed {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
