package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"readmefirst/internal/data"
)

// DefaultPrefetchLimit caps concurrent requests issued by Prefetch.
const DefaultPrefetchLimit = 4

// Fetcher is a data.Source that memoises another Source. Identical concurrent
// requests are collapsed into one, and successful answers are cached for the
// lifetime of the Fetcher (one analysis).
type Fetcher struct {
	src   data.Source
	group singleflight.Group
	cache *entryCache
}

func NewFetcher(src data.Source) *Fetcher {
	return &Fetcher{
		src:   src,
		cache: newEntryCache(),
	}
}

func (f *Fetcher) Exists(ctx context.Context, name string) (bool, error) {
	if err := f.check(ctx, name); err != nil {
		return false, err
	}
	if present, ok := f.cache.probe(name); ok {
		return present, nil
	}
	v, err, _ := f.group.Do("exists:"+name, func() (any, error) {
		present, err := f.src.Exists(ctx, name)
		if err == nil {
			f.cache.storeProbe(name, present)
		}
		return present, err
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (f *Fetcher) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := f.check(ctx, name); err != nil {
		return nil, err
	}
	if b, ok := f.cache.file(name); ok {
		return b, nil
	}
	v, err, _ := f.group.Do("read:"+name, func() (any, error) {
		b, err := f.src.ReadFile(ctx, name)
		if err == nil {
			f.cache.storeFile(name, b)
		}
		return b, err
	})
	if err != nil {
		return nil, err
	}
	// Shared callers each get their own copy.
	return cloneBytes(v.([]byte)), nil
}

func (f *Fetcher) check(ctx context.Context, name string) error {
	if ctx == nil {
		return fmt.Errorf("fetch: nil context")
	}
	if f == nil || f.src == nil {
		return fmt.Errorf("fetch: nil source (use NewFetcher)")
	}
	if f.cache == nil {
		return fmt.Errorf("fetch: nil cache (use NewFetcher)")
	}
	if name == "" {
		return fmt.Errorf("fetch: empty name")
	}
	return nil
}

// Prefetch warms the cache for names concurrently: each name is probed, and
// read when present. A file that vanishes between probe and read is not an
// error. Any other failure cancels the remaining work.
func (f *Fetcher) Prefetch(ctx context.Context, limit int, names ...string) error {
	if limit <= 0 {
		limit = DefaultPrefetchLimit
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, name := range names {
		g.Go(func() error {
			ok, err := f.Exists(gctx, name)
			if err != nil || !ok {
				return err
			}
			if _, err := f.ReadFile(gctx, name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("prefetch %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
