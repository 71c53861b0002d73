package fetcher

import (
	"context"
	"fmt"

	"readmefirst/internal/data"
	"readmefirst/internal/readme"
)

// Fingerprint reports which marker files exist at the top level of src.
// Only the fixed vocabulary in data.MarkerFiles is checked; nothing is
// searched recursively.
func Fingerprint(ctx context.Context, src data.Source) (data.MarkerSet, error) {
	found := data.NewMarkerSet()
	for _, m := range data.MarkerFiles {
		ok, err := src.Exists(ctx, string(m))
		if err != nil {
			return nil, fmt.Errorf("fingerprint %s: %w", m, err)
		}
		if ok {
			found[m] = struct{}{}
		}
	}
	return found, nil
}

// Load builds the snapshot a single analysis works from.
func Load(ctx context.Context, src data.Source) (*data.Snapshot, error) {
	if src == nil {
		return nil, fmt.Errorf("load snapshot: nil source")
	}

	path, text, err := readme.Read(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	markers, err := Fingerprint(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &data.Snapshot{
		HasReadme:  path != "",
		ReadmePath: path,
		ReadmeText: text,
		Markers:    markers,
		Source:     src,
	}, nil
}
