package data

import "errors"

var errNilSource = errors.New("source is nil")

// Snapshot is an immutable view of a repository at analysis time: whether a
// README exists, its normalised text, and which marker files are present.
//
// Source is the repository root handle; only quick-start inference reads
// through it again.
type Snapshot struct {
	HasReadme  bool
	ReadmePath string
	// ReadmeText is lowercased; empty when HasReadme is false.
	ReadmeText string
	Markers    MarkerSet
	Source     Source
}
