package data

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDirSource_ExistsAndReadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	src := NewDirSource(dir)
	ctx := context.Background()

	tests := []struct {
		name string
		want bool
	}{
		{name: "package.json", want: true},
		{name: "docs", want: true},
		{name: "requirements.txt", want: false},
	}
	for _, tt := range tests {
		got, err := src.Exists(ctx, tt.name)
		if err != nil {
			t.Fatalf("Exists(%q) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	b, err := src.ReadFile(ctx, "package.json")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != `{"name":"x"}` {
		t.Errorf("unexpected content: %s", b)
	}
}

func TestDirSource_SymlinkStaysInsideRoot(t *testing.T) {
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret"), []byte("nope"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "secret"), filepath.Join(dir, "package.json")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	src := NewDirSource(dir)
	if _, err := src.ReadFile(context.Background(), "package.json"); err == nil {
		t.Fatalf("expected symlink escaping the root to be rejected")
	}
}

func TestMapSource(t *testing.T) {
	src := NewMapSourceFromStrings(map[string]string{"README.md": "hello"})
	ctx := context.Background()

	ok, _ := src.Exists(ctx, "README.md")
	if !ok {
		t.Fatalf("expected README.md to exist")
	}
	ok, _ = src.Exists(ctx, "readme.md")
	if ok {
		t.Fatalf("expected lookups to be case-sensitive")
	}

	_, err := src.ReadFile(ctx, "missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}

	var nilSrc *MapSource
	if ok, err := nilSrc.Exists(ctx, "x"); ok || err != nil {
		t.Fatalf("nil MapSource should report absent, got %v %v", ok, err)
	}
}

func TestTrackingSource_RecordsAccessedNames(t *testing.T) {
	inner := NewMapSourceFromStrings(map[string]string{"a": "1"})
	ts := NewTrackingSource(inner)
	ctx := context.Background()

	_, _ = ts.Exists(ctx, "b")
	_, _ = ts.ReadFile(ctx, "a")
	_, _ = ts.Exists(ctx, "a")

	want := []string{"a", "b"}
	if got := ts.AccessedNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AccessedNames() = %v, want %v", got, want)
	}
}

func TestSetsListInVocabularyOrder(t *testing.T) {
	ms := NewMarkerSet(MarkerDockerCompose, MarkerRequirementsTxt, MarkerEnvExample)
	wantMarkers := []MarkerFile{MarkerRequirementsTxt, MarkerEnvExample, MarkerDockerCompose}
	if got := ms.List(); !reflect.DeepEqual(got, wantMarkers) {
		t.Fatalf("MarkerSet.List() = %v, want %v", got, wantMarkers)
	}

	ss := NewSectionSet(SectionExample, SectionInstallation)
	wantSections := []Section{SectionInstallation, SectionExample}
	if got := ss.List(); !reflect.DeepEqual(got, wantSections) {
		t.Fatalf("SectionSet.List() = %v, want %v", got, wantSections)
	}
}
