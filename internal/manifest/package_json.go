package manifest

import (
	"context"
	"encoding/json"
	"fmt"

	"readmefirst/internal/data"
)

// PackageJSON holds the parts of an npm manifest the analysis cares about.
type PackageJSON struct {
	scripts map[string]json.RawMessage
	engines map[string]json.RawMessage
}

// ParsePackageJSON decodes an npm manifest. The document must be a JSON
// object; a "scripts" or "engines" value that is not an object is treated as
// absent. A membership test on the raw value would accept {"scripts":["dev"]}
// as declaring a dev script; here it declares none.
func ParsePackageJSON(b []byte) (*PackageJSON, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return nil, &ParseError{File: string(data.MarkerPackageJSON), Err: err}
	}
	if top == nil {
		return nil, &ParseError{File: string(data.MarkerPackageJSON), Err: fmt.Errorf("document is null")}
	}
	return &PackageJSON{
		scripts: objectField(top, "scripts"),
		engines: objectField(top, "engines"),
	}, nil
}

// ReadPackageJSON reads and parses package.json from src.
func ReadPackageJSON(ctx context.Context, src data.Source) (*PackageJSON, error) {
	b, err := read(ctx, src, data.MarkerPackageJSON)
	if err != nil {
		return nil, err
	}
	return ParsePackageJSON(b)
}

func objectField(top map[string]json.RawMessage, key string) map[string]json.RawMessage {
	raw, ok := top[key]
	if !ok {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

// HasScript reports whether scripts defines name.
func (p *PackageJSON) HasScript(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.scripts[name]
	return ok
}

// Engine returns the version range declared under engines, or "".
func (p *PackageJSON) Engine(name string) string {
	if p == nil {
		return ""
	}
	raw, ok := p.engines[name]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}
