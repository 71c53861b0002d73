package manifest

import (
	"context"
	"errors"
	"testing"

	"readmefirst/internal/data"

	"github.com/google/go-cmp/cmp"
)

func TestParsePackageJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantDev   bool
		wantStart bool
		wantNode  string
	}{
		{name: "dev and start", body: `{"scripts":{"dev":"vite","start":"node ."}}`, wantDev: true, wantStart: true},
		{name: "start only", body: `{"scripts":{"start":"node index.js"}}`, wantStart: true},
		{name: "no scripts", body: `{"name":"x"}`},
		{name: "scripts not an object", body: `{"scripts":["dev"]}`},
		{name: "engines", body: `{"engines":{"node":">=18"}}`, wantNode: ">=18"},
		{name: "engine not a string", body: `{"engines":{"node":18}}`},
		{name: "malformed", body: `{"scripts":`, wantErr: true},
		{name: "top-level array", body: `["dev"]`, wantErr: true},
		{name: "null document", body: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePackageJSON([]byte(tt.body))
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if pe.File != "package.json" {
					t.Fatalf("ParseError.File = %q", pe.File)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.HasScript("dev"); got != tt.wantDev {
				t.Errorf("HasScript(dev) = %v, want %v", got, tt.wantDev)
			}
			if got := p.HasScript("start"); got != tt.wantStart {
				t.Errorf("HasScript(start) = %v, want %v", got, tt.wantStart)
			}
			if got := p.Engine("node"); got != tt.wantNode {
				t.Errorf("Engine(node) = %q, want %q", got, tt.wantNode)
			}
		})
	}
}

func TestPyproject_PythonRequirement(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "pep 621", body: "[project]\nname = \"demo\"\nrequires-python = \">=3.9\"\n", want: ">=3.9"},
		{name: "poetry string", body: "[tool.poetry.dependencies]\npython = \"^3.11\"\n", want: "^3.11"},
		{name: "poetry table", body: "[tool.poetry.dependencies]\npython = { version = \"^3.10\" }\n", want: "^3.10"},
		{name: "neither", body: "[build-system]\nrequires = [\"setuptools\"]\n", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePyproject([]byte(tt.body))
			if err != nil {
				t.Fatalf("ParsePyproject error: %v", err)
			}
			if got := p.PythonRequirement(); got != tt.want {
				t.Fatalf("PythonRequirement() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ParsePyproject([]byte("[project\n")); err == nil {
		t.Fatalf("expected error for malformed TOML")
	}
}

func TestCompose_ServiceNames(t *testing.T) {
	c, err := ParseCompose([]byte("services:\n  web:\n    image: nginx\n  db:\n    image: postgres\n"))
	if err != nil {
		t.Fatalf("ParseCompose error: %v", err)
	}
	if diff := cmp.Diff([]string{"db", "web"}, c.ServiceNames()); diff != "" {
		t.Fatalf("ServiceNames mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseCompose([]byte("services: [web\n")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestParseEnvExample(t *testing.T) {
	keys, err := ParseEnvExample([]byte("# comment\nAPI_KEY=\nDATABASE_URL=postgres://localhost/db\nexport DEBUG=true\n"))
	if err != nil {
		t.Fatalf("ParseEnvExample error: %v", err)
	}
	if diff := cmp.Diff([]string{"API_KEY", "DATABASE_URL", "DEBUG"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestInspect(t *testing.T) {
	src := data.NewMapSourceFromStrings(map[string]string{
		"pyproject.toml":     "[project]\nrequires-python = \">=3.9\"\n",
		"package.json":       `{"engines":{"node":">=20"}}`,
		"docker-compose.yml": "services:\n  app: {}\n",
		".env.example":       "TOKEN=\n",
	})
	markers := data.NewMarkerSet(data.MarkerPyprojectToml, data.MarkerPackageJSON, data.MarkerDockerCompose, data.MarkerEnvExample)

	got, err := Inspect(context.Background(), src, markers)
	if err != nil {
		t.Fatalf("Inspect error: %v", err)
	}
	want := Details{
		PythonRequires:  ">=3.9",
		NodeEngine:      ">=20",
		ComposeServices: []string{"app"},
		EnvKeys:         []string{"TOKEN"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestInspect_PartialOnParseFailure(t *testing.T) {
	src := data.NewMapSourceFromStrings(map[string]string{
		"package.json": `{broken`,
		".env.example": "A=1\n",
	})
	markers := data.NewMarkerSet(data.MarkerPackageJSON, data.MarkerEnvExample)

	got, err := Inspect(context.Background(), src, markers)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if diff := cmp.Diff([]string{"A"}, got.EnvKeys); diff != "" {
		t.Fatalf("expected env keys to survive: %s", diff)
	}
	if got.NodeEngine != "" {
		t.Fatalf("expected no node engine")
	}
}

func TestInspect_IgnoresAbsentMarkers(t *testing.T) {
	src := data.NewMapSourceFromStrings(map[string]string{"package.json": `{broken`})
	got, err := Inspect(context.Background(), src, data.NewMarkerSet())
	if err != nil || !got.Empty() {
		t.Fatalf("expected nothing to be read, got %+v %v", got, err)
	}
}
