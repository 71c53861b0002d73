package data

// Section identifies one of the documentation categories a README is expected
// to cover.
type Section string

const (
	SectionInstallation  Section = "installation"
	SectionUsage         Section = "usage"
	SectionPrerequisites Section = "prerequisites"
	SectionExample       Section = "example"
)

// Sections lists every section identifier in a stable order.
var Sections = []Section{
	SectionInstallation,
	SectionUsage,
	SectionPrerequisites,
	SectionExample,
}

// MarkerFile is a well-known top-level filename whose presence implies a
// particular ecosystem or toolchain.
type MarkerFile string

const (
	// MarkerRequirementsTxt is a pip requirements file.
	MarkerRequirementsTxt MarkerFile = "requirements.txt"

	// MarkerPyprojectToml is a PEP 518/621 Python project file.
	MarkerPyprojectToml MarkerFile = "pyproject.toml"

	// MarkerPackageJSON is an npm package manifest.
	MarkerPackageJSON MarkerFile = "package.json"

	// MarkerEnvExample is an environment template meant to be copied to .env.
	MarkerEnvExample MarkerFile = ".env.example"

	// MarkerDockerCompose is a Docker Compose file.
	MarkerDockerCompose MarkerFile = "docker-compose.yml"
)

// MarkerFiles is the fingerprinting vocabulary, in check order.
var MarkerFiles = []MarkerFile{
	MarkerRequirementsTxt,
	MarkerPyprojectToml,
	MarkerPackageJSON,
	MarkerEnvExample,
	MarkerDockerCompose,
}

// SectionSet is a set of detected sections.
type SectionSet map[Section]struct{}

func NewSectionSet(sections ...Section) SectionSet {
	s := make(SectionSet, len(sections))
	for _, sec := range sections {
		s[sec] = struct{}{}
	}
	return s
}

func (s SectionSet) Has(sec Section) bool {
	_, ok := s[sec]
	return ok
}

// List returns the members of s in the order of Sections.
func (s SectionSet) List() []Section {
	out := make([]Section, 0, len(s))
	for _, sec := range Sections {
		if s.Has(sec) {
			out = append(out, sec)
		}
	}
	return out
}

// MarkerSet is a set of marker files present at a repository root.
type MarkerSet map[MarkerFile]struct{}

func NewMarkerSet(markers ...MarkerFile) MarkerSet {
	s := make(MarkerSet, len(markers))
	for _, m := range markers {
		s[m] = struct{}{}
	}
	return s
}

func (s MarkerSet) Has(m MarkerFile) bool {
	_, ok := s[m]
	return ok
}

// List returns the members of s in the order of MarkerFiles.
func (s MarkerSet) List() []MarkerFile {
	out := make([]MarkerFile, 0, len(s))
	for _, m := range MarkerFiles {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}
