// Package quickstart infers the shell commands a newcomer needs to install,
// configure and run a repository.
//
// Inference runs three stages in order (install, env, run). Each stage walks
// its rule table and stops at the first rule whose trigger file exists; that
// rule yields at most one command.
package quickstart

import (
	"context"

	shellquote "github.com/kballard/go-shellquote"

	"readmefirst/internal/data"
	"readmefirst/internal/manifest"
)

// Stage names a step of the plan.
type Stage string

const (
	StageInstall Stage = "install"
	StageEnv     Stage = "env"
	StageRun     Stage = "run"
)

// Outcome is the result of one stage: a command, or none.
type Outcome struct {
	Stage Stage
	// Trigger is the file whose presence selected the rule; empty if no rule matched.
	Trigger string
	Command string
	// Err records a swallowed manifest failure. It never stops inference.
	Err error
}

// Found reports whether the stage produced a command.
func (o Outcome) Found() bool {
	return o.Command != ""
}

// Rule maps a trigger file to a command. Resolve, when set, decides the
// command from the file's contents instead of Argv.
type Rule struct {
	Trigger string
	Argv    []string
	Resolve func(ctx context.Context, src data.Source) (argv []string, err error)
}

// Command renders argv as a single shell line.
func Command(argv ...string) string {
	return shellquote.Join(argv...)
}

var installRules = []Rule{
	{Trigger: "requirements.txt", Argv: []string{"pip", "install", "-r", "requirements.txt"}},
	{Trigger: "pyproject.toml", Argv: []string{"pip", "install", "."}},
	{Trigger: "package.json", Argv: []string{"npm", "install"}},
	{Trigger: "poetry.lock", Argv: []string{"poetry", "install"}},
}

var envRules = []Rule{
	{Trigger: ".env.example", Argv: []string{"cp", ".env.example", ".env"}},
}

var runRules = []Rule{
	{Trigger: "docker-compose.yml", Argv: []string{"docker", "compose", "up"}},
	{Trigger: "package.json", Resolve: npmRunCommand},
	{Trigger: "main.py", Argv: []string{"python", "main.py"}},
	{Trigger: "app.py", Argv: []string{"python", "app.py"}},
}

// Stages is the full rule set in plan order.
var Stages = []struct {
	Stage Stage
	Rules []Rule
}{
	{StageInstall, installRules},
	{StageEnv, envRules},
	{StageRun, runRules},
}

// npmRunCommand prefers a "dev" script over "start".
func npmRunCommand(ctx context.Context, src data.Source) ([]string, error) {
	pkg, err := manifest.ReadPackageJSON(ctx, src)
	if err != nil {
		return nil, err
	}
	switch {
	case pkg.HasScript("dev"):
		return []string{"npm", "run", "dev"}, nil
	case pkg.HasScript("start"):
		return []string{"npm", "start"}, nil
	default:
		return nil, nil
	}
}

// Evaluate runs one stage's rules against src. The first rule whose trigger
// exists decides the outcome even when it yields no command.
func Evaluate(ctx context.Context, src data.Source, stage Stage, stageRules []Rule) Outcome {
	out := Outcome{Stage: stage}
	for _, r := range stageRules {
		ok, err := src.Exists(ctx, r.Trigger)
		if err != nil || !ok {
			continue
		}
		out.Trigger = r.Trigger
		argv := r.Argv
		if r.Resolve != nil {
			argv, err = r.Resolve(ctx, src)
			if err != nil {
				out.Err = err
				return out
			}
		}
		if len(argv) > 0 {
			out.Command = Command(argv...)
		}
		return out
	}
	return out
}

// Plan evaluates every stage in order.
func Plan(ctx context.Context, src data.Source) []Outcome {
	outcomes := make([]Outcome, 0, len(Stages))
	for _, st := range Stages {
		outcomes = append(outcomes, Evaluate(ctx, src, st.Stage, st.Rules))
	}
	return outcomes
}

// Commands extracts the produced commands, in stage order.
func Commands(outcomes []Outcome) []string {
	cmds := []string{}
	for _, o := range outcomes {
		if o.Found() {
			cmds = append(cmds, o.Command)
		}
	}
	return cmds
}

// Generate returns the quick-start commands for src. It never fails.
func Generate(ctx context.Context, src data.Source) []string {
	return Commands(Plan(ctx, src))
}
