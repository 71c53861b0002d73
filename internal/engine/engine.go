package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"readmefirst/internal/acquire"
	"readmefirst/internal/config"
	"readmefirst/internal/data"
	"readmefirst/internal/fetcher"
	gh "readmefirst/internal/github"
	"readmefirst/internal/manifest"
	"readmefirst/internal/output"
	"readmefirst/internal/quickstart"
	"readmefirst/internal/readme"
	"readmefirst/internal/rules"
)

// Exit code contract:
//
//	0 = analysis attempted (default, even when it failed)
//	1 = score below --fail-under
//	2 = acquisition or path failure with --strict
//	3 = invalid flags or configuration (analysis did not run)
const (
	ExitOK             = 0
	ExitBelowThreshold = 1
	ExitFailed         = 2
	ExitConfig         = 3
)

func exitCodeForRun(cfg *config.Config, failed bool, score int) int {
	if failed {
		if cfg.Runtime.Strict {
			return ExitFailed
		}
		return ExitOK
	}
	if cfg.Scoring.FailUnder > 0 && score < cfg.Scoring.FailUnder {
		return ExitBelowThreshold
	}
	return ExitOK
}

// prefetchNames are the files an API-backed analysis may read: README
// candidates and every manifest.
func prefetchNames() []string {
	names := append([]string{}, readme.Candidates...)
	for _, m := range data.MarkerFiles {
		names = append(names, string(m))
	}
	return names
}

type cloneFunc func(ctx context.Context, url string, opts ...acquire.Option) (*acquire.Checkout, error)

type clientFunc func(ctx context.Context, verbose bool, w io.Writer) (*gh.Client, error)

type Engine struct {
	stdout io.Writer
	stderr io.Writer

	// clone and newClient are test seams for remote acquisition.
	clone     cloneFunc
	newClient clientFunc
}

func NewEngine() *Engine {
	return &Engine{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clone:     acquire.Clone,
		newClient: newGitHubClient,
	}
}

// WithOutput redirects console output and diagnostics.
func (e *Engine) WithOutput(stdout, stderr io.Writer) *Engine {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

func newGitHubClient(ctx context.Context, verbose bool, w io.Writer) (*gh.Client, error) {
	token, source, err := gh.ResolveAuthToken(ctx, "")
	if err != nil {
		return nil, err
	}
	if verbose {
		if source == "" {
			fmt.Fprintln(w, "[verbose] github token: none (anonymous access)")
		} else {
			fmt.Fprintf(w, "[verbose] github token source: %s\n", source)
		}
	}
	return gh.NewClient(ctx, token, gh.WithVerbose(verbose, w))
}

func (e *Engine) verbosef(cfg *config.Config, format string, args ...any) {
	if !cfg.Runtime.Verbose {
		return
	}
	fmt.Fprintf(e.stderr, "[verbose] "+format+"\n", args...)
}

func (e *Engine) setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(e.stdout, cfg.Output.ConsoleFormat, cfg.Output.NoColor)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// acquired is a repository root ready for analysis. release must run after
// the report is rendered.
type acquired struct {
	src     *fetcher.Fetcher
	release func()
}

func (e *Engine) acquire(ctx context.Context, cfg *config.Config, target string, isURL bool, outMgr *output.Manager) (*acquired, error) {
	if !isURL {
		if err := acquire.Local(target); err != nil {
			return nil, err
		}
		ds := data.NewDirSource(target)
		e.verbosef(cfg, "analysing local path %s", ds.Root())
		return &acquired{src: fetcher.NewFetcher(ds), release: func() {}}, nil
	}

	actx := ctx
	if cfg.Runtime.Timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, cfg.Runtime.Timeout)
		defer cancel()
	}

	if cfg.Source.Mode == config.SourceAPI {
		outMgr.Acquiring(target, config.SourceAPI)
		return e.acquireAPI(actx, cfg, target)
	}

	outMgr.Acquiring(target, config.SourceClone)
	var opts []acquire.Option
	if cfg.Runtime.Verbose {
		opts = append(opts, acquire.WithVerbose(e.stderr))
	}
	co, err := e.clone(actx, target, opts...)
	if err != nil {
		return nil, err
	}
	ds := data.NewDirSource(co.Dir)
	e.verbosef(cfg, "cloned into %s", ds.Root())
	return &acquired{src: fetcher.NewFetcher(ds), release: co.Close}, nil
}

func (e *Engine) acquireAPI(ctx context.Context, cfg *config.Config, target string) (*acquired, error) {
	owner, repo, err := config.ParseGitHubRepo(target)
	if err != nil {
		return nil, &fetchError{URL: target, Err: err}
	}
	client, err := e.newClient(ctx, cfg.Runtime.Verbose, e.stderr)
	if err != nil {
		return nil, &fetchError{URL: target, Err: err}
	}

	rs := gh.NewRepoSource(client, owner, repo)
	if _, err := rs.Resolve(ctx); err != nil {
		return nil, &fetchError{URL: target, Err: err}
	}
	e.verbosef(cfg, "reading %s/%s at %s via GitHub API", owner, repo, rs.Ref())

	f := fetcher.NewFetcher(rs)
	if err := f.Prefetch(ctx, fetcher.DefaultPrefetchLimit, prefetchNames()...); err != nil {
		return nil, &fetchError{URL: target, Err: err}
	}
	return &acquired{src: f, release: func() {}}, nil
}

func (e *Engine) analyze(ctx context.Context, cfg *config.Config, repo, target string, src data.Source) (*output.Analysis, error) {
	tracked := data.NewTrackingSource(src)

	snap, err := fetcher.Load(ctx, tracked)
	if err != nil {
		return nil, err
	}
	if snap.HasReadme {
		e.verbosef(cfg, "readme: %s (%d bytes)", snap.ReadmePath, len(snap.ReadmeText))
	} else {
		e.verbosef(cfg, "readme: none found")
	}

	sections := readme.DetectSections(snap.ReadmeText)
	report := rules.Evaluate(rules.InputFromSnapshot(snap, sections))

	outcomes := quickstart.Plan(ctx, snap.Source)
	for _, o := range outcomes {
		if o.Err != nil {
			e.verbosef(cfg, "quick start %s: %v", o.Stage, o.Err)
		}
	}

	details, err := manifest.Inspect(ctx, snap.Source, snap.Markers)
	if err != nil {
		e.verbosef(cfg, "manifest: %v", err)
	}

	e.verbosef(cfg, "probed: %s", strings.Join(tracked.AccessedNames(), ", "))

	return &output.Analysis{
		Repo:       repo,
		Target:     target,
		ReadmePath: snap.ReadmePath,
		Report:     report,
		QuickStart: quickstart.Commands(outcomes),
		Detected:   details,
	}, nil
}

// Run analyses cfg.Target.Path and writes the outcome to every configured
// sink. Analysis failures are reported through the sinks, never returned.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	outMgr, err := e.setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error creating output sinks: %v\n", err)
		return ExitConfig
	}
	defer func() {
		if err := outMgr.Close(); err != nil {
			fmt.Fprintf(e.stderr, "Error writing output: %v\n", err)
		}
	}()

	target := cfg.Target.Path
	isURL := config.IsURL(target)
	if isURL {
		if normalized := config.NormalizeURL(target); normalized != target {
			e.verbosef(cfg, "rewrote %s to %s", target, normalized)
			target = normalized
		}
	}
	repo := config.RepoName(target)
	outMgr.Started(repo, target)

	analysis, err := e.run(ctx, cfg, repo, target, isURL, outMgr)
	if err != nil {
		outMgr.Failed(repo, target, presentFailure(err, cfg.Runtime.Verbose))
		code := exitCodeForRun(cfg, true, 0)
		outMgr.RunFinished(repo, code)
		return code
	}

	outMgr.Finished(*analysis)
	code := exitCodeForRun(cfg, false, analysis.Score)
	outMgr.RunFinished(repo, code)
	return code
}

func (e *Engine) run(ctx context.Context, cfg *config.Config, repo, target string, isURL bool, outMgr *output.Manager) (*output.Analysis, error) {
	acq, err := e.acquire(ctx, cfg, target, isURL, outMgr)
	if err != nil {
		return nil, err
	}
	defer acq.release()
	return e.analyze(ctx, cfg, repo, target, acq.src)
}
