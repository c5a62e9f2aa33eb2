package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	docxdocs "github.com/saasquatch/stencil-docx-docs"
	"github.com/saasquatch/stencil-docx-docs/internal/config"
	"github.com/saasquatch/stencil-docx-docs/internal/dateutil"
	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
	"github.com/saasquatch/stencil-docx-docs/internal/hints"
)

// Sentinel errors for the generate command.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadInput       = errors.New("failed to read input file")
	ErrDuplicateOutput = errors.New("inputs map to the same output file")
)

// generateJob is one input and the file it produces.
type generateJob struct {
	InputPath string
	OutFile   string
}

// generateResult holds the outcome of one job.
type generateResult struct {
	InputPath  string
	OutputPath string
	Previews   []string
	Components int
	Err        error
	Skipped    bool // canceled because another job failed or on interrupt
	Duration   time.Duration
}

// runGenerateCmd parses flags, runs the generation and prints results.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	flags, inputs, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	setMaxProcs(flags.common.verbose, env)
	docxdocs.SetLogger(newLogger(flags.common, env))

	results, err := runGenerate(ctx, inputs, flags, env)
	if len(results) > 0 {
		printResults(results, flags.common.quiet, flags.common.verbose, env)
	}
	// FAILED lines already carry the error; canceled runs have none.
	if err != nil && countResults(results).Failed == 0 {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota. maxprocs.Set
// only fails on an invalid GOMAXPROCS variable, in which case the runtime
// default stays.
func setMaxProcs(verbose bool, env *Environment) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// newLogger builds the library logger: debug when verbose, errors only when
// quiet.
func newLogger(f commonFlags, env *Environment) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}

// runGenerate resolves configuration and generates one document per input.
// The returned error is the first failure; results are nil when nothing
// was attempted.
func runGenerate(ctx context.Context, inputs []string, flags *generateFlags, env *Environment) ([]generateResult, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath, env.Config)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	opts := buildOptions(cfg)
	jobs, err := planJobs(inputs, opts.WithDefaults().OutFile)
	if err != nil {
		return nil, err
	}
	// Fail fast on invalid options before touching any file.
	if err := opts.WithDefaults().Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(jobs))

	funcOpts := []docxdocs.Option{
		docxdocs.WithClock(env.Now),
		docxdocs.WithHTML(cfg.Preview.HTML),
	}
	if cfg.Preview.PDF {
		timeout, _ := cfg.TimeoutDuration() // validated above
		pool := docxdocs.NewRendererPool(min(docxdocs.ResolvePoolSize(cfg.Workers), len(jobs)), timeout)
		defer pool.Close()
		funcOpts = append(funcOpts, docxdocs.WithPDFRenderer(pool))
	}

	docxdocs.Logger().Debug("generating", "inputs", len(jobs), "workers", workers)

	results := make([]generateResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = generateOne(gctx, job, opts, funcOpts)
			return results[i].Err
		})
	}
	return results, g.Wait()
}

// loadConfig returns the named config file, or a copy of fallback when no
// name is given by flag or environment.
func loadConfig(flagName, envName string, fallback *config.Config) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name != "" {
		return config.LoadConfig(name)
	}
	if fallback == nil {
		return config.DefaultConfig(), nil
	}
	cfg := *fallback
	cfg.Filter.ExcludeTags = slices.Clone(fallback.Filter.ExcludeTags)
	return &cfg, nil
}

// mergeFlags overrides config values with flags that were set.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.file != "" {
		cfg.Output.File = flags.output.file
	}
	if flags.output.html {
		cfg.Preview.HTML = true
	}
	if flags.output.pdf {
		cfg.Preview.PDF = true
	}
	if flags.output.timeout != "" {
		cfg.Preview.Timeout = flags.output.timeout
	}

	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.font != "" {
		cfg.Document.Font = flags.document.font
	}
	if flags.document.dateFormat != "" {
		cfg.Document.DateFormat = flags.document.dateFormat
	}

	switch {
	case flags.filter.noExclude:
		cfg.Filter.ExcludeTags = []string{}
	case flags.filter.excludeSet:
		cfg.Filter.ExcludeTags = slices.Clone(flags.filter.excludeTags)
		if cfg.Filter.ExcludeTags == nil {
			cfg.Filter.ExcludeTags = []string{}
		}
	}

	if flags.markdown.enabled {
		cfg.Markdown.Enabled = true
	}
	if flags.markdown.codeStyle != "" {
		cfg.Markdown.CodeStyle = flags.markdown.codeStyle
	}

	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// buildOptions maps the merged config onto library options. Empty values
// take the library defaults.
func buildOptions(cfg *config.Config) docxdocs.Options {
	return docxdocs.Options{
		OutDir:      cfg.Output.Dir,
		OutFile:     cfg.Output.File,
		TextFont:    cfg.Document.Font,
		ExcludeTags: cfg.Filter.ExcludeTags,
		Title:       cfg.Document.Title,
		Author:      cfg.Document.Author,
		DateFormat:  cfg.Document.DateFormat,
		Markdown:    cfg.Markdown.Enabled,
		CodeStyle:   cfg.Markdown.CodeStyle,
	}
}

// planJobs assigns output files. A single input writes outFile; several
// inputs each write <basename>.docx and must not collide.
func planJobs(inputs []string, outFile string) ([]generateJob, error) {
	if len(inputs) == 1 {
		return []generateJob{{InputPath: inputs[0], OutFile: outFile}}, nil
	}

	jobs := make([]generateJob, 0, len(inputs))
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		name := fileutil.ReplaceExt(filepath.Base(in), ".docx")
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, prev, in, name)
		}
		seen[name] = in
		jobs = append(jobs, generateJob{InputPath: in, OutFile: name})
	}
	return jobs, nil
}

// generateOne reads, decodes and renders one input.
func generateOne(ctx context.Context, job generateJob, opts docxdocs.Options, funcOpts []docxdocs.Option) generateResult {
	result := generateResult{InputPath: job.InputPath}
	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Skipped = true
		return result
	}

	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	docs, err := readInput(job.InputPath)
	if err != nil {
		result.Err = err
		return result
	}

	opts.OutFile = job.OutFile
	res, err := docxdocs.Generate(ctx, docs, opts, funcOpts...)
	result.OutputPath = res.Path
	result.Components = res.Components
	for _, p := range []string{res.HTMLPath, res.PDFPath} {
		if p != "" {
			result.Previews = append(result.Previews, p)
		}
	}
	result.Err = err
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		result.Skipped = true
	}
	return result
}

// readInput opens and decodes a docs-json file.
func readInput(path string) (docxdocs.DocsSet, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return docxdocs.DocsSet{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close()

	docs, err := docxdocs.DecodeDocsSet(f)
	if err != nil {
		return docxdocs.DocsSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// ResultSummary counts job outcomes.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

func countResults(results []generateResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Skipped:
			summary.Skipped++
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per job and a summary for batches. Failures
// always print; successes are hidden by quiet.
func printResults(results []generateResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Skipped {
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d components, %v)\n",
				r.InputPath, r.OutputPath, r.Components, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		for _, p := range r.Previews {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, ", %d skipped", summary.Skipped)
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary
}

// hintFor returns a remediation hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.Is(err, docxdocs.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, docxdocs.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, docxdocs.ErrCreateDir), errors.Is(err, docxdocs.ErrWriteFile):
		return hints.ForOutputDirectory()
	case errors.Is(err, docxdocs.ErrDecodeInput):
		return hints.ForDecodeInput()
	case errors.Is(err, docxdocs.ErrInvalidCodeStyle):
		return hints.ForCodeStyle(styles.Names())
	case errors.Is(err, docxdocs.ErrInvalidDateFormat):
		return hints.ForDateFormat(slices.Sorted(maps.Keys(dateutil.Presets)))
	}
	return ""
}
