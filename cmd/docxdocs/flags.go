package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrFlagConflict reports flags that cannot be combined.
var ErrFlagConflict = errors.New("conflicting flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output location and preview flags.
type outputFlags struct {
	dir     string
	file    string
	html    bool
	pdf     bool
	timeout string
}

// documentFlags holds cover and style flags.
type documentFlags struct {
	title      string
	author     string
	font       string
	dateFormat string
}

// filterFlags holds tag exclusion flags.
type filterFlags struct {
	excludeTags []string
	excludeSet  bool // --exclude-tag given at least once
	noExclude   bool
}

// markdownFlags holds rich text flags.
type markdownFlags struct {
	enabled   bool
	codeStyle string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   outputFlags
	document documentFlags
	filter   filterFlags
	markdown markdownFlags
	workers  int
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "out-dir", "o", "", "output directory")
	fs.StringVarP(&f.file, "out-file", "f", "", "output file name (single input)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF preview (needs Chrome)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF preview timeout (e.g., 30s, 2m)")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "cover title")
	fs.StringVar(&f.author, "author", "", "cover author")
	fs.StringVar(&f.font, "font", "", "body text font")
	fs.StringVar(&f.dateFormat, "date-format", "", "cover date format or preset")
}

func addFilterFlags(fs *flag.FlagSet, f *filterFlags) {
	fs.StringSliceVar(&f.excludeTags, "exclude-tag", nil, "doc tag that hides a component or prop (repeatable)")
	fs.BoolVar(&f.noExclude, "no-exclude", false, "document everything, ignoring tags")
}

func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.enabled, "markdown", false, "render documentation strings as Markdown")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for fenced code")
}

// parseGenerateFlags parses generate command flags and returns positional
// args. Usage goes to w on error or --help.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &generateFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addDocumentFlags(fs, &f.document)
	addFilterFlags(fs, &f.filter)
	addMarkdownFlags(fs, &f.markdown)

	fs.Usage = func() { printGenerateUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.filter.excludeSet = fs.Changed("exclude-tag")
	if f.filter.excludeSet && f.filter.noExclude {
		return nil, nil, fmt.Errorf("%w: --exclude-tag and --no-exclude", ErrFlagConflict)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose", ErrFlagConflict)
	}

	return f, fs.Args(), nil
}
