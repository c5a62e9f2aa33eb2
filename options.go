package docxdocs

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/saasquatch/stencil-docx-docs/internal/dateutil"
	"github.com/saasquatch/stencil-docx-docs/internal/fileutil"
)

// Default option values.
const (
	DefaultOutDir     = "docs"
	DefaultOutFile    = "docs.docx"
	DefaultTextFont   = "Calibri"
	DefaultTitle      = "Component Documentation"
	DefaultAuthor     = "SaaSquatch"
	DefaultDateFormat = dateutil.DefaultFormat
	DefaultCodeStyle  = "github"
)

// DefaultExcludeTag hides components and props tagged @undocumented.
const DefaultExcludeTag = "undocumented"

// Field length limits.
const (
	MaxTitleLength  = 500
	MaxAuthorLength = 200
	MaxFontLength   = 100
	MaxTagLength    = 100
)

// Options configures document generation.
type Options struct {
	OutDir   string `json:"outDir,omitempty" yaml:"outDir"`
	OutFile  string `json:"outFile,omitempty" yaml:"outFile"`
	TextFont string `json:"textFont,omitempty" yaml:"textFont"`

	// ExcludeTags lists doc-tag names that hide a component or prop. A nil
	// slice means the default ["undocumented"]; a non-nil empty slice
	// disables exclusion.
	ExcludeTags []string `json:"excludeTags,omitempty" yaml:"excludeTags"`

	Title      string `json:"title,omitempty" yaml:"title"`
	Author     string `json:"author,omitempty" yaml:"author"`
	DateFormat string `json:"dateFormat,omitempty" yaml:"dateFormat"`

	// Markdown renders documentation strings as Markdown instead of plain
	// text. Fenced code is coloured with CodeStyle.
	Markdown  bool   `json:"markdown,omitempty" yaml:"markdown"`
	CodeStyle string `json:"codeStyle,omitempty" yaml:"codeStyle"`
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{}.WithDefaults()
}

// WithDefaults returns a copy with zero-valued fields set to their defaults.
func (o Options) WithDefaults() Options {
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if o.OutFile == "" {
		o.OutFile = DefaultOutFile
	}
	if o.TextFont == "" {
		o.TextFont = DefaultTextFont
	}
	if o.ExcludeTags == nil {
		o.ExcludeTags = []string{DefaultExcludeTag}
	} else {
		o.ExcludeTags = slices.Clone(o.ExcludeTags)
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Author == "" {
		o.Author = DefaultAuthor
	}
	if o.DateFormat == "" {
		o.DateFormat = DefaultDateFormat
	}
	if o.CodeStyle == "" {
		o.CodeStyle = DefaultCodeStyle
	}
	return o
}

// Validate checks options after defaults have been applied.
func (o Options) Validate() error {
	if err := fileutil.ValidateFileName(o.OutFile, ".docx"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutFile, err)
	}
	if _, err := dateutil.Compile(o.DateFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	if o.Markdown && !slices.Contains(styles.Names(), o.CodeStyle) {
		return fmt.Errorf("%w: %q", ErrInvalidCodeStyle, o.CodeStyle)
	}

	errs := []error{
		validateFieldLength("title", o.Title, MaxTitleLength),
		validateFieldLength("author", o.Author, MaxAuthorLength),
		validateFieldLength("textFont", o.TextFont, MaxFontLength),
	}
	for _, tag := range o.ExcludeTags {
		errs = append(errs, validateFieldLength("excludeTags", tag, MaxTagLength))
	}
	return errors.Join(errs...)
}

func validateFieldLength(name, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s has %d characters (max %d)", ErrFieldTooLong, name, len(value), maxLength)
	}
	return nil
}

// subtitleDate formats t with the configured date format, falling back to
// the default format when the configured one does not compile.
func (o Options) subtitleDate(t time.Time) string {
	if s, err := dateutil.Format(t, o.DateFormat); err == nil {
		return s
	}
	s, _ := dateutil.Format(t, DefaultDateFormat)
	return s
}
