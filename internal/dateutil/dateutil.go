// Package dateutil formats dates with human-friendly token patterns such as
// "M/D/YYYY" or "MMMM D, YYYY".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates an unusable date format string.
var ErrInvalidFormat = errors.New("invalid date format")

// MaxFormatLength bounds format strings.
const MaxFormatLength = 64

// DefaultFormat renders dates the way a US-English locale short date does.
const DefaultFormat = "M/D/YYYY"

// tokens maps pattern tokens to Go layout elements, longest first so
// matching is greedy.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"dddd", "Monday"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts accepted wherever a format is.
var Presets = map[string]string{
	"locale":   DefaultFormat,
	"iso":      "YYYY-MM-DD",
	"us":       "MM/DD/YYYY",
	"european": "DD/MM/YYYY",
	"long":     "MMMM D, YYYY",
}

// segment is either a literal or a Go layout element.
type segment struct {
	text   string
	layout bool
}

// Layout is a compiled format.
type Layout struct {
	segments []segment
}

// Compile parses a token pattern or preset name. Text inside brackets is
// copied literally ("[on] M/D" renders "on 10/15"); any other character that
// is not part of a token is also literal.
func Compile(format string) (Layout, error) {
	if format == "" {
		return Layout{}, fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return Layout{}, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var (
		l   Layout
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			l.segments = append(l.segments, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end < 0 {
				return Layout{}, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			lit.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, tk := range tokens {
			if strings.HasPrefix(format[i:], tk.token) {
				flush()
				l.segments = append(l.segments, segment{text: tk.layout, layout: true})
				i += len(tk.token)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()
	return l, nil
}

// Format renders t.
func (l Layout) Format(t time.Time) string {
	var b strings.Builder
	for _, s := range l.segments {
		if s.layout {
			b.WriteString(t.Format(s.text))
		} else {
			b.WriteString(s.text)
		}
	}
	return b.String()
}

// Format compiles format and renders t with it.
func Format(t time.Time, format string) (string, error) {
	l, err := Compile(format)
	if err != nil {
		return "", err
	}
	return l.Format(t), nil
}
