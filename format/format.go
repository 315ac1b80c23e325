// Package format implements a pretty-printer for an already-parsed module:
// it walks an *ast.Module alongside its *extras.Extras side-channel and
// produces canonical source text. Parsing, path handling, and parse-error
// reporting all belong to the caller; this package only lays text out.
package format

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/mod/semver"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
	"github.com/eutampieri/gleam/extras"
)

// Width is the fixed target column width every rendered line is measured
// against.
const Width = 80

// Indent is the number of columns one nesting level adds.
const Indent = 2

// defaultTargetVersion is used when Options.TargetVersion is empty,
// matching gofumpt's own "no LangVersion means v1" default. It is below
// codepointOptionsVersion, so by default bit-array codepoint options are
// downgraded to their plain forms.
const defaultTargetVersion = "v1"

// codepointOptionsVersion is the minimum target version at which a bit
// array's utf8_codepoint/utf16_codepoint/utf32_codepoint options are kept
// as written rather than downgraded to their non-codepoint form. Mirrors
// gofumpt's own per-feature semver.Compare gates in File.
const codepointOptionsVersion = "v1.1"

// ErrInvalidTargetVersion reports a --target-version string that is not a
// valid semantic version.
var ErrInvalidTargetVersion = errors.New("invalid target version")

// Options configures version-gated normalisation behaviour, the way
// gofumpt's own Options.LangVersion gates newer-syntax rewrites.
type Options struct {
	// TargetVersion is a semantic version (with or without a leading "v").
	// Empty is equivalent to "v1". Below [codepointOptionsVersion], bit
	// array utf8_codepoint/utf16_codepoint/utf32_codepoint options are
	// downgraded to their plain utf8/utf16/utf32 counterparts, since those
	// options predate the codepoint-qualified forms.
	TargetVersion string
}

func (o Options) normalize() (string, error) {
	v := o.TargetVersion
	if v == "" {
		v = defaultTargetVersion
	} else if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTargetVersion, o.TargetVersion)
	}
	return v, nil
}

// ParseError wraps a parse failure from the caller's own parser, surfaced
// unchanged so callers can report it without this package interpreting it.
type ParseError struct {
	Path   string
	Source string
	Inner  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Inner)
}

func (e *ParseError) Unwrap() error { return e.Inner }

// Pretty formats module against its extras and writes the canonical text to
// w. path labels the error returned for an internal invariant violation;
// Pretty itself never returns a ParseError, since by the time an
// *ast.Module exists parsing has already succeeded.
func Pretty(w io.Writer, module *ast.Module, ex *extras.Extras, path string) error {
	return PrettyWithOptions(w, module, ex, path, Options{})
}

// PrettyWithOptions is [Pretty] with explicit version gating (see
// [Options]); cmd/fnfmt's --target-version flag goes through this entry
// point, while Pretty itself keeps its frozen, option-free signature as
// the library's external interface.
func PrettyWithOptions(w io.Writer, module *ast.Module, ex *extras.Extras, path string, opts Options) (err error) {
	targetVersion, err := opts.normalize()
	if err != nil {
		return &ParseError{Path: path, Inner: err}
	}

	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(invariantViolation); ok {
				err = fmt.Errorf("%s: internal invariant violated: %s", path, string(pe))
				return
			}
			panic(r)
		}
	}()

	f := newFormatter(ex, targetVersion)
	d := f.module(module)
	out := doc.Render(d, Width)
	if out != "" && out[len(out)-1] != '\n' {
		out += "\n"
	} else if out == "" {
		out = "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// invariantViolation marks a panic raised for an AST shape that must never
// occur in a structurally valid module. PrettyWithOptions (and so Pretty)
// converts it into a returned error so library callers aren't forced to
// recover(); the CLI, which calls PrettyWithOptions, still treats it as
// unrecoverable and exits non-zero.
type invariantViolation string

func invariant(format string, args ...any) {
	panic(invariantViolation(fmt.Sprintf(format, args...)))
}

// formatter holds the single advancing cursor over a module's extras. One
// formatter is used for exactly one module → document pass; nothing here is
// safe to reuse or share across goroutines, matching spec's single
// short-lived instance per file.
type formatter struct {
	cursor        *extras.Cursor
	targetVersion string
}

func newFormatter(ex *extras.Extras, targetVersion string) *formatter {
	return &formatter{cursor: extras.NewCursor(ex), targetVersion: targetVersion}
}

// supportsCodepointOptions reports whether f's target version keeps a bit
// array's utf8_codepoint-family options as written, versus downgrading
// them to their plain utf8/utf16/utf32 forms.
func (f *formatter) supportsCodepointOptions() bool {
	return semver.Compare(f.targetVersion, codepointOptionsVersion) >= 0
}
