// Package filetype extracts localizable string literals from source files.
// Each file format is a plugin behind the FileType interface; the only
// plugin implemented here scans Objective-C for macro-style localization
// calls such as NSLocalizedString(@"Hello", @"greeting"). No general
// Objective-C parser is built: a fixed literal-call grammar is matched with
// compiled patterns and everything else in the file is ignored.
package filetype

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"locstrings/internal/diag"
	"locstrings/internal/escape"
	"locstrings/internal/resource"
)

// Fixed messages for the three malformed-usage categories.
const (
	msgConcatKey  = "string concatenation in the key of a localized string breaks extraction"
	msgConcatArgs = "string concatenation in the arguments of a localized string breaks extraction"
	msgNonLiteral = "the key of a localized string must be a string literal"
)

// ObjectiveCConfig controls which call identifiers are recognized and how
// extracted resources are tagged.
type ObjectiveCConfig struct {
	// MacroSuffix is the localization macro name. An identifier matches
	// when the suffix is preceded by a word boundary, by the standard
	// prefix at a word boundary, or by the marker prefix anywhere.
	MacroSuffix string
	// StandardPrefix is the framework prefix allowed before the suffix at
	// a word boundary ("NS" matches NSLocalizedString).
	StandardPrefix string
	// MarkerPrefix is a project prefix that marks an identifier as a
	// localization call even mid-identifier ("HT").
	MarkerPrefix string
	// Datatype is copied verbatim into every extracted resource.
	Datatype string
}

// DefaultObjectiveCConfig covers stock NSLocalizedString usage plus the
// HT-prefixed project aliases.
func DefaultObjectiveCConfig() ObjectiveCConfig {
	return ObjectiveCConfig{
		MacroSuffix:    "LocalizedString",
		StandardPrefix: "NS",
		MarkerPrefix:   "HT",
		Datatype:       "x-objective-c",
	}
}

// literal matches a double-quoted string body, allowing escaped quotes.
const literal = `"((?:\\"|[^"])*)"`

// ObjectiveCFileType hands out per-file extractors sharing one set of
// compiled call patterns.
type ObjectiveCFileType struct {
	cfg ObjectiveCConfig

	reCall       *regexp.Regexp
	reComment    *regexp.Regexp
	reConcatKey  *regexp.Regexp
	reConcatArgs *regexp.Regexp
	reNonLiteral *regexp.Regexp
}

// NewObjectiveCFileType compiles the call patterns for the given config.
func NewObjectiveCFileType(cfg ObjectiveCConfig) *ObjectiveCFileType {
	if cfg.MacroSuffix == "" {
		cfg = DefaultObjectiveCConfig()
	}

	// A word boundary (optionally through the standard prefix) or the bare
	// marker prefix must sit immediately before the macro name, so that
	// unrelated identifiers merely ending in the suffix never match.
	macro := fmt.Sprintf(`(?:\b(?:%s)?|%s)%s`,
		regexp.QuoteMeta(cfg.StandardPrefix),
		regexp.QuoteMeta(cfg.MarkerPrefix),
		regexp.QuoteMeta(cfg.MacroSuffix))

	return &ObjectiveCFileType{
		cfg:          cfg,
		reCall:       regexp.MustCompile(macro + `\s*\(\s*@` + literal + `\s*,`),
		reComment:    regexp.MustCompile(`^\s*@` + literal + `\s*\)`),
		reConcatKey:  regexp.MustCompile(macro + `\s*\(\s*@` + literal + `\s*\+`),
		reConcatArgs: regexp.MustCompile(macro + `\s*\([^)]*\+\s*@` + literal),
		reNonLiteral: regexp.MustCompile(macro + `\s*\(\s*[^")]*[,)]`),
	}
}

func (ft *ObjectiveCFileType) Handles(ext string) bool {
	return ext == ".m" || ext == ".h"
}

func (ft *ObjectiveCFileType) DataType() string {
	return ft.cfg.Datatype
}

func (ft *ObjectiveCFileType) NewFile(path string, project resource.Project, reporter diag.Reporter) File {
	return &ObjectiveCFile{
		ft:       ft,
		path:     path,
		project:  project,
		reporter: reporter,
		set:      resource.NewTranslationSet(),
	}
}

// ObjectiveCFile extracts localizable strings from one Objective-C source
// file.
type ObjectiveCFile struct {
	ft       *ObjectiveCFileType
	path     string
	project  resource.Project
	reporter diag.Reporter

	set   *resource.TranslationSet
	index int
}

// Extract reads the file and scans it for localization calls. A read
// failure is logged and leaves the translation set empty; it is never fatal
// to the surrounding pipeline.
func (f *ObjectiveCFile) Extract() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		log.Warn().Err(err).Str("file", f.path).Msg("Could not read file for extraction")
		return
	}
	f.parse(string(data))
}

// parse scans text for localization calls, emits one resource per call with
// a non-empty literal, then runs the malformed-usage sweeps over the same
// text.
func (f *ObjectiveCFile) parse(text string) {
	if text == "" {
		return
	}

	for _, loc := range f.ft.reCall.FindAllStringSubmatchIndex(text, -1) {
		raw := text[loc[2]:loc[3]]
		if strings.TrimSpace(raw) == "" {
			continue
		}

		// The key doubles as the source: both are the unescaped literal.
		key := escape.Unescape(raw)

		r := f.project.NewString(key, key)
		r.Path = f.path
		r.Datatype = f.ft.cfg.Datatype
		r.Comment = f.commentAfter(text, loc[1])
		r.Index = f.index
		f.index++

		f.set.Add(r)
	}

	diag.Sweep(text, f.ft.reConcatKey, msgConcatKey, f.path, f.reporter)
	diag.Sweep(text, f.ft.reConcatArgs, msgConcatArgs, f.path, f.reporter)
	diag.Sweep(text, f.ft.reNonLiteral, msgNonLiteral, f.path, f.reporter)
}

// commentAfter extracts the developer comment from the remainder of the
// line following a call match. The remainder must be exactly a quoted
// literal followed by the call's closing parenthesis, otherwise there is no
// comment.
func (f *ObjectiveCFile) commentAfter(text string, from int) string {
	end := strings.IndexByte(text[from:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += from
	}

	m := f.ft.reComment.FindStringSubmatch(text[from:end])
	if m == nil {
		return ""
	}
	return escape.Unescape(m[1])
}

func (f *ObjectiveCFile) TranslationSet() *resource.TranslationSet {
	return f.set
}

func (f *ObjectiveCFile) Path() string {
	return f.path
}

// Localize is a no-op: this plugin never writes translated output back into
// source files. It exists so generic drivers can invoke the uniform file
// contract.
func (f *ObjectiveCFile) Localize() {}

// Write is a no-op for the same reason as Localize.
func (f *ObjectiveCFile) Write() {}
