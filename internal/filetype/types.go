package filetype

import (
	"locstrings/internal/diag"
	"locstrings/internal/resource"
)

// File is the uniform per-file plugin contract. Drivers call Extract,
// collect the translation set, and invoke Localize and Write generically;
// read-only plugins implement the latter two as no-ops.
type File interface {
	// Extract reads the file and scans it for translatable strings. Read
	// failures are logged and degrade to an empty set; Extract never fails.
	Extract()
	// TranslationSet returns the resources accumulated by Extract.
	TranslationSet() *resource.TranslationSet
	// Localize writes translated output, when the plugin supports it.
	Localize()
	// Write persists any localized content, when the plugin supports it.
	Write()
	// Path returns the source file path the instance is bound to.
	Path() string
}

// FileType is the plugin factory for one source file format.
type FileType interface {
	// Handles reports whether this plugin processes files with the given
	// extension (lowercase, with leading dot).
	Handles(ext string) bool
	// DataType returns the classification tag stamped on every resource.
	DataType() string
	// NewFile returns an extractor for one source file. Each file owns an
	// independent translation set, so instances may run in parallel.
	NewFile(path string, project resource.Project, reporter diag.Reporter) File
}
