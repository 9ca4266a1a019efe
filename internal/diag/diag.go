// Package diag reports malformed localization-call usages found in source
// text. Warnings are advisory: the pipeline keeps going and simply extracts
// fewer resources from the offending file.
package diag

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

// Warning describes one malformed call occurrence.
type Warning struct {
	// Message is the fixed description for the warning category.
	Message string
	// Match is the offending source text.
	Match string
	// Path is the file the text came from.
	Path string
}

// Reporter receives warnings as they are found.
type Reporter interface {
	Report(w Warning)
}

// LogReporter writes warnings to the zerolog global logger.
type LogReporter struct{}

func (LogReporter) Report(w Warning) {
	log.Warn().
		Str("file", w.Path).
		Str("match", truncate(w.Match, 80)).
		Msg(w.Message)
}

// Sweep finds every match of re in text and reports each one with the given
// message. It scans the full text with its own cursor, so multiple sweeps
// over the same text never interfere. The warnings found are also returned.
func Sweep(text string, re *regexp.Regexp, message, path string, r Reporter) []Warning {
	var found []Warning
	for _, m := range re.FindAllString(text, -1) {
		w := Warning{Message: message, Match: m, Path: path}
		found = append(found, w)
		if r != nil {
			r.Report(w)
		}
	}
	return found
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
