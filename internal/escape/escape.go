package escape

import "regexp"

// The replacement order matters: backslash pairs collapse first, then
// escaped apostrophes, then escaped quotes. Each pattern is applied once
// over the whole string, left to right, without re-scanning replaced text.
var (
	reLeadBackslash = regexp.MustCompile(`^\\\\`)
	reBackslash     = regexp.MustCompile(`([^\\])\\\\`)
	reLeadApos      = regexp.MustCompile(`^\\'`)
	reApos          = regexp.MustCompile(`([^\\])\\'`)
	reLeadQuote     = regexp.MustCompile(`^\\"`)
	reQuote         = regexp.MustCompile(`([^\\])\\"`)
)

// Unescape converts a string literal as it appears in Objective-C source
// into the value it has in memory at runtime: doubled backslashes collapse
// and escaped apostrophes and double quotes become bare characters.
//
// The derived resource key must match the key the runtime bundle lookup
// computes from the same literal, so these rules are a fixed contract and
// not a general-purpose unescaper. Empty input is returned unchanged.
func Unescape(raw string) string {
	if raw == "" {
		return raw
	}

	s := reLeadBackslash.ReplaceAllString(raw, "")
	s = reBackslash.ReplaceAllString(s, "$1")
	s = reLeadApos.ReplaceAllString(s, "'")
	s = reApos.ReplaceAllString(s, "$1'")
	s = reLeadQuote.ReplaceAllString(s, `"`)
	s = reQuote.ReplaceAllString(s, `$1"`)
	return s
}
