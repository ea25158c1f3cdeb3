// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan implements the keyword scan over paper summaries and body
// text: case-insensitive substring matching, snippet extraction around the
// first occurrence, and exhaustive highlight spans for preview display.
// It is pure; callers fetch candidate records from the catalog and pass
// them in.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/meshint/paperdesk/pkg/types"
)

// UsageError reports bad caller input detected before any record is
// examined or any store call is made.
type UsageError string

func (e UsageError) Error() string { return string(e) }

// ErrEmptyKeyword is returned when the search keyword is empty.
const ErrEmptyKeyword = UsageError("search keyword required")

// ErrNoTargets is returned when neither target field is enabled.
const ErrNoTargets = UsageError("select at least one search target: summary or fulltext")

// Field names a searchable text field of a paper.
type Field string

const (
	FieldSummary  Field = "summary"
	FieldFulltext Field = "fulltext"
)

// Options selects which text fields the scan examines. At least one must
// be enabled.
type Options struct {
	Summary  bool
	Fulltext bool
}

// contextRunes is the amount of context kept on each side of a snippet.
const contextRunes = 30

// ellipsis marks context clipped at a snippet boundary.
const ellipsis = "..."

// Check validates scan input without touching any record. It returns a
// UsageError for an empty keyword or when no target field is enabled.
func Check(keyword string, opts Options) error {
	if strings.TrimSpace(keyword) == "" {
		return ErrEmptyKeyword
	}
	if !opts.Summary && !opts.Fulltext {
		return ErrNoTargets
	}
	return nil
}

// Snippet is a bounded excerpt around the first keyword occurrence in one
// field, with ellipsis markers where context was clipped.
type Snippet struct {
	// Field is the field the excerpt came from.
	Field Field

	// Text is the excerpt, including any ellipsis markers.
	Text string
}

// String renders the snippet with its field tag, e.g. "[summary] ...text...".
func (s Snippet) String() string {
	return "[" + string(s.Field) + "] " + s.Text
}

// Match is one paper that matched the keyword in at least one enabled
// field, with per-field snippets in field order (summary before fulltext).
type Match struct {
	Paper    types.Paper
	Snippets []Snippet
}

// Evidence returns the representative match description for list display:
// the first computed snippet, tagged with its field.
func (m Match) Evidence() string {
	if len(m.Snippets) == 0 {
		return ""
	}
	return m.Snippets[0].String()
}

// Search scans the given papers for the keyword in the enabled fields and
// returns the matches in input order. The input order is preserved so the
// catalog's ordering contract carries through to display.
func Search(keyword string, opts Options, papers []types.Paper) ([]Match, error) {
	if err := Check(keyword, opts); err != nil {
		return nil, err
	}

	var matches []Match
	for _, p := range papers {
		var snippets []Snippet
		if opts.Summary {
			if sn, ok := extract(FieldSummary, p.Summary, keyword); ok {
				snippets = append(snippets, sn)
			}
		}
		if opts.Fulltext {
			if sn, ok := extract(FieldFulltext, p.Fulltext, keyword); ok {
				snippets = append(snippets, sn)
			}
		}
		if len(snippets) > 0 {
			matches = append(matches, Match{Paper: p, Snippets: snippets})
		}
	}
	return matches, nil
}

// extract locates the first case-insensitive occurrence of keyword in text
// and builds the surrounding snippet: up to contextRunes runes on each
// side, clipped to the field boundaries.
func extract(field Field, text, keyword string) (Snippet, bool) {
	runes := []rune(text)
	idx := indexFold(runes, []rune(keyword))
	if idx < 0 {
		return Snippet{}, false
	}

	kw := utf8.RuneCountInString(keyword)

	start := idx - contextRunes
	prefix := ""
	if start > 0 {
		prefix = ellipsis
	} else {
		start = 0
	}

	end := idx + kw + contextRunes
	suffix := ""
	if end < len(runes) {
		suffix = ellipsis
	} else {
		end = len(runes)
	}

	return Snippet{
		Field: field,
		Text:  prefix + string(runes[start:end]) + suffix,
	}, true
}

// indexFold returns the rune offset of the first case-insensitive
// occurrence of needle in haystack, or -1. Folding is rune-wise, so the
// offset stays valid in the original text even for runes whose lowercase
// form has a different UTF-8 length (İ, the Kelvin sign).
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		found := true
		for j, r := range needle {
			if unicode.ToLower(haystack[i+j]) != unicode.ToLower(r) {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}

// Span is a half-open rune-offset interval [Start, End) into a displayed
// text, marking one keyword occurrence for visual emphasis.
type Span struct {
	Start int
	End   int
}

// Highlight returns spans for every non-overlapping case-insensitive
// occurrence of keyword in text. Unlike snippet extraction, highlighting
// is exhaustive. An empty keyword yields no spans.
func Highlight(text, keyword string) []Span {
	if keyword == "" {
		return nil
	}

	lower := strings.ToLower(text)
	needle := strings.ToLower(keyword)

	var spans []Span
	off := 0
	for {
		i := strings.Index(lower[off:], needle)
		if i < 0 {
			return spans
		}
		startB := off + i
		endB := startB + len(needle)
		spans = append(spans, Span{
			Start: utf8.RuneCountInString(lower[:startB]),
			End:   utf8.RuneCountInString(lower[:endB]),
		})
		off = endB
	}
}

// Annotate wraps every highlighted occurrence of keyword in text with the
// given markers, for preview rendering in plain-text surfaces.
func Annotate(text, keyword, open, close string) string {
	spans := Highlight(text, keyword)
	if len(spans) == 0 {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(string(runes[prev:sp.Start]))
		b.WriteString(open)
		b.WriteString(string(runes[sp.Start:sp.End]))
		b.WriteString(close)
		prev = sp.End
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}
