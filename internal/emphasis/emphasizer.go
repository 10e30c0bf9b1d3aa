// Package emphasis turns raw generated text into a safe HTML rendering with
// key terms wrapped in bold markers. Matching is case-insensitive, respects
// word boundaries, and always prefers the longest candidate term, so a
// phrase like "Google Cloud" is never fragmented by a shorter "Go".
package emphasis

import (
	"html"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/moeez1234567/Job-descriptor/internal/models"
)

// Only the bold marker survives sanitation; everything else the backend
// could have smuggled into the text stays escaped.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b")
	return p
}()

// Section headings and domain constants bolded in every posting, on top of
// the per-request skill list.
var baseKeywords = []string{
	"Responsibilities",
	"Requirements",
	"Qualifications",
	"Benefits",
	"About Us",
	"About the Role",
	"About the Company",
	"PKR",
	"Remote",
	"On-site",
	"Hybrid",
	"Entry Level",
	"Mid Level",
	"Senior Level",
	"Expert",
}

// Emphasizer holds a prepared candidate term set: trimmed, de-duplicated
// case-insensitively, ordered longest-first.
type Emphasizer struct {
	terms []string
}

// New builds an emphasizer from the given terms. Empty and duplicate terms
// (case-insensitively) are dropped; ties in length break lexicographically
// so term ordering, and therefore output, is deterministic.
func New(terms ...string) *Emphasizer {
	seen := make(map[string]bool)
	prepared := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		prepared = append(prepared, t)
	}
	sort.Slice(prepared, func(i, j int) bool {
		if len(prepared[i]) != len(prepared[j]) {
			return len(prepared[i]) > len(prepared[j])
		}
		return strings.ToLower(prepared[i]) < strings.ToLower(prepared[j])
	})
	return &Emphasizer{terms: prepared}
}

// ForRequest builds the candidate term set for one job request: every
// skill plus the request's own attributes and the base keyword list.
func ForRequest(req *models.JobRequest) *Emphasizer {
	years := strconv.FormatFloat(req.MinExperienceYears, 'f', -1, 64)
	terms := make([]string, 0, len(req.Skills)+len(baseKeywords)+7)
	terms = append(terms, req.Skills...)
	terms = append(terms,
		req.JobTitle,
		req.CompanyName,
		req.Location,
		string(req.Workplace),
		string(req.ExpLevelCategory),
		years+" years",
		years+" year",
	)
	terms = append(terms, baseKeywords...)
	return New(terms...)
}

// Render scans raw left to right and returns the HTML rendering: matched
// term occurrences wrapped in <b>, everything HTML-escaped. Every
// occurrence of a term is wrapped, but a consumed span is never re-matched
// by a shorter nested term. With no terms the result is simply the escaped
// input.
func (e *Emphasizer) Render(raw string) string {
	var b strings.Builder
	gap := 0
	i := 0
	for i < len(raw) {
		if term, ok := e.matchAt(raw, i); ok {
			b.WriteString(html.EscapeString(raw[gap:i]))
			b.WriteString("<b>")
			// Original casing from the source text, not the term list.
			b.WriteString(html.EscapeString(raw[i : i+len(term)]))
			b.WriteString("</b>")
			i += len(term)
			gap = i
			continue
		}
		_, size := utf8.DecodeRuneInString(raw[i:])
		i += size
	}
	b.WriteString(html.EscapeString(raw[gap:]))
	return policy.Sanitize(b.String())
}

// matchAt reports the longest candidate term matching at byte offset i,
// honoring word boundaries on both sides.
func (e *Emphasizer) matchAt(raw string, i int) (string, bool) {
	if !boundaryBefore(raw, i) {
		return "", false
	}
	for _, term := range e.terms {
		end := i + len(term)
		if end > len(raw) {
			continue
		}
		if !strings.EqualFold(raw[i:end], term) {
			continue
		}
		if !boundaryAfter(raw, end) {
			continue
		}
		return term, true
	}
	return "", false
}

func boundaryBefore(raw string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(raw[:i])
	return !isWordChar(r)
}

func boundaryAfter(raw string, end int) bool {
	if end >= len(raw) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(raw[end:])
	return !isWordChar(r)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
