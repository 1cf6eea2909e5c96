// Package sentiment filters, labels, groups and searches scored tweets.
// Everything here is a pure function of its inputs.
package sentiment

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"golang.org/x/text/unicode/norm"
)

// Matcher tests text for a keyword occurring as a whole word, ignoring
// case. The keyword is literal: regexp metacharacters in it match
// themselves.
type Matcher struct {
	keyword string
	re      *regexp.Regexp
}

func NewMatcher(keyword string) *Matcher {
	kw := norm.NFC.String(keyword)
	return &Matcher{
		keyword: kw,
		re:      regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw)),
	}
}

// Matches reports whether keyword occurs in text as a whole word.
func Matches(text, keyword string) bool {
	return NewMatcher(keyword).Match(text)
}

// Match reports whether the keyword occurs in text with a word boundary on
// both sides. An empty keyword matches nothing.
func (m *Matcher) Match(text string) bool {
	if m.keyword == "" {
		return false
	}
	if !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}

	for off := 0; off < len(text); {
		loc := m.re.FindStringIndex(text[off:])
		if loc == nil {
			return false
		}
		start, end := off+loc[0], off+loc[1]
		if wordBoundary(text, start) && wordBoundary(text, end) {
			return true
		}
		// Retry one rune later so overlapping candidates are not skipped.
		_, size := utf8.DecodeRuneInString(text[start:])
		off = start + size
	}
	return false
}

// MatchRecord is Match for a record; records without text never match.
func (m *Matcher) MatchRecord(r dataset.Record) bool {
	return r.HasText && m.Match(r.Text)
}

// wordBoundary reports whether i sits between a word rune and a non-word
// rune. The ends of s count as non-word.
func wordBoundary(s string, i int) bool {
	var before, after bool
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
