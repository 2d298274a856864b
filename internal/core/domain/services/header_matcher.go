package services

import (
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// Keys shorter than this only match whole words of a header.
	minSubstringKey = 3
	// Keys at least this long tolerate one typo.
	minFuzzyKey = 6
)

// HeaderMatcher finds the spreadsheet column that holds a field, given the
// field's synonyms ranked by preference. Matching runs in three passes over
// all synonyms: exact, then substring, then one-edit typos. Case and accents
// are ignored throughout.
type HeaderMatcher struct {
	headers []string
	tokens  [][]string
}

func NewHeaderMatcher(headers []string) HeaderMatcher {
	m := HeaderMatcher{
		headers: make([]string, len(headers)),
		tokens:  make([][]string, len(headers)),
	}
	for idx, h := range headers {
		m.headers[idx] = fold(h)
		m.tokens[idx] = strings.FieldsFunc(m.headers[idx], func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
	}
	return m
}

// Find returns the column index for the first synonym that matches, or -1.
func (m HeaderMatcher) Find(synonyms ...string) int {
	keys := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		if k := fold(s); k != "" {
			keys = append(keys, k)
		}
	}

	for _, key := range keys {
		for idx, h := range m.headers {
			if h == key {
				return idx
			}
		}
	}

	for _, key := range keys {
		for idx, h := range m.headers {
			if len([]rune(key)) < minSubstringKey {
				if slices.Contains(m.tokens[idx], key) {
					return idx
				}
				continue
			}
			if strings.Contains(h, key) {
				return idx
			}
		}
	}

	for _, key := range keys {
		if len([]rune(key)) < minFuzzyKey {
			continue
		}
		for idx, h := range m.headers {
			if levenshtein.ComputeDistance(h, key) <= 1 {
				return idx
			}
			for _, tok := range m.tokens[idx] {
				if levenshtein.ComputeDistance(tok, key) <= 1 {
					return idx
				}
			}
		}
	}

	return -1
}

// fold lowercases, trims and strips diacritics.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
