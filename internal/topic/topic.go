// Package topic decides whether a question belongs to the assistant's domain.
//
// Matching is a plain case-insensitive substring test: "banking" matches
// "bank", and a finance question phrased without any keyword is rejected.
package topic

import "strings"

// Keywords is an immutable, lower-cased keyword set.
type Keywords struct {
	words []string
}

// NewKeywords lower-cases the given words and drops blank ones.
func NewKeywords(words ...string) Keywords {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			kept = append(kept, w)
		}
	}
	return Keywords{words: kept}
}

// Len reports the number of keywords.
func (k Keywords) Len() int {
	return len(k.words)
}

// Words returns a copy of the keywords.
func (k Keywords) Words() []string {
	out := make([]string, len(k.words))
	copy(out, k.words)
	return out
}

// IsInDomain reports whether query contains at least one keyword.
func IsInDomain(query string, keywords Keywords) bool {
	q := strings.ToLower(query)
	for _, w := range keywords.words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
