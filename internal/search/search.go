// Package search provides the fuzzy matching used by interactive
// pickers and name filters, and the repository predicate callers can
// swap out for richer matching.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/dheater/viewyard/internal/config"
)

// Classifier decides whether a repository satisfies a query. Callers
// can substitute their own predicate; NameIs is the default.
type Classifier func(r config.Repository, query string) bool

// NameIs matches a repository by exact name.
func NameIs(r config.Repository, query string) bool {
	return r.Name == query
}

// FindRepo returns the first repository the classifier accepts.
func FindRepo(repos []config.Repository, query string, match Classifier) (config.Repository, bool) {
	for _, r := range repos {
		if match(r, query) {
			return r, true
		}
	}
	return config.Repository{}, false
}

// Match is one ranked hit. MatchedIndexes are rune positions for
// highlight rendering.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
}

// Rank fuzzy-matches pattern against candidates, best first. An empty
// pattern matches everything in the original order.
func Rank(pattern string, candidates []string) []Match {
	if pattern == "" {
		out := make([]Match, len(candidates))
		for i, c := range candidates {
			out[i] = Match{Str: c, Index: i}
		}
		return out
	}

	results := fuzzy.Find(pattern, candidates)
	out := make([]Match, len(results))
	for i, r := range results {
		out[i] = Match{Str: r.Str, Index: r.Index, MatchedIndexes: r.MatchedIndexes}
	}
	return out
}

// Filter returns just the matching strings, best first.
func Filter(pattern string, candidates []string) []string {
	matches := Rank(pattern, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
