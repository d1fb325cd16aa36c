package search

import (
	"strings"
	"testing"

	"github.com/dheater/viewyard/internal/config"
)

var repos = []string{"api-gateway", "web-frontend", "auth-service", "api-docs"}

func TestRankEmptyPatternKeepsOrder(t *testing.T) {
	matches := Rank("", repos)
	if len(matches) != len(repos) {
		t.Fatalf("got %d matches, want %d", len(matches), len(repos))
	}
	for i, m := range matches {
		if m.Str != repos[i] || m.Index != i {
			t.Errorf("match %d = %+v, want original order", i, m)
		}
	}
}

func TestFilterNarrowsCandidates(t *testing.T) {
	got := Filter("api", repos)
	if len(got) != 2 {
		t.Fatalf("Filter(api) = %v, want two hits", got)
	}
	for _, s := range got {
		if s != "api-gateway" && s != "api-docs" {
			t.Errorf("unexpected hit %q", s)
		}
	}
}

func TestFilterSubsequence(t *testing.T) {
	got := Filter("wfe", repos)
	if len(got) != 1 || got[0] != "web-frontend" {
		t.Errorf("Filter(wfe) = %v, want [web-frontend]", got)
	}
}

func TestFilterNoMatch(t *testing.T) {
	if got := Filter("zzz", repos); len(got) != 0 {
		t.Errorf("Filter(zzz) = %v, want none", got)
	}
}

func TestFindRepoExactName(t *testing.T) {
	configured := []config.Repository{
		{Name: "api", URL: "git@example.com:org/api.git"},
		{Name: "api-docs", URL: "git@example.com:org/api-docs.git"},
	}

	r, ok := FindRepo(configured, "api", NameIs)
	if !ok || r.Name != "api" {
		t.Errorf("FindRepo(api) = %+v, %v; want the exact match", r, ok)
	}
	if _, ok := FindRepo(configured, "docs", NameIs); ok {
		t.Error("FindRepo(docs) matched, want exact-name misses to fail")
	}
}

func TestFindRepoCustomClassifier(t *testing.T) {
	configured := []config.Repository{
		{Name: "web", URL: "git@example.com:org/web.git"},
		{Name: "auth", URL: "git@corp.example.com:org/auth.git"},
	}
	byHost := func(r config.Repository, query string) bool {
		return strings.Contains(r.URL, query)
	}

	r, ok := FindRepo(configured, "corp.example.com", byHost)
	if !ok || r.Name != "auth" {
		t.Errorf("FindRepo by host = %+v, %v; want auth", r, ok)
	}
}
