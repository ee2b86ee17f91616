package cmd

import (
	"testing"

	"shelf-cli/internal/query"
	"shelf-cli/internal/scan"
)

func TestEmptyAsNA(t *testing.T) {
	if emptyAsNA("") != "n/a" {
		t.Fatal("empty string should render as n/a")
	}
	if emptyAsNA("abc123") != "abc123" {
		t.Fatal("non-empty string should pass through")
	}
}

func TestCriterionValue(t *testing.T) {
	m := query.Match{Kind: query.KindCallable, Entry: scan.Entry{
		Name:      "x",
		Category:  "git",
		SizeBytes: 42,
		LineCount: 7,
		// 2021-01-01T00:00:00Z
		ModifiedAt: 1609459200,
	}}

	cases := []struct {
		criterion query.Criterion
		want      string
	}{
		{query.BySize, "42 B"},
		{query.ByLines, "7 lines"},
		{query.ByCategory, "git"},
		{query.ByDate, "2021-01-01"},
		{query.ByName, ""},
	}
	for _, c := range cases {
		if got := criterionValue(m, c.criterion); got != c.want {
			t.Fatalf("criterionValue(%s) = %q, want %q", c.criterion, got, c.want)
		}
	}
}
