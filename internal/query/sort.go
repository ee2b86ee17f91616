package query

import (
	"cmp"
	"sort"

	"shelf-cli/internal/index"
)

// Criterion selects the field entries are sorted by.
type Criterion int

const (
	ByName Criterion = iota
	BySize
	ByDate
	ByLines
	ByCategory
)

// ParseCriterion maps a user-supplied criterion name. An unknown criterion
// falls back to name rather than erroring.
func ParseCriterion(s string) Criterion {
	switch s {
	case "size":
		return BySize
	case "date":
		return ByDate
	case "lines":
		return ByLines
	case "category":
		return ByCategory
	default:
		return ByName
	}
}

func (c Criterion) String() string {
	switch c {
	case BySize:
		return "size"
	case ByDate:
		return "date"
	case ByLines:
		return "lines"
	case ByCategory:
		return "category"
	default:
		return "name"
	}
}

// Order is the sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// ParseOrder maps "asc"/"desc"; anything else is ascending.
func ParseOrder(s string) Order {
	if s == "desc" {
		return Desc
	}
	return Asc
}

// SortEntries returns the scope's entries sorted by criterion. Name is the
// tie-break for every non-name criterion, and the comparison is a total
// order (criterion, name, then source path), so output is deterministic and
// descending order is the exact reverse of ascending.
func SortEntries(doc *index.Document, scope Scope, criterion Criterion, order Order) []Match {
	rows := collect(doc, scope)

	sort.SliceStable(rows, func(i, j int) bool {
		c := compareMatches(rows[i], rows[j], criterion)
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
	return rows
}

func compareMatches(x, y Match, criterion Criterion) int {
	a, b := x.Entry, y.Entry

	var c int
	switch criterion {
	case BySize:
		c = cmp.Compare(a.SizeBytes, b.SizeBytes)
	case ByDate:
		c = cmp.Compare(a.ModifiedAt, b.ModifiedAt)
	case ByLines:
		c = cmp.Compare(a.LineCount, b.LineCount)
	case ByCategory:
		c = cmp.Compare(a.Category, b.Category)
	default:
		c = cmp.Compare(a.Name, b.Name)
	}
	if c != 0 {
		return c
	}
	if c = cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.RelativePath, b.RelativePath)
}

// collect flattens the scope's collections into result rows.
func collect(doc *index.Document, scope Scope) []Match {
	var out []Match
	if scope == ScopeAll || scope == ScopeCallables {
		for _, e := range doc.Callables {
			out = append(out, Match{Kind: KindCallable, Entry: e.Entry})
		}
	}
	if scope == ScopeAll || scope == ScopeAliases {
		for _, e := range doc.Aliases {
			out = append(out, Match{Kind: KindAlias, Entry: e.Entry})
		}
	}
	if scope == ScopeAll || scope == ScopeScripts {
		for _, e := range doc.Scripts {
			out = append(out, Match{Kind: KindScript, Entry: e.Entry})
		}
	}
	return out
}
