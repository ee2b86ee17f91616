package query

import (
	"reflect"
	"testing"

	"shelf-cli/internal/index"
	"shelf-cli/internal/scan"
)

func sortDoc() *index.Document {
	mk := func(name, category string, size int64, lines int, modified int64) scan.CallableEntry {
		return scan.CallableEntry{Entry: scan.Entry{
			Name: name, Category: category, SizeBytes: size,
			LineCount: lines, ModifiedAt: modified,
			RelativePath: "functions/" + category + "/" + name + ".sh",
		}}
	}
	return &index.Document{
		Callables: map[string]scan.CallableEntry{
			"b_task": mk("b_task", "misc", 100, 10, 300),
			"a_task": mk("a_task", "misc", 200, 10, 100),
			"c_task": mk("c_task", "net", 100, 30, 200),
		},
	}
}

func TestSortEntries_ByNameAsc(t *testing.T) {
	got := names(SortEntries(sortDoc(), ScopeCallables, ByName, Asc))
	if !reflect.DeepEqual(got, []string{"a_task", "b_task", "c_task"}) {
		t.Fatalf("name asc = %v", got)
	}
}

func TestSortEntries_DescIsExactReverse(t *testing.T) {
	doc := sortDoc()
	for _, c := range []Criterion{ByName, BySize, ByDate, ByLines, ByCategory} {
		asc := names(SortEntries(doc, ScopeCallables, c, Asc))
		desc := names(SortEntries(doc, ScopeCallables, c, Desc))
		for i := range asc {
			if asc[i] != desc[len(desc)-1-i] {
				t.Fatalf("criterion %s: desc %v is not the reverse of asc %v", c, desc, asc)
			}
		}
	}
}

func TestSortEntries_NameBreaksTies(t *testing.T) {
	// b_task and c_task share size 100; name decides their order.
	got := names(SortEntries(sortDoc(), ScopeCallables, BySize, Asc))
	if !reflect.DeepEqual(got, []string{"b_task", "c_task", "a_task"}) {
		t.Fatalf("size asc = %v", got)
	}
}

func TestSortEntries_ByDate(t *testing.T) {
	got := names(SortEntries(sortDoc(), ScopeCallables, ByDate, Asc))
	if !reflect.DeepEqual(got, []string{"a_task", "c_task", "b_task"}) {
		t.Fatalf("date asc = %v", got)
	}
}

func TestParseCriterion_UnknownFallsBackToName(t *testing.T) {
	if c := ParseCriterion("bogus"); c != ByName {
		t.Fatalf("criterion = %v, want ByName", c)
	}
}

func TestParseOrder(t *testing.T) {
	if ParseOrder("desc") != Desc {
		t.Fatal("desc not parsed")
	}
	if ParseOrder("") != Asc || ParseOrder("up") != Asc {
		t.Fatal("default order should be ascending")
	}
}
