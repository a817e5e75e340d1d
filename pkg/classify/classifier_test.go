package classify

import (
	"testing"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/catalog"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

func TestSearchText(t *testing.T) {
	tests := []struct {
		name string
		pkg  ohpm.Package
		want string
	}{
		{
			name: "org_prefix_stripped",
			pkg:  ohpm.Package{Name: "@ohos/axios", Description: "HTTP Client"},
			want: "axios http client",
		},
		{
			name: "no_org_prefix",
			pkg:  ohpm.Package{Name: "dayjs", Description: "date library"},
			want: "dayjs date library",
		},
		{
			name: "keywords_appended",
			pkg:  ohpm.Package{Name: "@a/b", Description: "desc", Keywords: []string{"UI", "grid"}},
			want: "b desc ui grid",
		},
		{
			name: "slash_without_at_kept",
			pkg:  ohpm.Package{Name: "foo/bar", Description: ""},
			want: "foo/bar ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchText(tt.pkg); got != tt.want {
				t.Errorf("SearchText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_WholeWordBeatsSubstring(t *testing.T) {
	cats := []catalog.Category{
		{ID: "whole", Keywords: []string{"log"}},
		{ID: "partial", Keywords: []string{"logging"}},
	}
	c := New(cats)

	// "log viewer" contains "log" as a whole word (+2 for "whole")
	// and "logging" not at all.
	res := c.Classify(ohpm.Package{Name: "x", Description: "log viewer"})
	if res.CategoryID != "whole" || res.Score != 2 {
		t.Errorf("Classify() = %+v, want whole/2", res)
	}

	// "logging" matches "log" only as a substring (+1) but "logging"
	// as a whole word (+2).
	res = c.Classify(ohpm.Package{Name: "x", Description: "logging"})
	if res.CategoryID != "partial" || res.Score != 2 {
		t.Errorf("Classify() = %+v, want partial/2", res)
	}
}

func TestClassify_KeywordCountsOnce(t *testing.T) {
	cats := []catalog.Category{{ID: "only", Keywords: []string{"http"}}}
	c := New(cats)

	// "http" occurs whole-word and as a substring of "httpclient";
	// the keyword still contributes exactly 2.
	res := c.Classify(ohpm.Package{Name: "x", Description: "http httpclient"})
	if res.Score != 2 {
		t.Errorf("Score = %d, want 2", res.Score)
	}
}

func TestClassify_TieBreakFirstInCatalogOrder(t *testing.T) {
	cats := []catalog.Category{
		{ID: "alpha", Keywords: []string{"widget"}},
		{ID: "beta", Keywords: []string{"widget"}},
		{ID: "gamma", Keywords: []string{"widget"}},
	}
	c := New(cats)

	res := c.Classify(ohpm.Package{Name: "x", Description: "a widget"})
	if res.CategoryID != "alpha" {
		t.Errorf("Tie should keep first category, got %q", res.CategoryID)
	}
	if res.Score != 2 {
		t.Errorf("Score = %d, want 2", res.Score)
	}
}

func TestClassify_PureFunction(t *testing.T) {
	c := New(catalog.Default())
	pkg := ohpm.Package{Name: "@ohos/axios", Description: "promise based http client"}

	first := c.Classify(pkg)
	second := c.Classify(pkg)

	if first != second {
		t.Errorf("Repeated classification differs: %+v vs %+v", first, second)
	}
}

func TestClassify_ZeroScoreUncategorized(t *testing.T) {
	c := New(catalog.Default())

	res := c.Classify(ohpm.Package{Name: "zzzz", Description: "qqqq"})
	if res.Assigned() {
		t.Errorf("Expected uncategorized, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0", res.Score)
	}
}

func TestClassify_HTTPClientGoesToNetworking(t *testing.T) {
	c := New(catalog.Default())

	res := c.Classify(ohpm.Package{
		Name:        "@org/http-client",
		Description: "simple http client library",
	})

	if res.CategoryID != "networking" {
		t.Errorf("CategoryID = %q, want networking", res.CategoryID)
	}
	// "http" and "client" both match as whole words.
	if res.Score < 4 {
		t.Errorf("Score = %d, want >= 4", res.Score)
	}
}

func TestClassify_SubstringOnlyStillAssigns(t *testing.T) {
	c := New(catalog.Default())

	// "util" and "log" appear only inside "utility" and "logging",
	// each worth 1; a score of 2 is still enough to assign.
	res := c.Classify(ohpm.Package{
		Name:        "@org/hilog",
		Description: "logging utility for apps",
	})

	if res.CategoryID != "utilities" {
		t.Errorf("CategoryID = %q, want utilities", res.CategoryID)
	}
	if res.Score != 2 {
		t.Errorf("Score = %d, want 2", res.Score)
	}
}

func TestClassifyAll_PreservesOrder(t *testing.T) {
	c := New(catalog.Default())
	pkgs := []ohpm.Package{
		{Name: "@org/http-client", Description: "simple http client library"},
		{Name: "zzzz", Description: "qqqq"},
	}

	results := c.ClassifyAll(pkgs)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].CategoryID != "networking" {
		t.Errorf("results[0] = %+v, want networking", results[0])
	}
	if results[1].Assigned() {
		t.Errorf("results[1] = %+v, want uncategorized", results[1])
	}
}
