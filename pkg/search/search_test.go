package search

import (
	"testing"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

func fixture() []ohpm.Package {
	return []ohpm.Package{
		{Name: "@ohos/axios", Description: "promise based http client", Org: "ohos", License: "MIT", Likes: 120, Popularity: 35000},
		{Name: "@ohos/lottie", Description: "render animations", Org: "ohos", License: "Apache-2.0", Likes: 80, Popularity: 28000},
		{Name: "@yunkss/ef_axios", Description: "http wrapper", Org: "yunkss", License: "MIT", Likes: 10, Popularity: 4000},
		{Name: "dayjs", Description: "date library", License: "MIT", Likes: 30, Popularity: 15000},
	}
}

func TestRun_TextMatchesNameAndDescription(t *testing.T) {
	results := Run(fixture(), Query{Text: "axios"})
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}
	// Sorted by popularity descending.
	if results[0].Name != "@ohos/axios" || results[1].Name != "@yunkss/ef_axios" {
		t.Errorf("Unexpected order: %q, %q", results[0].Name, results[1].Name)
	}

	results = Run(fixture(), Query{Text: "HTTP"})
	if len(results) != 2 {
		t.Errorf("Case-insensitive description match: len = %d, want 2", len(results))
	}
}

func TestRun_ExactFilters(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  int
	}{
		{"org", Query{Org: "ohos"}, 2},
		{"org_case_insensitive", Query{Org: "OHOS"}, 2},
		{"license", Query{License: "mit"}, 3},
		{"min_likes", Query{MinLikes: 50}, 2},
		{"min_popularity", Query{MinPopularity: 20000}, 2},
		{"combined", Query{License: "MIT", MinLikes: 20}, 2},
		{"no_match", Query{Org: "missing"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Run(fixture(), tt.query)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRun_Limit(t *testing.T) {
	results := Run(fixture(), Query{Limit: 2})
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}
	if results[0].Name != "@ohos/axios" {
		t.Errorf("Limit should keep the most popular first, got %q", results[0].Name)
	}

	if got := len(Run(fixture(), Query{})); got != 4 {
		t.Errorf("Zero limit should return everything, got %d", got)
	}
}

func TestOrganizations(t *testing.T) {
	orgs := Organizations(fixture())

	if len(orgs) != 2 {
		t.Fatalf("len = %d, want 2 (no-org package skipped)", len(orgs))
	}
	if orgs[0].Value != "ohos" || orgs[0].Count != 2 {
		t.Errorf("orgs[0] = %+v, want ohos/2", orgs[0])
	}
	if orgs[1].Value != "yunkss" || orgs[1].Count != 1 {
		t.Errorf("orgs[1] = %+v, want yunkss/1", orgs[1])
	}
}

func TestLicenses_SortedByCount(t *testing.T) {
	licenses := Licenses(fixture())

	if len(licenses) != 2 {
		t.Fatalf("len = %d, want 2", len(licenses))
	}
	if licenses[0].Value != "MIT" || licenses[0].Count != 3 {
		t.Errorf("licenses[0] = %+v, want MIT/3", licenses[0])
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(fixture())

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.TotalLikes != 240 {
		t.Errorf("TotalLikes = %d, want 240", stats.TotalLikes)
	}
	if stats.AvgPopularity != 20500 {
		t.Errorf("AvgPopularity = %v, want 20500", stats.AvgPopularity)
	}
	if stats.WithDescription != 4 {
		t.Errorf("WithDescription = %d, want 4", stats.WithDescription)
	}
	if stats.UniqueOrgs != 2 || stats.UniqueLicenses != 2 {
		t.Errorf("UniqueOrgs = %d, UniqueLicenses = %d, want 2, 2", stats.UniqueOrgs, stats.UniqueLicenses)
	}
	if stats.MostPopular.Name != "@ohos/axios" {
		t.Errorf("MostPopular = %q, want @ohos/axios", stats.MostPopular.Name)
	}
	if stats.MostLiked.Name != "@ohos/axios" {
		t.Errorf("MostLiked = %q, want @ohos/axios", stats.MostLiked.Name)
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.Total != 0 || stats.AvgPopularity != 0 {
		t.Errorf("Empty summary should be all zero, got %+v", stats)
	}
}
