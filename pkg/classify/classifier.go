// Package classify assigns packages to categories using weighted
// keyword scoring against the fixed category catalog.
package classify

import (
	"regexp"
	"strings"

	"github.com/ohpm-awesome/ohpm-crawler/pkg/catalog"
	"github.com/ohpm-awesome/ohpm-crawler/pkg/ohpm"
)

const (
	wholeWordScore = 2
	substringScore = 1

	// minScore is the minimum category score required to assign a
	// package; anything below stays uncategorized.
	minScore = 1
)

// Result is the classification outcome for one package.
type Result struct {
	// CategoryID is the assigned category, or "" if the package is
	// uncategorized.
	CategoryID string

	// Score is the winning category's score (0 when uncategorized).
	Score int
}

// Assigned reports whether the package was assigned to a category.
func (r Result) Assigned() bool {
	return r.CategoryID != ""
}

// Classifier scores packages against a category catalog.
//
// Classification is a pure function of (package, catalog): the
// classifier holds only the catalog and precompiled keyword patterns,
// so a single instance is safe for concurrent use.
type Classifier struct {
	categories []catalog.Category
	wordRes    [][]*regexp.Regexp
}

// New builds a classifier for the given catalog. Word-boundary
// patterns are compiled once per keyword up front.
func New(categories []catalog.Category) *Classifier {
	wordRes := make([][]*regexp.Regexp, len(categories))
	for i, cat := range categories {
		res := make([]*regexp.Regexp, len(cat.Keywords))
		for j, kw := range cat.Keywords {
			res[j] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
		wordRes[i] = res
	}

	return &Classifier{
		categories: categories,
		wordRes:    wordRes,
	}
}

// Categories returns the catalog the classifier was built with, in its
// fixed order.
func (c *Classifier) Categories() []catalog.Category {
	return c.categories
}

// SearchText builds the lowercase text blob a package is scored on:
// the name with any "@org/" prefix stripped, the description, and any
// keywords, joined by spaces.
func SearchText(pkg ohpm.Package) string {
	parts := make([]string, 0, 2+len(pkg.Keywords))

	name := strings.ToLower(pkg.Name)
	if i := strings.Index(name, "/"); i >= 0 && strings.HasPrefix(name, "@") {
		name = name[i+1:]
	}
	parts = append(parts, name)
	parts = append(parts, strings.ToLower(pkg.Description))
	for _, kw := range pkg.Keywords {
		parts = append(parts, strings.ToLower(kw))
	}

	return strings.Join(parts, " ")
}

// Classify scores the package against every category and returns the
// best match. Ties keep the earlier category: a later category must
// strictly exceed the current maximum to replace it, so the winner is
// always the first category in catalog order among those sharing the
// top score.
func (c *Classifier) Classify(pkg ohpm.Package) Result {
	text := SearchText(pkg)

	bestScore := 0
	bestIdx := -1

	for i, cat := range c.categories {
		score := 0
		for j, kw := range cat.Keywords {
			// Whole-word match takes priority; each keyword counts
			// at most once per category.
			switch {
			case c.wordRes[i][j].MatchString(text):
				score += wholeWordScore
			case strings.Contains(text, kw):
				score += substringScore
			}
		}

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore < minScore {
		return Result{}
	}
	return Result{
		CategoryID: c.categories[bestIdx].ID,
		Score:      bestScore,
	}
}

// ClassifyAll classifies every package in order. results[i] corresponds
// to pkgs[i].
func (c *Classifier) ClassifyAll(pkgs []ohpm.Package) []Result {
	results := make([]Result, len(pkgs))
	for i, pkg := range pkgs {
		results[i] = c.Classify(pkg)
	}
	return results
}
