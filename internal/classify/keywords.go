package classify

import "fmt"

// CategoryKeywords pairs one category with its trigger keywords.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// KeywordTable is an ordered mapping from category to trigger keywords.
// Order is significant: it fixes both the scan order and the report order.
// Tables are treated as immutable once built; Extend returns a copy.
type KeywordTable []CategoryKeywords

// DefaultTable returns the compiled-in keyword table. Keywords are matched
// case-insensitively as substrings of the whole diff, so they are chosen to
// be specific enough not to fire on everyday identifiers.
func DefaultTable() KeywordTable {
	return KeywordTable{
		{CategorySecurity, []string{
			"auth", "password", "token", "secret", "credential",
			"vulnerab", "encrypt", "sanitiz", "csrf", "xss",
		}},
		{CategoryFeatures, []string{
			"implement", "feature", "introduce", "add support", "new endpoint",
		}},
		{CategoryFixes, []string{
			"fix", "bug", "regression", "crash", "incorrect", "workaround",
		}},
		{CategoryRefactors, []string{
			"refactor", "rename", "restructure", "simplify", "cleanup", "extract",
		}},
		{CategoryPerformance, []string{
			"performance", "optimiz", "speed up", "cache", "latency", "faster",
		}},
		{CategoryComponents, []string{
			"component", "handler", "controller", "middleware", "widget", "service",
		}},
		{CategoryDependencies, []string{
			"go.mod", "go.sum", "package.json", "requirements.txt", "bump", "upgrade",
		}},
		{CategoryScripts, []string{
			"makefile", "taskfile", "#!/bin", "npm run", "script",
		}},
	}
}

// Extend returns a copy of the table with extra keywords appended to their
// categories, preserving order and skipping duplicates. Unknown categories
// are an error so config typos surface instead of vanishing.
func (t KeywordTable) Extend(extra map[Category][]string) (KeywordTable, error) {
	for c := range extra {
		if !ValidCategory(c) {
			return nil, fmt.Errorf("unknown keyword category %q", c)
		}
	}
	out := make(KeywordTable, len(t))
	for i, ck := range t {
		kws := make([]string, len(ck.Keywords), len(ck.Keywords)+len(extra[ck.Category]))
		copy(kws, ck.Keywords)
		seen := make(map[string]bool, len(kws))
		for _, kw := range kws {
			seen[kw] = true
		}
		for _, kw := range extra[ck.Category] {
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			kws = append(kws, kw)
		}
		out[i] = CategoryKeywords{Category: ck.Category, Keywords: kws}
	}
	return out, nil
}
