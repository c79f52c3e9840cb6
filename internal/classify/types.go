package classify

// Category identifies one keyword bucket in the table. The set is closed:
// free-form category strings are rejected at the config boundary so a typo
// cannot silently create an unrecognized bucket.
type Category string

const (
	CategorySecurity     Category = "security"
	CategoryFeatures     Category = "features"
	CategoryFixes        Category = "fixes"
	CategoryRefactors    Category = "refactors"
	CategoryPerformance  Category = "performance"
	CategoryComponents   Category = "components"
	CategoryDependencies Category = "dependencies"
	CategoryScripts      Category = "scripts"
)

// Categories returns all categories in report order. The order also fixes
// the scan order of the default keyword table.
func Categories() []Category {
	return []Category{
		CategorySecurity,
		CategoryFeatures,
		CategoryFixes,
		CategoryRefactors,
		CategoryPerformance,
		CategoryComponents,
		CategoryDependencies,
		CategoryScripts,
	}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CommitType is a conventional-commit type token.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeTest     CommitType = "test"
	TypeChore    CommitType = "chore"
	TypeSecurity CommitType = "security"
	TypeDeps     CommitType = "deps"
)

// CommitTypes returns the full commit-type vocabulary.
func CommitTypes() []CommitType {
	return []CommitType{
		TypeFeat, TypeFix, TypeDocs, TypeStyle, TypeRefactor,
		TypePerf, TypeTest, TypeChore, TypeSecurity, TypeDeps,
	}
}

// Valid reports whether t is one of the supported commit types.
func (t CommitType) Valid() bool {
	for _, known := range CommitTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// FileFacts summarizes what kinds of files a diff touches, derived from the
// "+++ b/" headers. It feeds the scope heuristic and the file-kind commit
// types (docs, test, style) that have no keyword bucket of their own.
type FileFacts struct {
	Files      []string `json:"files,omitempty"`
	HasDocs    bool     `json:"hasDocs,omitempty"`
	HasTests   bool     `json:"hasTests,omitempty"`
	HasStyles  bool     `json:"hasStyles,omitempty"`
	Components []string `json:"components,omitempty"`
	CommonDir  string   `json:"commonDir,omitempty"`
}

// Analysis is the result of scanning one diff. Keywords holds, per matched
// category, the distinct keywords found in first-seen order; categories with
// no matches have no entry.
type Analysis struct {
	Keywords     map[Category][]string `json:"keywords"`
	LinesAdded   int                   `json:"linesAdded"`
	LinesRemoved int                   `json:"linesRemoved"`
	Files        FileFacts             `json:"fileFacts"`
}

// Matched returns the keywords matched for a category, nil if none.
func (a Analysis) Matched(c Category) []string {
	return a.Keywords[c]
}
