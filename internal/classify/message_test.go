package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func analysisWith(kw map[Category][]string) Analysis {
	return Analysis{Keywords: kw}
}

func TestSuggest_TypePriority(t *testing.T) {
	tests := []struct {
		name     string
		keywords map[Category][]string
		want     CommitType
	}{
		{"security alone", map[Category][]string{CategorySecurity: {"auth"}}, TypeSecurity},
		{"fixes alone", map[Category][]string{CategoryFixes: {"bug"}}, TypeFix},
		{"features alone", map[Category][]string{CategoryFeatures: {"feature"}}, TypeFeat},
		{"refactors alone", map[Category][]string{CategoryRefactors: {"rename"}}, TypeRefactor},
		{"performance alone", map[Category][]string{CategoryPerformance: {"cache"}}, TypePerf},
		{"dependencies alone", map[Category][]string{CategoryDependencies: {"bump"}}, TypeDeps},
		{"scripts alone", map[Category][]string{CategoryScripts: {"makefile"}}, TypeChore},
		{"security beats fixes", map[Category][]string{
			CategorySecurity: {"token"},
			CategoryFixes:    {"bug"},
		}, TypeSecurity},
		{"fixes beat features", map[Category][]string{
			CategoryFixes:    {"bug"},
			CategoryFeatures: {"feature"},
		}, TypeFix},
		{"features beat performance", map[Category][]string{
			CategoryFeatures:    {"feature"},
			CategoryPerformance: {"cache"},
		}, TypeFeat},
		{"nothing matched", nil, TypeChore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Suggest(analysisWith(tt.keywords))
			assert.Equal(t, tt.want, msg.Type)
			assert.True(t, msg.Type.Valid())
		})
	}
}

func TestSuggest_Idempotent(t *testing.T) {
	a := analysisWith(map[Category][]string{CategoryFeatures: {"feature", "implement"}})
	assert.Equal(t, Suggest(a).String(), Suggest(a).String())
}

func TestSuggest_DescriptionJoin(t *testing.T) {
	a := analysisWith(map[Category][]string{CategoryFeatures: {"feature", "implement"}})
	msg := Suggest(a)
	assert.Equal(t, "feat: feature and implement", msg.String())
}

func TestSuggest_DescriptionCapped(t *testing.T) {
	a := analysisWith(map[Category][]string{
		CategoryFixes: {"fix", "bug", "crash", "regression", "workaround"},
	})
	msg := Suggest(a)
	assert.Equal(t, "fix and bug and crash", msg.Description)
}

func TestSuggest_ScopeFromComponentKeyword(t *testing.T) {
	a := analysisWith(map[Category][]string{
		CategoryFeatures:   {"feature"},
		CategoryComponents: {"handler", "service"},
	})
	msg := Suggest(a)
	assert.Equal(t, "handler", msg.Scope)
	assert.Equal(t, "feat(handler): feature", msg.String())
}

func TestSuggest_ScopeFromComponentPath(t *testing.T) {
	a := analysisWith(map[Category][]string{CategoryFixes: {"bug"}})
	a.Files = FileFacts{
		Files:      []string{"src/components/Button/index.jsx"},
		Components: []string{"Button"},
	}
	assert.Equal(t, "fix(Button): bug", Suggest(a).String())
}

func TestSuggest_ScopeFromCommonDir(t *testing.T) {
	a := analysisWith(map[Category][]string{CategoryFixes: {"bug"}})
	a.Files = FileFacts{
		Files:     []string{"api/server.go", "api/routes.go"},
		CommonDir: "api",
	}
	assert.Equal(t, "fix(api): bug", Suggest(a).String())
}

func TestSuggest_FileKindFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		facts FileFacts
		want  string
	}{
		{"docs files", FileFacts{HasDocs: true}, "docs: update documentation"},
		{"test files", FileFacts{HasTests: true}, "test: update tests"},
		{"style files", FileFacts{HasStyles: true}, "style: update styles"},
		{"docs beat tests", FileFacts{HasDocs: true, HasTests: true}, "docs: update documentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analysis{Keywords: map[Category][]string{}, Files: tt.facts}
			assert.Equal(t, tt.want, Suggest(a).String())
		})
	}
}

func TestSuggest_KeywordsBeatFileKinds(t *testing.T) {
	a := analysisWith(map[Category][]string{CategoryDependencies: {"go.mod"}})
	a.Files = FileFacts{HasDocs: true}
	assert.Equal(t, TypeDeps, Suggest(a).Type)
}

func TestMessage_String(t *testing.T) {
	withScope := Message{Type: TypeFeat, Scope: "auth", Description: "add support"}
	assert.Equal(t, "feat(auth): add support", withScope.String())

	noScope := Message{Type: TypeChore, Description: "update files"}
	assert.Equal(t, "chore: update files", noScope.String())
}

func TestCommitType_Valid(t *testing.T) {
	for _, ct := range CommitTypes() {
		assert.True(t, ct.Valid(), "type %q", ct)
	}
	assert.False(t, CommitType("wip").Valid())
}
