package classify

import (
	"fmt"
	"strings"
)

// maxDescriptionKeywords caps how many matched keywords the description joins.
const maxDescriptionKeywords = 3

// fallbackDescription is used when the chosen type has no keywords to name.
const fallbackDescription = "update files"

// Message is a suggested conventional commit message.
type Message struct {
	Type        CommitType `json:"type"`
	Scope       string     `json:"scope,omitempty"`
	Description string     `json:"description"`
}

// String renders "type(scope): description", omitting the parentheses when
// there is no scope.
func (m Message) String() string {
	if m.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", m.Type, m.Scope, m.Description)
	}
	return fmt.Sprintf("%s: %s", m.Type, m.Description)
}

// typePriority maps keyword categories to commit types in decision order.
// Security outranks everything; the rest follow the conventional-commit
// ladder. Kept as an explicit ordered list so the ordering is testable.
var typePriority = []struct {
	Category Category
	Type     CommitType
}{
	{CategorySecurity, TypeSecurity},
	{CategoryFixes, TypeFix},
	{CategoryFeatures, TypeFeat},
	{CategoryRefactors, TypeRefactor},
	{CategoryPerformance, TypePerf},
	{CategoryDependencies, TypeDeps},
	{CategoryScripts, TypeChore},
}

// Suggest derives a commit message from an analysis. It is a pure function:
// the same analysis always yields the same message, and it never fails —
// an empty analysis produces the generic "chore: update files".
func Suggest(a Analysis) Message {
	m := Message{Type: TypeChore, Description: fallbackDescription}

	var descCat Category
	matched := false
	for _, p := range typePriority {
		if len(a.Keywords[p.Category]) > 0 {
			m.Type = p.Type
			descCat = p.Category
			matched = true
			break
		}
	}

	if !matched {
		// No keyword signal: fall back to what kinds of files changed.
		switch {
		case a.Files.HasDocs:
			m.Type = TypeDocs
			m.Description = "update documentation"
		case a.Files.HasTests:
			m.Type = TypeTest
			m.Description = "update tests"
		case a.Files.HasStyles:
			m.Type = TypeStyle
			m.Description = "update styles"
		}
	}

	if matched {
		if kws := a.Keywords[descCat]; len(kws) > 0 {
			n := len(kws)
			if n > maxDescriptionKeywords {
				n = maxDescriptionKeywords
			}
			m.Description = strings.Join(kws[:n], " and ")
		}
	}

	m.Scope = suggestScope(a)
	return m
}

// suggestScope picks a scope token: the first matched component keyword,
// else a component/module path segment, else the common top-level directory.
func suggestScope(a Analysis) string {
	if comps := a.Keywords[CategoryComponents]; len(comps) > 0 {
		return comps[0]
	}
	if len(a.Files.Components) > 0 {
		return a.Files.Components[0]
	}
	return a.Files.CommonDir
}
